// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/hefin/internal/ledger"
	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/store"
	"github.com/MKhiriev/hefin/internal/validators"
	"github.com/MKhiriev/hefin/models"
)

// recordService keeps payloads off the ledger: the payload is stored first
// and its locator is then registered as a data pointer. A rejected pointer
// removes the payload again.
type recordService struct {
	payloadStorage store.PayloadStorage
	pointerLedger  store.PointerLedger
	validator      validators.Validator
	now            func() time.Time

	logger *logger.Logger
}

func NewRecordService(payloadStorage store.PayloadStorage, pointerLedger store.PointerLedger, validator validators.Validator, logger *logger.Logger) RecordService {
	return &recordService{
		payloadStorage: payloadStorage,
		pointerLedger:  pointerLedger,
		validator:      validator,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         logger,
	}
}

func (s *recordService) CreateRecord(ctx context.Context, req models.RecordRequest) (models.DataPointer, error) {
	log := logger.FromContext(ctx)

	req.OwnerPrincipal = strings.TrimSpace(req.OwnerPrincipal)
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*recordService.CreateRecord").Msg("invalid record")
		return models.DataPointer{}, err
	}

	record := models.Record{
		Owner:     req.OwnerPrincipal,
		Meta:      req.Meta,
		Payload:   req.Payload,
		CreatedAt: s.now(),
	}

	id, err := s.payloadStorage.SavePayload(ctx, record)
	if err != nil {
		log.Err(err).Str("func", "*recordService.CreateRecord").Msg("error storing payload")
		return models.DataPointer{}, fmt.Errorf("error storing payload: %w", err)
	}

	pointer, err := s.pointerLedger.Append(ctx, models.DataPointer{
		ID:              id,
		Owner:           record.Owner,
		Meta:            record.Meta,
		StorageProvider: s.payloadStorage.Locator(id),
	})
	if err != nil {
		log.Err(err).Str("func", "*recordService.CreateRecord").Str("record_id", id).Msg("ledger rejected pointer, removing payload")
		if delErr := s.payloadStorage.DeletePayload(ctx, id); delErr != nil {
			log.Err(delErr).Str("func", "*recordService.CreateRecord").Str("record_id", id).Msg("error removing orphaned payload")
			err = errors.Join(err, delErr)
		}
		return models.DataPointer{}, fmt.Errorf("%w: %w", ErrPointerRejected, err)
	}

	log.Info().Str("record_id", id).Str("storage_provider", pointer.StorageProvider).Msg("record registered")
	return pointer, nil
}

// GetRecord resolves the pointer and then its payload. The payload id is the
// last segment of the storage provider URI.
func (s *recordService) GetRecord(ctx context.Context, id string) (models.RecordWithPointer, error) {
	log := logger.FromContext(ctx)

	pointer, err := s.pointerLedger.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ledger.ErrPointerNotFound) {
			return models.RecordWithPointer{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*recordService.GetRecord").Str("record_id", id).Msg("error reading pointer")
		return models.RecordWithPointer{}, fmt.Errorf("error reading pointer: %w", err)
	}

	payloadID := pointer.StorageProvider[strings.LastIndex(pointer.StorageProvider, "/")+1:]
	record, err := s.payloadStorage.GetPayload(ctx, payloadID)
	if err != nil {
		log.Err(err).Str("func", "*recordService.GetRecord").Str("record_id", id).Msg("error reading payload")
		return models.RecordWithPointer{}, fmt.Errorf("error reading payload: %w", err)
	}

	return models.RecordWithPointer{Pointer: pointer, Record: record}, nil
}

func (s *recordService) ListRecords(ctx context.Context, owner string) ([]models.DataPointer, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, ErrOwnerRequired
	}

	pointers, err := s.pointerLedger.ListByOwner(ctx, owner)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recordService.ListRecords").Msg("error listing pointers")
		return nil, fmt.Errorf("error listing pointers: %w", err)
	}
	return pointers, nil
}

func (s *recordService) LedgerStatus(ctx context.Context) (models.LedgerStatus, error) {
	status, err := s.pointerLedger.Status(ctx)
	if err != nil {
		return models.LedgerStatus{}, fmt.Errorf("error reading ledger status: %w", err)
	}
	return status, nil
}

func (s *recordService) VerifyLedger(ctx context.Context) error {
	return s.pointerLedger.Verify(ctx)
}
