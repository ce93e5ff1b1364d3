package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/hefin/internal/config"
	"github.com/MKhiriev/hefin/internal/crypto"
	"github.com/MKhiriev/hefin/internal/ledger"
	"github.com/MKhiriev/hefin/internal/logger"
)

// Storages aggregates every repository the services depend on.
type Storages struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
	PatientRepository PatientRepository
	PayloadStorage    PayloadStorage
	PointerLedger     PointerLedger

	closers []func(context.Context) error
}

// NewStorages selects backends from cfg. PostgreSQL is used when a DSN is
// configured and MongoDB when a URI is; otherwise in-memory stores serve.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	if cfg.DB.DSN != "" {
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("error migrating database: %w", err)
		}

		s.UserRepository = NewUserRepository(db, log)
		s.ContactRepository = NewContactRepository(db, log)
		s.PatientRepository = NewPatientRepository(db, log)
		s.closers = append(s.closers, func(context.Context) error { return db.Close() })
	} else {
		log.Warn().Msg("no database DSN configured, using in-memory repositories")
		s.UserRepository = NewMemoryUserRepository()
		s.ContactRepository = NewMemoryContactRepository()
		s.PatientRepository = NewMemoryPatientRepository()
	}

	if cfg.Mongo.URI != "" {
		mongoStorage, err := NewMongoPayloadStorage(ctx, cfg.Mongo, log)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.PayloadStorage = mongoStorage
		s.closers = append(s.closers, mongoStorage.Close)
	} else {
		log.Warn().Msg("no mongo URI configured, using in-memory payload storage")
		s.PayloadStorage = NewMemoryPayloadStorage()
	}

	if cfg.PayloadKey != "" {
		cipher, err := crypto.NewPayloadCipher(cfg.PayloadKey)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.PayloadStorage = NewEncryptedPayloadStorage(s.PayloadStorage, cipher)
		log.Info().Msg("record payloads are encrypted at rest")
	}

	pointerLedger, err := ledger.Open(cfg.Ledger, log)
	if err != nil {
		_ = s.Close(ctx)
		return nil, err
	}
	s.PointerLedger = pointerLedger
	s.closers = append(s.closers, func(context.Context) error { return pointerLedger.Close() })

	return s, nil
}

// NewMemoryStorages returns storages backed entirely by process memory.
func NewMemoryStorages(log *logger.Logger) (*Storages, error) {
	pointerLedger, err := ledger.Open(config.Ledger{}, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:    NewMemoryUserRepository(),
		ContactRepository: NewMemoryContactRepository(),
		PatientRepository: NewMemoryPatientRepository(),
		PayloadStorage:    NewMemoryPayloadStorage(),
		PointerLedger:     pointerLedger,
		closers:           []func(context.Context) error{func(context.Context) error { return pointerLedger.Close() }},
	}, nil
}

// Close releases every opened connection.
func (s *Storages) Close(ctx context.Context) error {
	var errs error
	for _, closeFn := range s.closers {
		errs = errors.Join(errs, closeFn(ctx))
	}
	s.closers = nil
	return errs
}
