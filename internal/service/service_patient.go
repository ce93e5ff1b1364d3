package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/store"
	"github.com/MKhiriev/hefin/internal/utils"
	"github.com/MKhiriev/hefin/internal/validators"
	"github.com/MKhiriev/hefin/models"
)

const (
	DefaultPatientLimit = 50
	MaxPatientLimit     = 100
)

type patientService struct {
	patientRepository store.PatientRepository
	validator         validators.Validator
	ids               utils.IDGenerator
	now               func() time.Time

	logger *logger.Logger
}

func NewPatientService(patientRepository store.PatientRepository, validator validators.Validator, logger *logger.Logger) PatientService {
	return &patientService{
		patientRepository: patientRepository,
		validator:         validator,
		ids:               utils.NewUUIDGenerator(),
		now:               func() time.Time { return time.Now().UTC() },
		logger:            logger,
	}
}

// CreatePatient assigns an id and timestamps and stores the patient.
func (s *patientService) CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	log := logger.FromContext(ctx)

	patient = trimPatient(patient)
	if err := s.validator.Validate(ctx, patient); err != nil {
		log.Debug().Err(err).Str("func", "*patientService.CreatePatient").Msg("invalid patient")
		return models.Patient{}, err
	}

	now := s.now()
	patient.ID = s.ids.Generate()
	patient.CreatedAt = now
	patient.UpdatedAt = now

	if err := s.patientRepository.CreatePatient(ctx, patient); err != nil {
		log.Err(err).Str("func", "*patientService.CreatePatient").Msg("error creating patient")
		return models.Patient{}, fmt.Errorf("error creating patient: %w", err)
	}

	log.Info().Str("patient_id", patient.ID).Msg("patient registered")
	return patient, nil
}

func (s *patientService) GetPatient(ctx context.Context, id string) (models.Patient, error) {
	patient, err := s.patientRepository.GetPatient(ctx, id)
	if err != nil {
		return models.Patient{}, fmt.Errorf("error getting patient: %w", err)
	}
	return patient, nil
}

// ListPatients clamps the page size to [1, MaxPatientLimit], defaulting to
// DefaultPatientLimit.
func (s *patientService) ListPatients(ctx context.Context, filter models.PatientFilter) ([]models.Patient, error) {
	switch {
	case filter.Limit == 0:
		filter.Limit = DefaultPatientLimit
	case filter.Limit > MaxPatientLimit:
		filter.Limit = MaxPatientLimit
	}
	filter.Search = strings.TrimSpace(filter.Search)

	patients, err := s.patientRepository.ListPatients(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*patientService.ListPatients").Msg("error listing patients")
		return nil, fmt.Errorf("error listing patients: %w", err)
	}
	return patients, nil
}

// UpdatePatient replaces the editable fields of patient id. An id in the
// body must match the path.
func (s *patientService) UpdatePatient(ctx context.Context, id string, patient models.Patient) (models.Patient, error) {
	log := logger.FromContext(ctx)

	if patient.ID != "" && patient.ID != id {
		return models.Patient{}, ErrPatientIDMismatch
	}

	patient = trimPatient(patient)
	if err := s.validator.Validate(ctx, patient); err != nil {
		log.Debug().Err(err).Str("func", "*patientService.UpdatePatient").Msg("invalid patient")
		return models.Patient{}, err
	}

	patient.ID = id
	patient.UpdatedAt = s.now()
	if err := s.patientRepository.UpdatePatient(ctx, patient); err != nil {
		log.Err(err).Str("func", "*patientService.UpdatePatient").Str("patient_id", id).Msg("error updating patient")
		return models.Patient{}, fmt.Errorf("error updating patient: %w", err)
	}

	return s.GetPatient(ctx, id)
}

func (s *patientService) DeletePatient(ctx context.Context, id string) error {
	if err := s.patientRepository.DeletePatient(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*patientService.DeletePatient").Str("patient_id", id).Msg("error deleting patient")
		return fmt.Errorf("error deleting patient: %w", err)
	}
	return nil
}

func trimPatient(p models.Patient) models.Patient {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = normalizeEmail(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Address = strings.TrimSpace(p.Address)
	p.InsuranceProvider = strings.TrimSpace(p.InsuranceProvider)
	p.PolicyNumber = strings.TrimSpace(p.PolicyNumber)
	if p.Gender == "" {
		p.Gender = "unknown"
	}
	return p
}
