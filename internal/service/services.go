package service

import (
	"github.com/MKhiriev/hefin/internal/config"
	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/store"
	"github.com/MKhiriev/hefin/internal/validators"
)

type Services struct {
	AuthService       AuthService
	ContactService    ContactService
	CalculatorService CalculatorService
	PatientService    PatientService
	RecordService     RecordService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewFormValidator()

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		ContactService:    NewContactService(storages.ContactRepository, validator, logger),
		CalculatorService: NewCalculatorService(validator),
		PatientService:    NewPatientService(storages.PatientRepository, validator, logger),
		RecordService:     NewRecordService(storages.PayloadStorage, storages.PointerLedger, validator, logger),
		AppInfoService:    appInfoService,
	}, nil
}
