package service

import (
	"context"

	"github.com/MKhiriev/hefin/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetProfile(ctx context.Context, userID int64) (models.UserProfile, error)
}

type ContactService interface {
	SubmitContact(ctx context.Context, req models.ContactRequest, ipAddress string) (models.Contact, error)
	SubmitConsultation(ctx context.Context, req models.ConsultationRequest, ipAddress string) (models.Contact, error)
	ListContacts(ctx context.Context) ([]models.Contact, error)
}

type CalculatorService interface {
	Financing(ctx context.Context, req models.FinancingRequest) (models.FinancingResults, error)
	HSA(ctx context.Context, req models.HSARequest) (models.HSAResult, error)
	Insurance(ctx context.Context, req models.InsuranceRequest) (models.InsuranceComparison, error)
	Retirement(ctx context.Context, req models.RetirementRequest) (models.RetirementProjection, error)
}

type PatientService interface {
	CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error)
	GetPatient(ctx context.Context, id string) (models.Patient, error)
	ListPatients(ctx context.Context, filter models.PatientFilter) ([]models.Patient, error)
	UpdatePatient(ctx context.Context, id string, patient models.Patient) (models.Patient, error)
	DeletePatient(ctx context.Context, id string) error
}

// RecordService stores record payloads and registers their pointers on the
// ledger.
type RecordService interface {
	CreateRecord(ctx context.Context, req models.RecordRequest) (models.DataPointer, error)
	GetRecord(ctx context.Context, id string) (models.RecordWithPointer, error)
	ListRecords(ctx context.Context, owner string) ([]models.DataPointer, error)
	LedgerStatus(ctx context.Context) (models.LedgerStatus, error)
	VerifyLedger(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthStatus
}
