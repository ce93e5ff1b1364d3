package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/hefin/models"
)

// UserRepository persists registered accounts.
type UserRepository interface {
	// CreateUser stores user and returns it with UserID and CreatedAt set.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail yields ErrUserNotFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ContactRepository persists contact and consultation submissions.
type ContactRepository interface {
	SaveContact(ctx context.Context, contact models.Contact) error
	// ListContacts returns all submissions, newest first.
	ListContacts(ctx context.Context) ([]models.Contact, error)
}

// PatientRepository persists patient registrations.
type PatientRepository interface {
	CreatePatient(ctx context.Context, patient models.Patient) error
	// GetPatient yields ErrPatientNotFound for unknown ids.
	GetPatient(ctx context.Context, id string) (models.Patient, error)
	// ListPatients returns patients ordered by last and first name.
	ListPatients(ctx context.Context, filter models.PatientFilter) ([]models.Patient, error)
	// UpdatePatient replaces the editable fields and yields ErrPatientNotFound
	// for unknown ids.
	UpdatePatient(ctx context.Context, patient models.Patient) error
	DeletePatient(ctx context.Context, id string) error
}

// PayloadStorage keeps record payloads referenced by ledger pointers.
type PayloadStorage interface {
	// SavePayload stores record and returns the id it was assigned.
	SavePayload(ctx context.Context, record models.Record) (string, error)
	// GetPayload yields ErrPayloadNotFound for unknown ids.
	GetPayload(ctx context.Context, id string) (models.Record, error)
	DeletePayload(ctx context.Context, id string) error
	// Locator returns the storageProvider URI of a stored payload.
	Locator(id string) string
}

// PointerLedger is the append-only register of data pointers.
type PointerLedger interface {
	// Append stamps CreatedAt and stores pointer. Ids are unique.
	Append(ctx context.Context, pointer models.DataPointer) (models.DataPointer, error)
	Get(ctx context.Context, id string) (models.DataPointer, error)
	ListByOwner(ctx context.Context, owner string) ([]models.DataPointer, error)
	Status(ctx context.Context) (models.LedgerStatus, error)
	// Verify checks every link of the chain.
	Verify(ctx context.Context) error
}
