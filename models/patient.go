package models

import "time"

// Patient is a registered patient record.
type Patient struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"firstName" validate:"required,max=100"`
	LastName          string    `json:"lastName" validate:"required,max=100"`
	DateOfBirth       string    `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender            string    `json:"gender" validate:"omitempty,oneof=male female other unknown"`
	Email             string    `json:"email" validate:"omitempty,email"`
	Phone             string    `json:"phone" validate:"omitempty,max=32"`
	Address           string    `json:"address" validate:"omitempty,max=200"`
	InsuranceProvider string    `json:"insuranceProvider" validate:"omitempty,max=100"`
	PolicyNumber      string    `json:"policyNumber" validate:"omitempty,max=64"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// PatientFilter narrows a patient listing.
type PatientFilter struct {
	// Search matches first name, last name or email, case-insensitively.
	Search string
	Limit  uint64
	Offset uint64
}
