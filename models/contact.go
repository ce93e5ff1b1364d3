package models

import "time"

// ContactKind distinguishes the forms that produce a [Contact].
type ContactKind string

const (
	ContactKindContact      ContactKind = "contact"
	ContactKindConsultation ContactKind = "consultation"
)

// Contact is a stored contact or consultation form submission.
type Contact struct {
	ID            string      `json:"id"`
	Kind          ContactKind `json:"kind"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	Email         string      `json:"email"`
	Organization  *string     `json:"organization"`
	Phone         string      `json:"phone,omitempty"`
	Service       string      `json:"service,omitempty"`
	PreferredDate string      `json:"preferredDate,omitempty"`
	Message       string      `json:"message"`
	CreatedAt     time.Time   `json:"createdAt"`
	IPAddress     string      `json:"ipAddress"`
}

// ContactRequest is the contact form payload.
type ContactRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Message      string `json:"message"`
}

// ConsultationRequest is the consultation booking payload.
type ConsultationRequest struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"omitempty,max=32"`
	Service       string `json:"service" validate:"required,oneof=hsa insurance retirement financing general"`
	PreferredDate string `json:"preferredDate" validate:"omitempty,datetime=2006-01-02"`
	Message       string `json:"message" validate:"max=5000"`
}
