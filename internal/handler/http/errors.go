// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware. Header parsing errors
// come from [utils.ParseBearerToken].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
)

// Public messages of the response envelope.
const (
	msgValidationFailed  = "Validation failed"
	msgInvalidJSON       = "Invalid JSON was passed"
	msgNotFound          = "API endpoint not found"
	msgInternal          = "Internal server error"
	msgUnauthorized      = "Authorization required"
	msgInvalidToken      = "Invalid or expired token"
	msgTooManyRequests   = "Too many requests, please try again later"
	msgIntegrityFailed   = "Integrity check failed"
	msgContactSubmitted  = "Contact form submitted successfully"
	msgContactFailed     = "Failed to submit contact form"
	msgConsultSubmitted  = "Consultation request submitted successfully"
	msgConsultFailed     = "Failed to submit consultation request"
	msgCalculationFailed = "Calculation failed"
	msgContactsFailed    = "Failed to retrieve contacts"
	msgRegisterFailed    = "Registration failed"
	msgLoginFailed       = "Login failed"
	msgPatientDeleted    = "Patient deleted"
	msgPatientsFailed    = "Failed to process patient request"
	msgRecordsFailed     = "Failed to process record request"
)
