package service

import "errors"

var (
	ErrWrongCredentials        = errors.New("invalid email or password")
	ErrHashingPassword         = errors.New("error hashing password")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrRecordNotFound    = errors.New("not found or access denied")
	ErrPointerRejected   = errors.New("ledger rejected data pointer")
	ErrOwnerRequired     = errors.New("owner is required")
	ErrPatientIDMismatch = errors.New("patient id in body does not match path")
)
