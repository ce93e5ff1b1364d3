package store

import "errors"

// Sentinel errors returned by repositories. Callers match them with
// [errors.Is].
var (
	// ErrEmailAlreadyExists is returned when registering an email that is
	// already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	ErrUserNotFound    = errors.New("user was not found")
	ErrPatientNotFound = errors.New("patient was not found")
	ErrPayloadNotFound = errors.New("payload was not found")

	// ErrInvalidPayloadID is returned when an id cannot belong to the
	// payload store (for example, a malformed ObjectID).
	ErrInvalidPayloadID = errors.New("invalid payload id")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan row")
	ErrScanningRows       = errors.New("failed to scan rows")
)
