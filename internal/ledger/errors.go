package ledger

import "errors"

var (
	ErrOpeningLedger    = errors.New("error opening ledger")
	ErrReadingLedger    = errors.New("error reading ledger")
	ErrWritingLedger    = errors.New("error writing ledger")
	ErrInvalidPointer   = errors.New("pointer id, owner and storage provider are required")
	ErrInvalidOwner     = errors.New("owner must not contain NUL bytes")
	ErrDuplicatePointer = errors.New("pointer already exists")
	ErrPointerNotFound  = errors.New("pointer not found")
	ErrChainBroken      = errors.New("ledger chain broken")
)
