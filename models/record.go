package models

import (
	"encoding/json"
	"time"
)

// DataPointer references an off-chain payload from the pointer ledger.
type DataPointer struct {
	ID              string    `json:"id"`
	Owner           string    `json:"owner"`
	CreatedAt       time.Time `json:"createdAt"`
	Meta            string    `json:"meta"`
	StorageProvider string    `json:"storageProvider"`
}

// Record is a payload kept in the payload store.
type Record struct {
	ID        string          `json:"id"`
	Owner     string          `json:"owner"`
	Meta      string          `json:"meta"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}

// RecordRequest is the record upload payload.
type RecordRequest struct {
	OwnerPrincipal string          `json:"ownerPrincipal"`
	Meta           string          `json:"meta"`
	Payload        json.RawMessage `json:"payload"`
}

// RecordWithPointer pairs a pointer with the payload it references.
type RecordWithPointer struct {
	Pointer DataPointer `json:"pointer"`
	Record  Record      `json:"record"`
}

// LedgerStatus describes the pointer ledger.
type LedgerStatus struct {
	Status   string `json:"status"`
	Height   uint64 `json:"height"`
	HeadHash string `json:"headHash"`
	Verified bool   `json:"verified"`
}
