package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/hefin/internal/crypto"
	"github.com/MKhiriev/hefin/models"
)

// EncryptedPayloadStorage seals record payloads before they reach the
// wrapped storage. The sealed blob is kept as a base64 JSON string so the
// stored payload stays valid JSON.
type EncryptedPayloadStorage struct {
	PayloadStorage
	cipher crypto.PayloadCipher
}

func NewEncryptedPayloadStorage(inner PayloadStorage, cipher crypto.PayloadCipher) *EncryptedPayloadStorage {
	return &EncryptedPayloadStorage{PayloadStorage: inner, cipher: cipher}
}

func (s *EncryptedPayloadStorage) SavePayload(ctx context.Context, record models.Record) (string, error) {
	blob, err := s.cipher.Seal(record.Payload)
	if err != nil {
		return "", fmt.Errorf("error sealing payload: %w", err)
	}

	// []byte encodes as a base64 string
	sealed, err := json.Marshal(blob)
	if err != nil {
		return "", fmt.Errorf("error encoding sealed payload: %w", err)
	}
	record.Payload = sealed

	return s.PayloadStorage.SavePayload(ctx, record)
}

func (s *EncryptedPayloadStorage) GetPayload(ctx context.Context, id string) (models.Record, error) {
	record, err := s.PayloadStorage.GetPayload(ctx, id)
	if err != nil {
		return models.Record{}, err
	}

	var blob []byte
	if err = json.Unmarshal(record.Payload, &blob); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", crypto.ErrDecrypt, err)
	}

	plaintext, err := s.cipher.Open(blob)
	if err != nil {
		return models.Record{}, err
	}
	record.Payload = plaintext

	return record, nil
}
