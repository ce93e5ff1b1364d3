package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/hefin/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryPayloadStorage keeps payloads in process memory. Ids have the same
// ObjectID hex form as the MongoDB store.
type MemoryPayloadStorage struct {
	mu      sync.RWMutex
	records map[string]models.Record
}

func NewMemoryPayloadStorage() *MemoryPayloadStorage {
	return &MemoryPayloadStorage{records: make(map[string]models.Record)}
}

func (s *MemoryPayloadStorage) SavePayload(_ context.Context, record models.Record) (string, error) {
	id := primitive.NewObjectID().Hex()
	record.ID = id

	s.mu.Lock()
	s.records[id] = record
	s.mu.Unlock()

	return id, nil
}

func (s *MemoryPayloadStorage) GetPayload(_ context.Context, id string) (models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return models.Record{}, ErrPayloadNotFound
	}
	return record, nil
}

func (s *MemoryPayloadStorage) DeletePayload(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, id)
	return nil
}

func (s *MemoryPayloadStorage) Locator(id string) string {
	return fmt.Sprintf("memory://%s/%s", recordsCollection, id)
}
