package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/hefin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryPayloadStorage(t *testing.T) {
	s := NewMemoryPayloadStorage()
	ctx := context.Background()

	id, err := s.SavePayload(ctx, models.Record{Owner: "alice", Meta: "lab", Payload: json.RawMessage(`{"hb":13.5}`)})
	require.NoError(t, err)
	_, err = primitive.ObjectIDFromHex(id)
	require.NoError(t, err, "ids are ObjectID hex")

	rec, err := s.GetPayload(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.JSONEq(t, `{"hb":13.5}`, string(rec.Payload))
	assert.Equal(t, "memory://records/"+id, s.Locator(id))

	require.NoError(t, s.DeletePayload(ctx, id))
	_, err = s.GetPayload(ctx, id)
	assert.ErrorIs(t, err, ErrPayloadNotFound)
}

func TestRecordDocument_BSONRoundTrip(t *testing.T) {
	created := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	doc := toRecordDocument(models.Record{Owner: "alice", Meta: "lab", Payload: json.RawMessage(`[1,"two",null]`), CreatedAt: created})
	doc.ID = primitive.NewObjectID()

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var decoded recordDocument
	require.NoError(t, bson.Unmarshal(raw, &decoded))

	rec := decoded.toRecord()
	assert.Equal(t, doc.ID.Hex(), rec.ID)
	assert.Equal(t, "alice", rec.Owner)
	assert.Equal(t, `[1,"two",null]`, string(rec.Payload))
	assert.True(t, created.Equal(rec.CreatedAt))
}

func TestMongoLocator(t *testing.T) {
	assert.Equal(t, "mongo://hefin/records/abc", mongoLocator("hefin", "abc"))
}
