package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/hefin/internal/config"
	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const recordsCollection = "records"

// recordDocument is the MongoDB shape of a record. The payload is kept as
// its JSON text so that any JSON value round-trips unchanged.
type recordDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Owner     string             `bson:"owner"`
	Meta      string             `bson:"meta"`
	Payload   string             `bson:"payload"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func toRecordDocument(r models.Record) recordDocument {
	return recordDocument{
		Owner:     r.Owner,
		Meta:      r.Meta,
		Payload:   string(r.Payload),
		CreatedAt: r.CreatedAt,
	}
}

func (d recordDocument) toRecord() models.Record {
	return models.Record{
		ID:        d.ID.Hex(),
		Owner:     d.Owner,
		Meta:      d.Meta,
		Payload:   json.RawMessage(d.Payload),
		CreatedAt: d.CreatedAt,
	}
}

// MongoPayloadStorage stores record payloads in the "records" collection.
type MongoPayloadStorage struct {
	client     *mongo.Client
	collection *mongo.Collection
	database   string
	logger     *logger.Logger
}

// NewMongoPayloadStorage connects to MongoDB and pings the primary.
func NewMongoPayloadStorage(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*MongoPayloadStorage, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewMongoPayloadStorage").Msg("error connecting to mongo")
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewMongoPayloadStorage").Msg("error pinging mongo")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error pinging mongo: %w", err)
	}
	log.Info().Str("database", cfg.Database).Msg("connected to mongo successfully")

	return &MongoPayloadStorage{
		client:     client,
		collection: client.Database(cfg.Database).Collection(recordsCollection),
		database:   cfg.Database,
		logger:     log,
	}, nil
}

func (s *MongoPayloadStorage) SavePayload(ctx context.Context, record models.Record) (string, error) {
	log := logger.FromContext(ctx)

	result, err := s.collection.InsertOne(ctx, toRecordDocument(record))
	if err != nil {
		log.Err(err).Str("func", "*MongoPayloadStorage.SavePayload").Msg("error inserting payload")
		return "", fmt.Errorf("error inserting payload: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return id.Hex(), nil
}

func (s *MongoPayloadStorage) GetPayload(ctx context.Context, id string) (models.Record, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Record{}, ErrPayloadNotFound
	}

	var doc recordDocument
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Record{}, ErrPayloadNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*MongoPayloadStorage.GetPayload").Str("id", id).Msg("error finding payload")
		return models.Record{}, fmt.Errorf("error finding payload: %w", err)
	}

	return doc.toRecord(), nil
}

func (s *MongoPayloadStorage) DeletePayload(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidPayloadID
	}

	if _, err = s.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("error deleting payload: %w", err)
	}
	return nil
}

func (s *MongoPayloadStorage) Locator(id string) string {
	return mongoLocator(s.database, id)
}

// Close disconnects the client.
func (s *MongoPayloadStorage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func mongoLocator(database, id string) string {
	return fmt.Sprintf("mongo://%s/%s/%s", database, recordsCollection, id)
}
