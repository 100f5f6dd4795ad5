package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/praiadomeio/app-ampm/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// recordDocument is one collection blob in the records collection
type recordDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore keeps blobs as documents keyed by _id
type MongoStore struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewMongoStore creates a store over the given collection
func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection, now: time.Now}
}

func (s *MongoStore) Name() string { return "mongo" }

// Load fetches the blob document for key
func (s *MongoStore) Load(ctx context.Context, key string) ([]byte, error) {
	ctx, span, cleanup := utils.TraceStoreOperation(ctx, "load", s.Name(), key)
	defer cleanup()

	var doc recordDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		observe(s.Name(), "load", ErrKeyNotFound)
		return nil, ErrKeyNotFound
	}
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		observe(s.Name(), "load", err)
		return nil, fmt.Errorf("load %s from mongodb: %w", key, err)
	}

	observe(s.Name(), "load", nil)
	return []byte(doc.Value), nil
}

// Persist upserts the blob document for key
func (s *MongoStore) Persist(ctx context.Context, key string, data []byte) error {
	ctx, span, cleanup := utils.TraceStoreOperation(ctx, "persist", s.Name(), key)
	defer cleanup()

	doc := recordDocument{Key: key, Value: string(data), UpdatedAt: s.now().UTC()}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	observe(s.Name(), "persist", err)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return fmt.Errorf("persist %s to mongodb: %w", key, err)
	}
	return nil
}

// Ping checks the primary is reachable
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.collection.Database().Client().Ping(ctx, readpref.Primary())
}
