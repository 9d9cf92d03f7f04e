package blobstore

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/sagarsahu/creative-vault/backend/internal/models"
)

const documentsCollection = "documents"

// mongoDocument is the wire shape of one stored blob. The payload is kept as
// a JSON string rather than nested BSON so the adapter round-trips exactly
// what was saved.
type mongoDocument struct {
	Key       string    `bson:"_id"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore implements Store over a single MongoDB collection, one document
// per key.
type MongoStore struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewMongoStore creates a MongoStore on db's documents collection.
func NewMongoStore(db *mongo.Database, logger *zap.Logger) *MongoStore {
	return &MongoStore{
		collection: db.Collection(documentsCollection),
		logger:     logger,
	}
}

// Load implements Store.
func (s *MongoStore) Load(ctx context.Context, key string, dest any) (bool, error) {
	var doc mongoDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, models.NewStorageError("loading blob "+key, err)
	}
	if err := json.Unmarshal([]byte(doc.Data), dest); err != nil {
		s.logger.Warn("discarding undecodable blob", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// Save implements Store.
func (s *MongoStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return models.NewStorageError("encoding blob "+key, err)
	}
	doc := mongoDocument{Key: key, Data: string(raw), UpdatedAt: time.Now()}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		return models.NewStorageError("saving blob "+key, err)
	}
	return nil
}
