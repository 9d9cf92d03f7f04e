package blobstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/sagarsahu/creative-vault/backend/internal/models"
)

// Document is the GORM model backing PostgresStore: one row per key.
type Document struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Data      string    `gorm:"column:data;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides GORM's pluralization.
func (Document) TableName() string { return "documents" }

// PostgresStore implements Store over a single documents table.
type PostgresStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPostgresStore migrates the documents table and returns the store.
func NewPostgresStore(db *gorm.DB, logger *zap.Logger) (*PostgresStore, error) {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, models.NewStorageError("migrating documents table", err)
	}
	return &PostgresStore{db: db, logger: logger}, nil
}

// Load implements Store.
func (s *PostgresStore) Load(ctx context.Context, key string, dest any) (bool, error) {
	var doc Document
	err := s.db.WithContext(ctx).First(&doc, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
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
func (s *PostgresStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return models.NewStorageError("encoding blob "+key, err)
	}
	doc := Document{Key: key, Data: string(raw), UpdatedAt: time.Now()}
	if err := s.db.WithContext(ctx).Save(&doc).Error; err != nil {
		return models.NewStorageError("saving blob "+key, err)
	}
	return nil
}
