package blobstore

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// MemoryStore implements Store with an in-process map. Used by tests and by
// credential-free local runs; contents do not survive a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	blobs  map[string][]byte
	logger *zap.Logger
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		blobs:  make(map[string][]byte),
		logger: logger,
	}
}

// Load implements Store.
func (s *MemoryStore) Load(ctx context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.blobs[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.logger.Warn("discarding undecodable blob", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// Save implements Store.
func (s *MemoryStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.blobs[key] = raw
	s.mu.Unlock()
	return nil
}

// Put stores a raw blob directly, bypassing JSON encoding. Tests use it to
// plant malformed payloads.
func (s *MemoryStore) Put(key string, raw []byte) {
	s.mu.Lock()
	s.blobs[key] = raw
	s.mu.Unlock()
}
