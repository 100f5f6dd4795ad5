package store

import (
	"context"
	"sync"
)

// MemoryStore keeps blobs in process memory
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Name() string { return "memory" }

// Load returns a copy of the blob stored under key
func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[key]
	if !ok {
		observe(s.Name(), "load", ErrKeyNotFound)
		return nil, ErrKeyNotFound
	}
	observe(s.Name(), "load", nil)
	return append([]byte(nil), data...), nil
}

// Persist replaces the blob stored under key
func (s *MemoryStore) Persist(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = append([]byte(nil), data...)
	observe(s.Name(), "persist", nil)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }
