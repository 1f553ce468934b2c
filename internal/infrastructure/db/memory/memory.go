// Package memory provides a map-backed blob store for tests and for running
// the server without external dependencies.
package memory

import (
	"context"
	"sync"
)

// BlobStore holds blobs in a plain map. The mutex only guards against
// accidental parallel test access; the core itself is single-writer.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string]string
}

func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: make(map[string]string)}
}

func (s *BlobStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.blobs[key]
	return val, ok, nil
}

func (s *BlobStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = value
	return nil
}

func (s *BlobStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

// Ping always succeeds; the map has no failure mode.
func (s *BlobStore) Ping(context.Context) error {
	return nil
}
