package kv

import (
	"bytes"
	"context"
	"sync"

	"github.com/zatekoja/clinicsite/internal/domain/providers"
)

// MemoryStore is the process-local DocumentStore used when no durable store
// is configured. Values are copied on the way in and out so callers never
// share a buffer with the store.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

var _ providers.DocumentStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory document store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

// Get returns a copy of the document stored at key
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[key]
	if !ok {
		return nil, providers.ErrDocumentNotFound
	}
	return bytes.Clone(doc), nil
}

// Set stores a copy of value at key
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[key] = bytes.Clone(value)
	return nil
}

// Durable reports false: documents are lost when the process exits
func (s *MemoryStore) Durable() bool {
	return false
}
