package providers

import (
	"context"
	"errors"
)

// ErrDocumentNotFound is returned by DocumentStore.Get when the key holds no document
var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore holds whole JSON documents by key. There is no versioning,
// TTL or partial update: Set always replaces the document.
type DocumentStore interface {
	// Get returns the raw document stored at key, or ErrDocumentNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the document stored at key
	Set(ctx context.Context, key string, value []byte) error

	// Durable reports whether documents survive a process restart
	Durable() bool
}
