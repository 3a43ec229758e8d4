package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/zatekoja/clinicsite/internal/domain/providers"
	redisclient "github.com/zatekoja/clinicsite/internal/infrastructure/clients/redis"
)

// RedisStore implements DocumentStore on top of Redis string keys
type RedisStore struct {
	client *redisclient.Client
}

var _ providers.DocumentStore = (*RedisStore)(nil)

// NewRedisStore creates a new Redis-backed document store
func NewRedisStore(client *redisclient.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get retrieves the document stored at key
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := s.client.Client().Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, providers.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s from kv store: %w", key, err)
	}
	return result, nil
}

// Set replaces the document stored at key. Documents never expire.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Client().Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s in kv store: %w", key, err)
	}
	return nil
}

// Durable reports true: Redis outlives the process
func (s *RedisStore) Durable() bool {
	return true
}
