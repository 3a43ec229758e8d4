package kv

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/zatekoja/clinicsite/internal/domain/providers"
	redisclient "github.com/zatekoja/clinicsite/internal/infrastructure/clients/redis"
	"github.com/zatekoja/clinicsite/pkg/config"
)

const startupPingTimeout = 3 * time.Second

// Backend is the document store chosen at process start. The choice never
// changes afterwards.
type Backend struct {
	store  providers.DocumentStore
	client *redisclient.Client
}

// ClientFactory builds a Redis client for the KV configuration
type ClientFactory func(cfg *config.KVConfig) (*redisclient.Client, error)

// SelectBackend picks the durable Redis store when both the KV endpoint and
// token are configured, and the in-memory store otherwise. A configured
// endpoint whose URL cannot be parsed also falls back to memory. Reachability
// is checked once and only logged: an unreachable store stays selected and
// its reads fall back per document.
func SelectBackend(cfg config.KVConfig, newClient ClientFactory, logger *zerolog.Logger) *Backend {
	if !cfg.Configured() {
		logger.Info().Msg("KV store not configured; content will be kept in memory")
		return &Backend{store: NewMemoryStore()}
	}

	if newClient == nil {
		newClient = redisclient.NewClient
	}

	client, err := newClient(&cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("KV store misconfigured; content will be kept in memory")
		return &Backend{store: NewMemoryStore()}
	}

	backend := &Backend{store: NewRedisStore(client), client: client}

	ctx, cancel := context.WithTimeout(context.Background(), startupPingTimeout)
	defer cancel()
	if err := backend.Ping(ctx); err != nil {
		logger.Warn().Err(err).Msg("KV store unreachable at startup; content reads will use defaults until it recovers")
	} else {
		logger.Info().Msg("KV store selected for content documents")
	}
	return backend
}

// Store returns the selected document store
func (b *Backend) Store() providers.DocumentStore {
	return b.store
}

// Durable reports whether the durable key-value store was selected
func (b *Backend) Durable() bool {
	return b.store.Durable()
}

// Ping checks the Redis connection. The memory store is always reachable.
func (b *Backend) Ping(ctx context.Context) error {
	if b.client == nil {
		return nil
	}
	return b.client.Ping(ctx)
}

// Close releases the Redis connection, if any
func (b *Backend) Close() error {
	if b.client == nil {
		return nil
	}
	return b.client.Close()
}
