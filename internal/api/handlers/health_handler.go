package handlers

import (
	"context"
	"net/http"
	"time"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports process liveness and which stores are in use
type HealthHandler struct {
	durableContent bool
	kv             Pinger
	database       Pinger
}

// NewHealthHandler creates a health handler. kv is nil when content is kept
// in memory and database is nil when no relational store is configured.
func NewHealthHandler(durableContent bool, kv, database Pinger) *HealthHandler {
	return &HealthHandler{durableContent: durableContent, kv: kv, database: database}
}

// Health handles GET /health. It always answers 200; degraded stores are
// reported in the body since every read has a fallback.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	contentStore := "memory"
	if h.durableContent {
		contentStore = "durable"
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":        "ok",
		"content_store": contentStore,
		"kv":            pingStatus(r.Context(), h.kv),
		"database":      pingStatus(r.Context(), h.database),
	})
}

func pingStatus(ctx context.Context, p Pinger) string {
	if p == nil {
		return "not_configured"
	}
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		return "unreachable"
	}
	return "ok"
}
