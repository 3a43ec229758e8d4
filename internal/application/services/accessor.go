package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/zatekoja/clinicsite/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/clinicsite/pkg/errors"
)

// accessor is the failure boundary shared by the relational services.
// Repository errors stop here: they are logged and counted, and callers get
// an empty result instead.
type accessor struct {
	name    string
	logger  *zerolog.Logger
	metrics *observability.Metrics
}

func newAccessor(name string, logger *zerolog.Logger, metrics *observability.Metrics) accessor {
	if logger == nil {
		logger = observability.ComponentLogger(name)
	}
	return accessor{name: name, logger: logger, metrics: metrics}
}

// observe records how long a repository call took
func (a accessor) observe(ctx context.Context, operation string, start time.Time) {
	observability.RecordDBMetric(ctx, a.metrics, a.name+"."+operation, time.Since(start))
}

// report logs a repository failure. A missing table is expected on fresh
// deployments and is logged at info level; not-found results are not
// failures at all.
func (a accessor) report(ctx context.Context, operation string, err error) {
	if err == nil || apperrors.IsNotFound(err) {
		return
	}

	logger := a.log(ctx)
	if apperrors.IsNotProvisioned(err) {
		logger.Info().Err(err).
			Str("accessor", a.name).
			Str("operation", operation).
			Msg("Table not provisioned; returning empty result")
		observability.RecordFallback(ctx, a.metrics, a.name, "not_provisioned")
		return
	}

	logger.Error().Err(err).
		Str("accessor", a.name).
		Str("operation", operation).
		Msg("Repository call failed; returning empty result")
	observability.RecordFallback(ctx, a.metrics, a.name, "error")
}

func (a accessor) log(ctx context.Context) *zerolog.Logger {
	return observability.LoggerFromContext(ctx, a.logger)
}
