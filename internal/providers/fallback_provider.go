package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sports-data-service/internal/domain"
	"sports-data-service/internal/logging"
	"sports-data-service/internal/metrics"
)

// Named pairs a provider with the name used in logs and metrics.
type Named struct {
	Name     string
	Provider DatasetProvider
}

// fallbackProvider tries each provider in order and returns the first non-empty dataset.
type fallbackProvider struct {
	chain   []Named
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewFallbackProvider chains providers; later entries are only consulted when earlier ones fail
// or return an empty dataset.
func NewFallbackProvider(logger *slog.Logger, recorder *metrics.Recorder, chain ...Named) DatasetProvider {
	return &fallbackProvider{chain: chain, logger: logger, metrics: recorder}
}

func (f *fallbackProvider) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	var errs []error
	for _, entry := range f.chain {
		if entry.Provider == nil {
			continue
		}
		start := time.Now()
		ds, err := entry.Provider.FetchDataset(ctx)
		if err == nil && ds.IsEmpty() {
			err = ErrEmptyDataset
		}
		f.metrics.RecordProviderAttempt(entry.Name, time.Since(start), err)
		if err == nil {
			logWithProvider(ctx, f.logger, slog.LevelInfo, entry.Name, "dataset loaded",
				slog.Int(logging.FieldCount, len(ds.Games)),
				slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
			)
			return ds, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Dataset{}, ctxErr
		}
		logWithProvider(ctx, f.logger, slog.LevelWarn, entry.Name, "dataset provider failed, trying next", "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", entry.Name, err))
	}
	if len(errs) == 0 {
		return domain.Dataset{}, ErrProviderUnavailable
	}
	return domain.Dataset{}, errors.Join(errs...)
}
