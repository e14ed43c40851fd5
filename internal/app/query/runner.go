// Package query runs service reads behind a simulated network latency so clients can
// exercise their loading states against in-memory data.
package query

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sports-data-service/internal/logging"
	"sports-data-service/internal/metrics"
)

// DefaultLatency is the artificial delay applied to every query unless configured otherwise.
const DefaultLatency = 500 * time.Millisecond

// Runner wraps query execution with latency, metrics and logging.
// The zero value runs queries immediately without telemetry.
type Runner struct {
	Latency  time.Duration
	Recorder *metrics.Recorder
	Logger   *slog.Logger
}

// Run waits out the configured latency, then calls fn. The wait ends early with the context
// error when ctx is canceled; fn is not called in that case.
func (r Runner) Run(ctx context.Context, operation string, fn func() error) error {
	start := time.Now()
	err := wait(ctx, r.Latency)
	if err == nil {
		err = fn()
	}
	r.Recorder.RecordQuery(operation, time.Since(start), err)

	if err != nil {
		logger := logging.FromContext(ctx, r.Logger)
		level := slog.LevelWarn
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			level = slog.LevelDebug
		}
		if logger != nil {
			logger.Log(ctx, level, "query failed",
				slog.String(logging.FieldOperation, operation),
				slog.Any("error", err),
			)
		}
	}
	return err
}

func wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
