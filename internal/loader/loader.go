// Package loader builds the dataset once at startup and installs it in the store,
// retrying on an interval until the first success.
package loader

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"sports-data-service/internal/domain"
	"sports-data-service/internal/logging"
	"sports-data-service/internal/providers"
	"sports-data-service/internal/timeutil"
)

const defaultRetryInterval = 5 * time.Second

// Sink receives the loaded dataset.
type Sink interface {
	Replace(domain.Dataset)
}

// SnapshotWriter persists dataset snapshots to disk.
type SnapshotWriter interface {
	WriteDatasetSnapshot(date string, ds domain.Dataset) error
}

// Options configures a Loader. Zero values mean no snapshot writes, UTC dates and the
// default retry interval.
type Options struct {
	Writer        SnapshotWriter
	Logger        *slog.Logger
	RetryInterval time.Duration
	Location      *time.Location
}

// Loader fetches the dataset from a provider and hands it to a Sink.
type Loader struct {
	provider providers.DatasetProvider
	sink     Sink
	writer   SnapshotWriter
	logger   *slog.Logger
	interval time.Duration
	loc      *time.Location
	now      func() time.Time

	done     chan struct{}
	finished chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the load attempts made so far.
type Status struct {
	Attempts    int
	LastError   string
	LastAttempt time.Time
	LoadedAt    time.Time
	Seed        uint64
	Games       int
}

// IsReady reports whether a dataset has been installed.
func (s Status) IsReady() bool {
	return !s.LoadedAt.IsZero()
}

// New constructs a Loader.
func New(provider providers.DatasetProvider, sink Sink, opts Options) *Loader {
	interval := opts.RetryInterval
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Loader{
		provider: provider,
		sink:     sink,
		writer:   opts.Writer,
		logger:   opts.Logger,
		interval: interval,
		loc:      loc,
		now:      time.Now,
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// Start loads in the background until one attempt succeeds, the context is canceled or
// Stop is called.
func (l *Loader) Start(ctx context.Context) {
	l.startMu.Lock()
	if l.started {
		l.startMu.Unlock()
		return
	}
	l.started = true
	l.startMu.Unlock()

	go func() {
		defer close(l.finished)
		for {
			if err := l.LoadOnce(ctx); err == nil {
				return
			}
			timer := time.NewTimer(l.interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-l.done:
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// Stop halts retries and waits for the background loop to exit or ctx to end.
func (l *Loader) Stop(ctx context.Context) error {
	l.stopOnce.Do(func() { close(l.done) })

	l.startMu.Lock()
	started := l.started
	l.startMu.Unlock()
	if !started {
		return nil
	}
	select {
	case <-l.finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LoadOnce performs a single fetch-and-install attempt.
func (l *Loader) LoadOnce(ctx context.Context) error {
	start := l.now()
	ds, err := l.provider.FetchDataset(ctx)
	if err == nil && ds.IsEmpty() {
		err = providers.ErrEmptyDataset
	}
	if err != nil {
		l.recordFailure(err, start)
		logging.Error(l.logger, "dataset load failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		return err
	}

	if ds.GeneratedAt.IsZero() {
		ds.GeneratedAt = start
	}
	l.sink.Replace(ds)

	if l.writer != nil {
		date := timeutil.FormatDate(start.In(l.loc))
		if writeErr := l.writer.WriteDatasetSnapshot(date, ds); writeErr != nil {
			logging.Warn(l.logger, "dataset snapshot write failed",
				slog.String(logging.FieldDate, date),
				slog.Any("error", writeErr),
			)
		}
	}

	l.recordSuccess(ds, start)
	logging.Info(l.logger, "dataset loaded",
		slog.Int(logging.FieldCount, len(ds.Games)),
		slog.Uint64("seed", ds.Seed),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}

func (l *Loader) recordSuccess(ds domain.Dataset, at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.Attempts++
	l.status.LastAttempt = at
	l.status.LastError = ""
	l.status.LoadedAt = at
	l.status.Seed = ds.Seed
	l.status.Games = len(ds.Games)
}

func (l *Loader) recordFailure(err error, at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.Attempts++
	l.status.LastAttempt = at
	l.status.LastError = err.Error()
}

// Status returns a snapshot of the loader's progress.
func (l *Loader) Status() Status {
	l.statusMu.RLock()
	defer l.statusMu.RUnlock()
	return l.status
}
