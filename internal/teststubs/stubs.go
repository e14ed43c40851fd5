package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"sports-data-service/internal/domain"
)

// StubProvider is a test double for providers.DatasetProvider.
type StubProvider struct {
	mu      sync.Mutex
	Dataset domain.Dataset
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// FetchDataset returns the configured dataset and error while tracking calls.
func (s *StubProvider) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Dataset, s.Err
}

// SetErr swaps the returned error while the stub may be in use.
func (s *StubProvider) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = err
}

// StubSnapshotWriter is a test double for loader.SnapshotWriter.
type StubSnapshotWriter struct {
	mu      sync.Mutex
	Written map[string]domain.Dataset // keyed by date
	Err     error
}

// WriteDatasetSnapshot records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteDatasetSnapshot(date string, ds domain.Dataset) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	if w.Written == nil {
		w.Written = make(map[string]domain.Dataset)
	}
	w.Written[date] = ds
	return nil
}

// Snapshot returns the dataset written for date.
func (w *StubSnapshotWriter) Snapshot(date string) (domain.Dataset, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	ds, ok := w.Written[date]
	return ds, ok
}
