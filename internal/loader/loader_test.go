package loader

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"sports-data-service/internal/domain"
	"sports-data-service/internal/domain/games"
	"sports-data-service/internal/providers"
	"sports-data-service/internal/store"
	"sports-data-service/internal/teststubs"
	"sports-data-service/internal/testutil"
)

func datasetWithGames(n int) domain.Dataset {
	ds := domain.Dataset{Seed: 99}
	for i := 1; i <= n; i++ {
		ds.Games = append(ds.Games, games.Game{ID: i})
	}
	return ds
}

type countingSink struct {
	mu       sync.Mutex
	replaced []domain.Dataset
}

func (s *countingSink) Replace(ds domain.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaced = append(s.replaced, ds)
}

func (s *countingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.replaced)
}

func TestLoadOnceInstallsDatasetAndWritesSnapshot(t *testing.T) {
	provider := &teststubs.StubProvider{Dataset: datasetWithGames(20)}
	writer := &teststubs.StubSnapshotWriter{}
	ms := store.NewMemoryStore()

	l := New(provider, ms, Options{Writer: writer})
	l.now = testutil.NowAt(time.Date(2025, 3, 15, 23, 30, 0, 0, time.UTC))

	if err := l.LoadOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(ms.ListGames()) != 20 {
		t.Fatalf("expected dataset installed in store")
	}
	if ms.Snapshot().GeneratedAt.IsZero() {
		t.Fatalf("expected generation time stamped")
	}
	if _, ok := writer.Snapshot("2025-03-15"); !ok {
		t.Fatalf("expected snapshot written for load date")
	}

	status := l.Status()
	if !status.IsReady() || status.Games != 20 || status.Seed != 99 || status.Attempts != 1 {
		t.Fatalf("unexpected status %+v", status)
	}
}

func TestLoadOnceUsesLocationForSnapshotDate(t *testing.T) {
	writer := &teststubs.StubSnapshotWriter{}
	l := New(&teststubs.StubProvider{Dataset: datasetWithGames(1)}, &countingSink{}, Options{
		Writer:   writer,
		Location: time.FixedZone("UTC+2", 2*60*60),
	})
	l.now = testutil.NowAt(time.Date(2025, 3, 15, 23, 30, 0, 0, time.UTC))

	if err := l.LoadOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if _, ok := writer.Snapshot("2025-03-16"); !ok {
		t.Fatalf("expected snapshot dated in loader location, got %v", writer.Written)
	}
}

func TestLoadOnceTracksFailures(t *testing.T) {
	provider := &teststubs.StubProvider{Err: errors.New("boom")}
	sink := &countingSink{}
	l := New(provider, sink, Options{})

	if err := l.LoadOnce(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	status := l.Status()
	if status.IsReady() || status.LastError == "" || status.Attempts != 1 {
		t.Fatalf("unexpected status after failure %+v", status)
	}

	provider.SetErr(nil)
	if err := l.LoadOnce(context.Background()); !errors.Is(err, providers.ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
	if sink.count() != 0 {
		t.Fatalf("expected nothing installed")
	}
}

func TestLoadOnceWriteErrorLogsButSucceeds(t *testing.T) {
	writer := &teststubs.StubSnapshotWriter{Err: errors.New("write failed")}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	l := New(&teststubs.StubProvider{Dataset: datasetWithGames(2)}, &countingSink{}, Options{Writer: writer, Logger: logger})

	if err := l.LoadOnce(context.Background()); err != nil {
		t.Fatalf("expected success despite write error, got %v", err)
	}
	if !l.Status().IsReady() {
		t.Fatalf("expected ready")
	}
}

func TestStartRetriesUntilSuccessThenStops(t *testing.T) {
	provider := &teststubs.StubProvider{Dataset: datasetWithGames(3), Err: errors.New("not yet")}
	sink := &countingSink{}
	l := New(provider, sink, Options{RetryInterval: 5 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l.Start(ctx)

	deadline := time.After(time.Second)
	for provider.Calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for retry")
		case <-time.After(time.Millisecond):
		}
	}
	provider.SetErr(nil)

	for !l.Status().IsReady() {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for load")
		case <-time.After(time.Millisecond):
		}
	}

	if err := l.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
	calls := provider.Calls.Load()
	time.Sleep(20 * time.Millisecond)
	if provider.Calls.Load() != calls {
		t.Fatalf("expected no fetches after success")
	}
	if sink.count() != 1 {
		t.Fatalf("expected a single install, got %d", sink.count())
	}
}

func TestStopHaltsRetries(t *testing.T) {
	provider := &teststubs.StubProvider{Err: errors.New("down"), Notify: make(chan struct{})}
	l := New(provider, &countingSink{}, Options{RetryInterval: time.Hour})
	l.Start(context.Background())

	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for first attempt")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := l.Stop(ctx); err != nil {
		t.Fatalf("expected loop to exit, got %v", err)
	}
}

func TestStartAndStopAreIdempotent(t *testing.T) {
	l := New(&teststubs.StubProvider{Dataset: datasetWithGames(1)}, &countingSink{}, Options{})
	if err := l.Stop(context.Background()); err != nil {
		t.Fatalf("stop before start returned error: %v", err)
	}
	if err := l.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}

	l2 := New(&teststubs.StubProvider{Dataset: datasetWithGames(1)}, &countingSink{}, Options{})
	l2.Start(context.Background())
	l2.Start(context.Background())
	if err := l2.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
}

func TestNewDefaults(t *testing.T) {
	l := New(&teststubs.StubProvider{}, &countingSink{}, Options{})
	if l.interval != defaultRetryInterval || l.loc != time.UTC {
		t.Fatalf("expected defaults, got %s %v", l.interval, l.loc)
	}
}
