package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"sports-data-service/internal/config"
	"sports-data-service/internal/metrics"
	"sports-data-service/internal/snapshots"
	"sports-data-service/internal/testutil"
)

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return metrics.NewRecorder(), http.NewServeMux(), func(context.Context) error { return nil }, nil
	}

	rec, srv, stop := buildMetrics(config.Config{
		Metrics: config.MetricsConfig{Enabled: true, Port: "9999"},
	}, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("expected metrics addr :9999, got %s", srv.Addr())
	}
}

func TestBuildMetricsFallsBackOnSetupFailure(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	rec, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}}, nil, nil)
	if rec == nil {
		t.Fatalf("expected fallback recorder on setup failure")
	}
	if srv != nil || stop != nil {
		t.Fatalf("expected no metrics server after setup failure")
	}
}

func TestBuildMetricsUsesInjectedRecorder(t *testing.T) {
	injected, _ := testutil.NewRecorderWithShutdown()
	rec, srv, stop := buildMetrics(config.Config{Metrics: config.MetricsConfig{Enabled: true}}, nil, injected)
	if rec != injected || srv != nil || stop != nil {
		t.Fatalf("expected injected recorder used as-is")
	}
}

func TestBuildSnapshots(t *testing.T) {
	cfg := config.Default()
	cfg.Snapshots.Dir = t.TempDir()

	if comps := buildSnapshots(cfg); comps.store != nil || comps.writer != nil {
		t.Fatalf("expected snapshots disabled by default")
	}

	cfg.Snapshots.Enabled = true
	cfg.Snapshots.Load = true
	comps := buildSnapshots(cfg)
	if comps.store == nil || comps.writer == nil {
		t.Fatalf("expected snapshot store and writer")
	}
	if comps.writer.BasePath() != cfg.Snapshots.Dir {
		t.Fatalf("expected writer rooted at %s, got %s", cfg.Snapshots.Dir, comps.writer.BasePath())
	}
}

func TestProviderChain(t *testing.T) {
	f := newProviderFactory(nil, nil)
	cfg := config.Default()

	chain := f.chain(cfg, snapshotComponents{}, time.UTC)
	if len(chain) != 1 || chain[0].Name != providerFixture {
		t.Fatalf("expected fixture-only chain, got %+v", chain)
	}

	chain = f.chain(cfg, snapshotComponents{store: snapshots.NewFSStore(t.TempDir())}, time.UTC)
	if len(chain) != 2 || chain[0].Name != providerSnapshot || chain[1].Name != providerFixture {
		t.Fatalf("expected snapshot then fixture, got %+v", chain)
	}
}

func TestProviderChainFallsBackWhenSnapshotMissing(t *testing.T) {
	rec := metrics.NewRecorder()
	cfg := config.Default()
	cfg.DataSeed = 9
	provider := newProviderFactory(nil, rec).build(cfg, snapshotComponents{store: snapshots.NewFSStore(t.TempDir())}, time.UTC)

	ds, err := provider.FetchDataset(context.Background())
	if err != nil {
		t.Fatalf("expected fixture fallback, got %v", err)
	}
	if ds.Seed != 9 || len(ds.Games) != 20 {
		t.Fatalf("unexpected dataset seed=%d games=%d", ds.Seed, len(ds.Games))
	}
	if rec.ProviderErrors(providerSnapshot) != 1 {
		t.Fatalf("expected snapshot miss recorded as an error")
	}
}

func TestBuildPublisherWrapsErrors(t *testing.T) {
	orig := newStreamPublisher
	defer func() { newStreamPublisher = orig }()
	newStreamPublisher = func(url, stream string) (scorePublisher, error) {
		return nil, errors.New("dial")
	}

	cfg := config.Default()
	cfg.Redis.URL = "redis://localhost:6379"
	if _, err := buildPublisher(cfg, nil); err == nil {
		t.Fatalf("expected publisher error")
	}
}
