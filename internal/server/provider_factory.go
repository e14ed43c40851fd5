package server

import (
	"log/slog"
	"time"

	"sports-data-service/internal/config"
	"sports-data-service/internal/metrics"
	"sports-data-service/internal/providers"
	"sports-data-service/internal/providers/fixture"
	"sports-data-service/internal/snapshots"
)

const (
	providerSnapshot = "snapshot"
	providerFixture  = "fixture"
)

// providerFactory assembles the dataset provider chain: today's snapshot when loading is
// enabled, then the fixture generator.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

func (f providerFactory) build(cfg config.Config, snaps snapshotComponents, loc *time.Location) providers.DatasetProvider {
	return providers.NewFallbackProvider(f.logger, f.metrics, f.chain(cfg, snaps, loc)...)
}

func (f providerFactory) chain(cfg config.Config, snaps snapshotComponents, loc *time.Location) []providers.Named {
	var chain []providers.Named
	if snaps.store != nil {
		chain = append(chain, providers.Named{
			Name:     providerSnapshot,
			Provider: snapshots.NewProvider(snaps.store, loc),
		})
	}
	return append(chain, providers.Named{
		Name:     providerFixture,
		Provider: fixture.New(cfg.DataSeed),
	})
}
