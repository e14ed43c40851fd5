package providers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sports-data-service/internal/domain"
	"sports-data-service/internal/domain/games"
	"sports-data-service/internal/metrics"
	"sports-data-service/internal/testutil"
)

func datasetWithGames(n int) domain.Dataset {
	ds := domain.Dataset{}
	for i := 1; i <= n; i++ {
		ds.Games = append(ds.Games, games.Game{ID: i})
	}
	return ds
}

func staticProvider(ds domain.Dataset, err error) DatasetProvider {
	return ProviderFunc(func(ctx context.Context) (domain.Dataset, error) {
		return ds, err
	})
}

func TestFallbackProviderReturnsFirstSuccess(t *testing.T) {
	rec := metrics.NewRecorder()
	p := NewFallbackProvider(nil, rec,
		Named{Name: "snapshot", Provider: staticProvider(datasetWithGames(2), nil)},
		Named{Name: "fixture", Provider: staticProvider(datasetWithGames(20), nil)},
	)

	ds, err := p.FetchDataset(context.Background())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(ds.Games) != 2 {
		t.Fatalf("expected snapshot dataset, got %d games", len(ds.Games))
	}
	if rec.ProviderCalls("fixture") != 0 {
		t.Fatalf("expected fixture provider to be skipped")
	}
}

func TestFallbackProviderSkipsFailuresAndEmptyDatasets(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	p := NewFallbackProvider(logger, rec,
		Named{Name: "broken", Provider: staticProvider(domain.Dataset{}, errors.New("disk on fire"))},
		Named{Name: "empty", Provider: staticProvider(domain.Dataset{}, nil)},
		Named{Name: "missing"},
		Named{Name: "fixture", Provider: staticProvider(datasetWithGames(20), nil)},
	)

	ds, err := p.FetchDataset(context.Background())
	if err != nil {
		t.Fatalf("expected fallback success, got %v", err)
	}
	if len(ds.Games) != 20 {
		t.Fatalf("expected fixture dataset, got %d games", len(ds.Games))
	}
	if rec.ProviderErrors("broken") != 1 || rec.ProviderErrors("empty") != 1 {
		t.Fatalf("expected failures recorded, got %+v %+v", rec.Snapshot("broken"), rec.Snapshot("empty"))
	}
	if !strings.Contains(buf.String(), "provider=broken") {
		t.Fatalf("expected provider name in logs, got %s", buf.String())
	}
}

func TestFallbackProviderJoinsErrors(t *testing.T) {
	p := NewFallbackProvider(nil, nil,
		Named{Name: "a", Provider: staticProvider(domain.Dataset{}, errors.New("first"))},
		Named{Name: "b", Provider: staticProvider(domain.Dataset{}, nil)},
	)

	_, err := p.FetchDataset(context.Background())
	if err == nil {
		t.Fatalf("expected error when every provider fails")
	}
	if !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("expected joined error to wrap ErrEmptyDataset, got %v", err)
	}
	if !strings.Contains(err.Error(), "first") {
		t.Fatalf("expected first error preserved, got %v", err)
	}
}

func TestFallbackProviderWithoutProviders(t *testing.T) {
	_, err := NewFallbackProvider(nil, nil).FetchDataset(context.Background())
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestFallbackProviderStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewFallbackProvider(nil, nil,
		Named{Name: "a", Provider: ProviderFunc(func(ctx context.Context) (domain.Dataset, error) {
			return domain.Dataset{}, ctx.Err()
		})},
		Named{Name: "b", Provider: staticProvider(datasetWithGames(1), nil)},
	)

	if _, err := p.FetchDataset(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
