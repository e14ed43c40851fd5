package fixture

import (
	"context"
	"time"

	"sports-data-service/internal/domain"
)

// Provider generates a synthetic dataset, useful for demos and local testing.
type Provider struct {
	seed uint64
	now  func() time.Time
}

// New creates a fixture provider. A zero seed derives one from the clock at fetch time.
func New(seed uint64) *Provider {
	return &Provider{
		seed: seed,
		now:  time.Now,
	}
}

// FetchDataset generates a fresh dataset anchored at the current time.
func (p *Provider) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, err
	}
	now := p.now()
	seed := p.seed
	if seed == 0 {
		seed = SeedFromTime(now)
	}
	ds := Generate(now, NewRand(seed))
	ds.Seed = seed
	return ds, nil
}
