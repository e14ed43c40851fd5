package snapshots

import (
	"context"
	"fmt"
	"time"

	"sports-data-service/internal/domain"
	"sports-data-service/internal/timeutil"
)

// Provider serves the dataset snapshot written for the current day, so a restart on the
// same day reuses the data clients have already seen.
type Provider struct {
	store *FSStore
	loc   *time.Location
	now   func() time.Time
}

// NewProvider builds a snapshot-backed dataset provider. A nil loc means UTC.
func NewProvider(store *FSStore, loc *time.Location) *Provider {
	if loc == nil {
		loc = time.UTC
	}
	return &Provider{store: store, loc: loc, now: time.Now}
}

// FetchDataset loads today's snapshot or returns ErrNoSnapshot. A file filed under today
// whose dataset was generated on another day is treated as missing.
func (p *Provider) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, err
	}
	now := p.now()
	date := timeutil.FormatDate(now.In(p.loc))
	ds, err := p.store.LoadDataset(date)
	if err != nil {
		return domain.Dataset{}, err
	}
	if !timeutil.SameDay(ds.GeneratedAt, now, p.loc) {
		return domain.Dataset{}, fmt.Errorf("dataset %s generated %s: %w",
			date, ds.GeneratedAt.In(p.loc).Format(time.RFC3339), ErrNoSnapshot)
	}
	return ds, nil
}
