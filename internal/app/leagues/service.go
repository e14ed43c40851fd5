package leagues

import (
	"context"
	"math/rand/v2"
	"slices"

	"sports-data-service/internal/app/query"
	"sports-data-service/internal/domain/leagues"
	"sports-data-service/internal/domain/standings"
)

// FeaturedCount is the number of leagues returned by FeaturedLeagues.
const FeaturedCount = 2

// Store defines the read contract the service needs from the dataset store.
type Store interface {
	ListLeagues() []leagues.League
	ListStandings() []standings.TeamStanding
}

// Shuffler permutes n elements through swap.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Options configures a Service. A nil Shuffler uses the process-wide random source.
type Options struct {
	Runner   query.Runner
	Shuffler Shuffler
}

// Service answers league and standings queries.
type Service struct {
	store    Store
	runner   query.Runner
	shuffler Shuffler
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, opts Options) *Service {
	shuffler := opts.Shuffler
	if shuffler == nil {
		shuffler = globalShuffler{}
	}
	return &Service{store: store, runner: opts.Runner, shuffler: shuffler}
}

// Leagues returns the full league catalog.
func (s *Service) Leagues(ctx context.Context) ([]leagues.League, error) {
	var out []leagues.League
	err := s.runner.Run(ctx, "leagues", func() error {
		out = s.store.ListLeagues()
		return nil
	})
	return out, err
}

// FeaturedLeagues returns two leagues picked at random. Each call reshuffles, so
// consecutive calls may differ.
func (s *Service) FeaturedLeagues(ctx context.Context) ([]leagues.League, error) {
	var out []leagues.League
	err := s.runner.Run(ctx, "featured_leagues", func() error {
		all := s.store.ListLeagues()
		s.shuffler.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
		out = all[:min(FeaturedCount, len(all))]
		return nil
	})
	return out, err
}

// Standings returns every team standing sorted by points, highest first.
// The league id is accepted for API compatibility; the dataset keeps a single table.
func (s *Service) Standings(ctx context.Context, leagueID int) ([]standings.TeamStanding, error) {
	var out []standings.TeamStanding
	err := s.runner.Run(ctx, "standings", func() error {
		out = s.store.ListStandings()
		slices.SortStableFunc(out, func(a, b standings.TeamStanding) int {
			return b.Points - a.Points
		})
		return nil
	})
	return out, err
}
