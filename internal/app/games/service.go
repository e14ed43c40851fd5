package games

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"sports-data-service/internal/app/query"
	domaingames "sports-data-service/internal/domain/games"
	"sports-data-service/internal/logging"
	"sports-data-service/internal/timeutil"
)

const (
	upcomingLimit    = 5
	recentLimit      = 10
	assignmentLimit  = 6
	assignmentStride = 3

	// MaxScore bounds referee score input.
	MaxScore = 999

	defaultPublishTimeout = 500 * time.Millisecond
)

// Store defines the read contract the service needs from the dataset store.
type Store interface {
	ListGames() []domaingames.Game
	GetGame(id int) (domaingames.Game, bool)
}

// ScorePublisher fans out referee score updates to subscribers.
type ScorePublisher interface {
	PublishScore(ctx context.Context, game domaingames.Game) error
}

// Options configures a Service. Zero values mean no latency, local time and no telemetry.
type Options struct {
	Runner    query.Runner
	Location  *time.Location
	Publisher ScorePublisher
	// PublishTimeout caps each score publish. Defaults to 500ms.
	PublishTimeout time.Duration
}

// Service answers game queries over the current dataset snapshot.
type Service struct {
	store          Store
	runner         query.Runner
	loc            *time.Location
	publisher      ScorePublisher
	publishTimeout time.Duration
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, opts Options) *Service {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	publishTimeout := opts.PublishTimeout
	if publishTimeout <= 0 {
		publishTimeout = defaultPublishTimeout
	}
	return &Service{
		store:          store,
		runner:         opts.Runner,
		loc:            loc,
		publisher:      opts.Publisher,
		publishTimeout: publishTimeout,
	}
}

// Location returns the calendar location used for day comparisons.
func (s *Service) Location() *time.Location {
	return s.loc
}

// UpcomingGames returns up to five scheduled games, soonest first.
func (s *Service) UpcomingGames(ctx context.Context) ([]domaingames.Game, error) {
	var out []domaingames.Game
	err := s.runner.Run(ctx, "upcoming_games", func() error {
		out = filterStatus(s.store.ListGames(), domaingames.StatusScheduled)
		slices.SortStableFunc(out, func(a, b domaingames.Game) int {
			return a.ScheduledAt.Compare(b.ScheduledAt)
		})
		out = capAt(out, upcomingLimit)
		return nil
	})
	return out, err
}

// LiveGames returns every game in progress in dataset order.
func (s *Service) LiveGames(ctx context.Context) ([]domaingames.Game, error) {
	var out []domaingames.Game
	err := s.runner.Run(ctx, "live_games", func() error {
		out = filterStatus(s.store.ListGames(), domaingames.StatusLive)
		return nil
	})
	return out, err
}

// RecentGames returns up to ten completed games, most recent first.
func (s *Service) RecentGames(ctx context.Context) ([]domaingames.Game, error) {
	var out []domaingames.Game
	err := s.runner.Run(ctx, "recent_games", func() error {
		out = filterStatus(s.store.ListGames(), domaingames.StatusCompleted)
		slices.SortStableFunc(out, func(a, b domaingames.Game) int {
			return b.ScheduledAt.Compare(a.ScheduledAt)
		})
		out = capAt(out, recentLimit)
		return nil
	})
	return out, err
}

// GamesByDate returns games whose start falls on the same calendar day as date, compared in
// the service location. Time of day is ignored.
func (s *Service) GamesByDate(ctx context.Context, date time.Time) ([]domaingames.Game, error) {
	var out []domaingames.Game
	err := s.runner.Run(ctx, "games_by_date", func() error {
		out = []domaingames.Game{}
		for _, g := range s.store.ListGames() {
			if timeutil.SameDay(g.ScheduledAt, date, s.loc) {
				out = append(out, g)
			}
		}
		return nil
	})
	return out, err
}

// GameByID returns the game with the given id or ErrGameNotFound.
func (s *Service) GameByID(ctx context.Context, id int) (domaingames.Game, error) {
	var out domaingames.Game
	err := s.runner.Run(ctx, "game_by_id", func() error {
		g, ok := s.store.GetGame(id)
		if !ok {
			return fmt.Errorf("game %d: %w", id, ErrGameNotFound)
		}
		out = g
		return nil
	})
	return out, err
}

// RefereeAssignments returns every third game of the dataset, starting with the first,
// capped at six.
func (s *Service) RefereeAssignments(ctx context.Context) ([]domaingames.Game, error) {
	var out []domaingames.Game
	err := s.runner.Run(ctx, "referee_assignments", func() error {
		out = []domaingames.Game{}
		for i, g := range s.store.ListGames() {
			if i%assignmentStride == 0 {
				out = append(out, g)
			}
		}
		out = capAt(out, assignmentLimit)
		return nil
	})
	return out, err
}

// ApplyScore returns a copy of a live game carrying the referee's score and publishes it.
// The dataset itself is not modified.
func (s *Service) ApplyScore(ctx context.Context, id int, update domaingames.ScoreUpdate) (domaingames.Game, error) {
	var out domaingames.Game
	err := s.runner.Run(ctx, "apply_score", func() error {
		if !validScore(update.HomeScore) || !validScore(update.AwayScore) {
			return fmt.Errorf("score %d-%d: %w", update.HomeScore, update.AwayScore, ErrInvalidScore)
		}
		g, ok := s.store.GetGame(id)
		if !ok {
			return fmt.Errorf("game %d: %w", id, ErrGameNotFound)
		}
		if !g.IsLive() {
			return fmt.Errorf("game %d is %s: %w", id, g.Status, ErrGameNotLive)
		}
		out = g.WithScore(update.HomeScore, update.AwayScore)
		return nil
	})
	if err != nil {
		return domaingames.Game{}, err
	}
	s.publish(ctx, out)
	return out, nil
}

func (s *Service) publish(ctx context.Context, g domaingames.Game) {
	if s.publisher == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()
	start := time.Now()
	err := s.publisher.PublishScore(pubCtx, g)
	s.runner.Recorder.RecordScorePublish(time.Since(start), err)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.runner.Logger), "score publish failed",
			slog.Int(logging.FieldGameID, g.ID),
			slog.Any("error", err),
		)
	}
}

func validScore(v int) bool {
	return v >= 0 && v <= MaxScore
}

func filterStatus(list []domaingames.Game, status domaingames.GameStatus) []domaingames.Game {
	out := make([]domaingames.Game, 0, len(list))
	for _, g := range list {
		if g.Status == status {
			out = append(out, g)
		}
	}
	return out
}

func capAt(list []domaingames.Game, limit int) []domaingames.Game {
	if len(list) > limit {
		return list[:limit]
	}
	return list
}
