package teams

import (
	"context"
	"errors"
	"fmt"

	"sports-data-service/internal/app/query"
	"sports-data-service/internal/domain/teams"
)

// ErrTeamNotFound is returned when no team matches the requested id.
var ErrTeamNotFound = errors.New("team not found")

// Store defines the contract for retrieving teams.
type Store interface {
	ListTeams() []teams.Team
	GetTeam(id int) (teams.Team, bool)
}

// Service coordinates team operations using a Store.
type Service struct {
	store  Store
	runner query.Runner
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, runner query.Runner) *Service {
	return &Service{store: store, runner: runner}
}

// Teams returns the team catalog.
func (s *Service) Teams(ctx context.Context) ([]teams.Team, error) {
	var out []teams.Team
	err := s.runner.Run(ctx, "teams", func() error {
		out = s.store.ListTeams()
		return nil
	})
	return out, err
}

// TeamByID returns a single team or ErrTeamNotFound.
func (s *Service) TeamByID(ctx context.Context, id int) (teams.Team, error) {
	var out teams.Team
	err := s.runner.Run(ctx, "team_by_id", func() error {
		t, ok := s.store.GetTeam(id)
		if !ok {
			return fmt.Errorf("team %d: %w", id, ErrTeamNotFound)
		}
		out = t
		return nil
	})
	return out, err
}
