package store

import (
	"sync"

	"sports-data-service/internal/domain"
	"sports-data-service/internal/domain/games"
	"sports-data-service/internal/domain/leagues"
	"sports-data-service/internal/domain/standings"
	"sports-data-service/internal/domain/teams"
)

// MemoryStore keeps a thread-safe, read-mostly snapshot of the dataset in memory.
// The snapshot is never mutated in place; Replace swaps it wholesale.
type MemoryStore struct {
	mu      sync.RWMutex
	dataset domain.Dataset
	byID    map[int]int
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[int]int),
	}
}

// Snapshot returns a copy of the current dataset.
func (s *MemoryStore) Snapshot() domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset.Clone()
}

// ListGames returns a copy of the games in generation order.
func (s *MemoryStore) ListGames() []games.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]games.Game, len(s.dataset.Games))
	for i, g := range s.dataset.Games {
		result[i] = g.Clone()
	}
	return result
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id int) (games.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return games.Game{}, false
	}
	return s.dataset.Games[idx].Clone(), true
}

// ListTeams returns a copy of the team catalog.
func (s *MemoryStore) ListTeams() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]teams.Team{}, s.dataset.Teams...)
}

// GetTeam retrieves a team by ID.
func (s *MemoryStore) GetTeam(id int) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.dataset.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return teams.Team{}, false
}

// ListLeagues returns a copy of the league catalog.
func (s *MemoryStore) ListLeagues() []leagues.League {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]leagues.League{}, s.dataset.Leagues...)
}

// ListStandings returns a copy of the standings in generation order.
func (s *MemoryStore) ListStandings() []standings.TeamStanding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]standings.TeamStanding{}, s.dataset.Standings...)
}

// Replace swaps the current dataset with a new snapshot.
func (s *MemoryStore) Replace(ds domain.Dataset) {
	ds = ds.Clone()
	byID := make(map[int]int, len(ds.Games))
	for i, g := range ds.Games {
		if _, dup := byID[g.ID]; !dup {
			byID[g.ID] = i
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = ds
	s.byID = byID
}
