package testutil

import (
	"time"

	"sports-data-service/internal/domain"
	"sports-data-service/internal/domain/games"
	"sports-data-service/internal/domain/leagues"
	"sports-data-service/internal/domain/teams"
	"sports-data-service/internal/providers/fixture"
)

// SampleGame returns a minimal game fixture with the provided id, status and start time.
func SampleGame(id int, status games.GameStatus, at time.Time) games.Game {
	g := games.Game{
		ID:          id,
		HomeTeam:    teams.Team{ID: 1, Name: "Green Eagles"},
		AwayTeam:    teams.Team{ID: 2, Name: "Blue Sharks"},
		Status:      status,
		ScheduledAt: at,
		Venue:       "City Arena",
		League:      leagues.League{ID: 1, Name: "City Basketball League", Sport: "Basketball"},
		Stats:       []games.StatLine{},
	}
	if status != games.StatusScheduled {
		g.Stats = []games.StatLine{{Name: "Shots", HomeValue: "20", AwayValue: "18"}}
	}
	if status == games.StatusLive {
		g.Period = "2nd"
		g.TimeRemaining = "5:07"
	}
	return g
}

// SampleDataset generates a full dataset anchored at now with a fixed seed.
func SampleDataset(now time.Time, seed uint64) domain.Dataset {
	ds := fixture.Generate(now, fixture.NewRand(seed))
	ds.Seed = seed
	return ds
}

// DatasetWithGames wraps games in a dataset carrying the fixed catalogs.
func DatasetWithGames(list ...games.Game) domain.Dataset {
	return domain.Dataset{
		Teams:   fixture.Teams(),
		Leagues: fixture.Leagues(),
		Games:   list,
	}
}
