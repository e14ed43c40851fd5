package fixture

import (
	"fmt"
	"time"

	"sports-data-service/internal/domain"
	"sports-data-service/internal/domain/games"
	"sports-data-service/internal/domain/leagues"
	"sports-data-service/internal/domain/standings"
	"sports-data-service/internal/domain/teams"
)

const (
	// GameCount is the number of games in a generated dataset.
	GameCount = 20

	minDayOffset   = -7
	dayOffsetRange = 21 // offsets cover [-7, +14)
	maxDaysBack    = 7
	maxScore       = 100
	minPlayed      = 5
	playedRange    = 10 // played covers [5, 15)
)

// Generate builds a complete dataset relative to now using rng for every random choice.
// The same seed and now always produce the same dataset.
func Generate(now time.Time, rng Rand) domain.Dataset {
	teamCatalog := Teams()
	leagueCatalog := Leagues()

	return domain.Dataset{
		GeneratedAt: now,
		Teams:       teamCatalog,
		Leagues:     leagueCatalog,
		Games:       generateGames(now, rng, teamCatalog, leagueCatalog),
		Standings:   generateStandings(rng, teamCatalog),
	}
}

func generateGames(now time.Time, rng Rand, teamCatalog []teams.Team, leagueCatalog []leagues.League) []games.Game {
	venues := Venues()
	periods := Periods()
	out := make([]games.Game, 0, GameCount)

	for id := 1; id <= GameCount; id++ {
		home := rng.IntN(len(teamCatalog))
		away := rng.IntN(len(teamCatalog))
		for away == home {
			away = rng.IntN(len(teamCatalog))
		}
		league := leagueCatalog[rng.IntN(len(leagueCatalog))]
		status := games.Statuses[rng.IntN(len(games.Statuses))]

		scheduledAt := now.AddDate(0, 0, rng.IntN(dayOffsetRange)+minDayOffset)
		switch status {
		case games.StatusLive:
			scheduledAt = now
		case games.StatusCompleted:
			scheduledAt = now.AddDate(0, 0, -(rng.IntN(maxDaysBack) + 1))
		}

		g := games.Game{
			ID:          id,
			HomeTeam:    teamCatalog[home],
			AwayTeam:    teamCatalog[away],
			Status:      status,
			ScheduledAt: scheduledAt,
			League:      league,
			Stats:       []games.StatLine{},
		}

		if status != games.StatusScheduled {
			g.HomeScore = rng.IntN(maxScore)
			g.AwayScore = rng.IntN(maxScore)
			if status == games.StatusLive {
				g.Period = periods[rng.IntN(len(periods))]
				g.TimeRemaining = fmt.Sprintf("%d:%02d", rng.IntN(12), rng.IntN(60))
			}
			g.Stats = generateStats(rng)
		}
		g.Venue = venues[rng.IntN(len(venues))]

		out = append(out, g)
	}
	return out
}

func generateStats(rng Rand) []games.StatLine {
	return []games.StatLine{
		{
			Name:      "Shots",
			HomeValue: games.Count(rng.IntN(30) + 10),
			AwayValue: games.Count(rng.IntN(30) + 10),
		},
		{
			Name:      "Possession",
			HomeValue: games.Percent(rng.IntN(40) + 30),
			AwayValue: games.Percent(rng.IntN(40) + 30),
		},
		{
			Name:      "Fouls",
			HomeValue: games.Count(rng.IntN(15)),
			AwayValue: games.Count(rng.IntN(15)),
		},
	}
}

func generateStandings(rng Rand, teamCatalog []teams.Team) []standings.TeamStanding {
	out := make([]standings.TeamStanding, 0, len(teamCatalog))
	for _, team := range teamCatalog {
		played := rng.IntN(playedRange) + minPlayed
		won := rng.IntN(played + 1)
		out = append(out, standings.New(team.ID, team.Name, played, won))
	}
	return out
}
