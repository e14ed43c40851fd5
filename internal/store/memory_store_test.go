package store

import (
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"sports-data-service/internal/domain"
	"sports-data-service/internal/domain/games"
	"sports-data-service/internal/domain/leagues"
	"sports-data-service/internal/domain/standings"
	"sports-data-service/internal/domain/teams"
)

func sampleDataset(ids ...int) domain.Dataset {
	ds := domain.Dataset{}
	for _, id := range ids {
		ds.Games = append(ds.Games, games.Game{
			ID:     id,
			Status: games.StatusCompleted,
			Stats:  []games.StatLine{{Name: "Shots", HomeValue: "10", AwayValue: "12"}},
		})
	}
	return ds
}

func TestMemoryStore(t *testing.T) {
	Convey("Given an empty store", t, func() {
		s := NewMemoryStore()

		Convey("Then nothing is loaded", func() {
			So(s.Snapshot().IsEmpty(), ShouldBeTrue)
			So(s.ListGames(), ShouldBeEmpty)
			_, ok := s.GetGame(1)
			So(ok, ShouldBeFalse)
		})

		Convey("When a dataset is stored", func() {
			s.Replace(sampleDataset(3, 1, 2))

			Convey("Then games keep their generation order", func() {
				list := s.ListGames()
				So(list, ShouldHaveLength, 3)
				So(list[0].ID, ShouldEqual, 3)
				So(list[1].ID, ShouldEqual, 1)
				So(list[2].ID, ShouldEqual, 2)
				So(s.Snapshot().IsEmpty(), ShouldBeFalse)
			})

			Convey("Then games are found by id", func() {
				g, ok := s.GetGame(2)
				So(ok, ShouldBeTrue)
				So(g.ID, ShouldEqual, 2)
			})

			Convey("Then callers cannot mutate the stored snapshot", func() {
				list := s.ListGames()
				list[0].HomeScore = 99
				list[0].Stats[0].HomeValue = "mutated"

				g, _ := s.GetGame(3)
				g.AwayScore = 77

				snap := s.Snapshot()
				snap.Games[0].Venue = "elsewhere"

				fresh, _ := s.GetGame(3)
				So(fresh.HomeScore, ShouldEqual, 0)
				So(fresh.AwayScore, ShouldEqual, 0)
				So(fresh.Venue, ShouldBeEmpty)
				So(string(fresh.Stats[0].HomeValue), ShouldEqual, "10")
			})

			Convey("And it is replaced", func() {
				s.Replace(sampleDataset(9))

				Convey("Then the old games are gone", func() {
					_, ok := s.GetGame(3)
					So(ok, ShouldBeFalse)
					So(s.ListGames(), ShouldHaveLength, 1)
				})
			})
		})

		Convey("When the source dataset is mutated after Replace", func() {
			ds := sampleDataset(1)
			s.Replace(ds)
			ds.Games[0].HomeScore = 42

			Convey("Then the store is unaffected", func() {
				g, _ := s.GetGame(1)
				So(g.HomeScore, ShouldEqual, 0)
			})
		})
	})
}

func TestMemoryStoreCatalogs(t *testing.T) {
	Convey("Given a dataset with catalogs", t, func() {
		s := NewMemoryStore()
		ds := sampleDataset(1)
		ds.Teams = []teams.Team{{ID: 1, Name: "Green Eagles"}, {ID: 2, Name: "Blue Sharks"}}
		ds.Leagues = []leagues.League{{ID: 1, Name: "City Basketball League"}}
		ds.Standings = []standings.TeamStanding{standings.New(1, "Green Eagles", 10, 4)}
		s.Replace(ds)

		Convey("Then teams are listed and found by id", func() {
			So(s.ListTeams(), ShouldHaveLength, 2)
			team, ok := s.GetTeam(2)
			So(ok, ShouldBeTrue)
			So(team.Name, ShouldEqual, "Blue Sharks")
			_, ok = s.GetTeam(7)
			So(ok, ShouldBeFalse)
		})

		Convey("Then leagues and standings are copies", func() {
			list := s.ListLeagues()
			list[0].Name = "changed"
			So(s.ListLeagues()[0].Name, ShouldEqual, "City Basketball League")

			rows := s.ListStandings()
			rows[0].Points = 0
			So(s.ListStandings()[0].Points, ShouldEqual, 12)
		})
	})
}

func TestMemoryStoreConcurrentReadersAndReplace(t *testing.T) {
	s := NewMemoryStore()
	s.Replace(sampleDataset(1, 2, 3))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if n%4 == 0 {
					s.Replace(sampleDataset(1, 2, 3))
					continue
				}
				if got := len(s.ListGames()); got != 3 {
					t.Errorf("expected 3 games, got %d", got)
					return
				}
				if _, ok := s.GetGame(2); !ok {
					t.Errorf("expected game 2")
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
