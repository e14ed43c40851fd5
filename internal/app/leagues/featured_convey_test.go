package leagues

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"sports-data-service/internal/domain/leagues"
	"sports-data-service/internal/providers/fixture"
)

func TestFeaturedLeaguesBehavior(t *testing.T) {
	Convey("Given the league catalog and a seeded shuffler", t, func() {
		svc := NewService(catalogStore(), Options{Shuffler: fixture.NewRand(21)})
		ctx := context.Background()

		Convey("Every call returns two distinct catalog leagues", func() {
			catalog := map[int]leagues.League{}
			for _, l := range fixture.Leagues() {
				catalog[l.ID] = l
			}
			for i := 0; i < 20; i++ {
				got, err := svc.FeaturedLeagues(ctx)
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, FeaturedCount)
				So(got[0].ID, ShouldNotEqual, got[1].ID)
				for _, l := range got {
					So(catalog[l.ID], ShouldResemble, l)
				}
			}
		})

		Convey("Repeated calls reshuffle the selection", func() {
			seen := map[[2]int]bool{}
			for i := 0; i < 30; i++ {
				got, err := svc.FeaturedLeagues(ctx)
				So(err, ShouldBeNil)
				seen[[2]int{got[0].ID, got[1].ID}] = true
			}
			So(len(seen), ShouldBeGreaterThan, 1)
		})

		Convey("The catalog itself is never reordered", func() {
			_, err := svc.FeaturedLeagues(ctx)
			So(err, ShouldBeNil)
			all, err := svc.Leagues(ctx)
			So(err, ShouldBeNil)
			So(all, ShouldResemble, fixture.Leagues())
		})
	})
}
