package fixture

import (
	"sports-data-service/internal/domain/leagues"
	"sports-data-service/internal/domain/teams"
)

const logoQuery = "?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"

// Teams returns the fixed team catalog.
func Teams() []teams.Team {
	return []teams.Team{
		{ID: 1, Name: "Green Eagles", Logo: "https://images.pexels.com/photos/855414/pexels-photo-855414.jpeg" + logoQuery},
		{ID: 2, Name: "Blue Sharks", Logo: "https://images.pexels.com/photos/615336/pexels-photo-615336.jpeg" + logoQuery},
		{ID: 3, Name: "Red Dragons", Logo: "https://images.pexels.com/photos/3755440/pexels-photo-3755440.jpeg" + logoQuery},
		{ID: 4, Name: "Yellow Tigers", Logo: "https://images.pexels.com/photos/7835663/pexels-photo-7835663.jpeg" + logoQuery},
		{ID: 5, Name: "Purple Panthers", Logo: "https://images.pexels.com/photos/33961/pexels-photo.jpg" + logoQuery},
		{ID: 6, Name: "Orange Owls", Logo: "https://images.pexels.com/photos/2261/food-man-person-face.jpg" + logoQuery},
	}
}

// Leagues returns the fixed league catalog.
func Leagues() []leagues.League {
	return []leagues.League{
		{
			ID:        1,
			Name:      "City Basketball League",
			Logo:      "https://images.pexels.com/photos/976873/pexels-photo-976873.jpeg" + logoQuery,
			Sport:     "Basketball",
			TeamCount: 8,
			Season:    "2025",
		},
		{
			ID:        2,
			Name:      "Regional Soccer Cup",
			Logo:      "https://images.pexels.com/photos/46798/the-ball-stadion-football-the-pitch-46798.jpeg" + logoQuery,
			Sport:     "Soccer",
			TeamCount: 12,
			Season:    "2025",
		},
		{
			ID:        3,
			Name:      "Downtown Volleyball",
			Logo:      "https://images.pexels.com/photos/1263426/pexels-photo-1263426.jpeg" + logoQuery,
			Sport:     "Volleyball",
			TeamCount: 6,
			Season:    "2025",
		},
	}
}

// Venues returns the venues games are played at.
func Venues() []string {
	return []string{"City Arena", "Downtown Stadium", "West Park Court", "East Side Gym"}
}

// Periods returns the period labels used for live games.
func Periods() []string {
	return []string{"1st", "2nd", "3rd", "4th"}
}
