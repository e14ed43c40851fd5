package standings

// PointsPerWin is the number of table points awarded for a win. Draws are not modeled.
const PointsPerWin = 3

// TeamStanding is a team's aggregate record for the season.
type TeamStanding struct {
	TeamID   int    `json:"teamId"`
	TeamName string `json:"teamName"`
	Played   int    `json:"played"`
	Won      int    `json:"won"`
	Lost     int    `json:"lost"`
	Points   int    `json:"points"`
}

// New derives lost and points from played and won so the record stays consistent.
func New(teamID int, teamName string, played, won int) TeamStanding {
	return TeamStanding{
		TeamID:   teamID,
		TeamName: teamName,
		Played:   played,
		Won:      won,
		Lost:     played - won,
		Points:   won * PointsPerWin,
	}
}

// Response is the payload returned by the standings endpoints.
type Response struct {
	LeagueID  int            `json:"leagueId,omitempty"`
	Standings []TeamStanding `json:"standings"`
}
