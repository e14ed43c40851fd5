package games

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"sports-data-service/internal/domain/leagues"
	"sports-data-service/internal/domain/teams"
)

// GameStatus is the lifecycle state of a game. Games move scheduled -> live -> completed.
type GameStatus string

const (
	StatusScheduled GameStatus = "scheduled"
	StatusLive      GameStatus = "live"
	StatusCompleted GameStatus = "completed"
)

// Statuses lists every status in lifecycle order.
var Statuses = []GameStatus{StatusScheduled, StatusLive, StatusCompleted}

// StatValue is one side of a stat row. Integer values encode as JSON numbers,
// anything else (e.g. "55%") as a JSON string.
type StatValue string

// Count builds a numeric stat value.
func Count(n int) StatValue {
	return StatValue(strconv.Itoa(n))
}

// Percent builds a percentage stat value such as "55%".
func Percent(n int) StatValue {
	return StatValue(strconv.Itoa(n) + "%")
}

// MarshalJSON implements json.Marshaler.
func (v StatValue) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(v), 10, 64); err == nil {
		return strconv.AppendInt(nil, n, 10), nil
	}
	return json.Marshal(string(v))
}

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (v *StatValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StatValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = StatValue(n.String())
	return nil
}

// StatLine is one row of the per-game comparison block (e.g. Shots, Possession).
type StatLine struct {
	Name      string    `json:"name"`
	HomeValue StatValue `json:"homeValue"`
	AwayValue StatValue `json:"awayValue"`
}

// Game is the canonical game shape exposed by the service.
type Game struct {
	ID            int            `json:"id"`
	HomeTeam      teams.Team     `json:"homeTeam"`
	AwayTeam      teams.Team     `json:"awayTeam"`
	HomeScore     int            `json:"homeScore"`
	AwayScore     int            `json:"awayScore"`
	Status        GameStatus     `json:"status"`
	ScheduledAt   time.Time      `json:"scheduledAt"`
	Venue         string         `json:"venue"`
	League        leagues.League `json:"league"`
	Period        string         `json:"period,omitempty"`
	TimeRemaining string         `json:"timeRemaining,omitempty"`
	Stats         []StatLine     `json:"stats"`
}

// IsLive reports whether the game is currently in progress.
func (g Game) IsLive() bool {
	return g.Status == StatusLive
}

// Clone returns a copy that shares no slices with the receiver.
func (g Game) Clone() Game {
	out := g
	if g.Stats != nil {
		out.Stats = append([]StatLine{}, g.Stats...)
	}
	return out
}

// WithScore returns a copy of the game carrying the given score. The receiver is left untouched.
func (g Game) WithScore(home, away int) Game {
	out := g.Clone()
	out.HomeScore = home
	out.AwayScore = away
	return out
}

// ListResponse is the payload returned by the game list endpoints.
type ListResponse struct {
	Date  string `json:"date,omitempty"`
	Games []Game `json:"games"`
}

// NewListResponse builds a ListResponse payload.
func NewListResponse(date string, games []Game) ListResponse {
	if games == nil {
		games = []Game{}
	}
	return ListResponse{
		Date:  date,
		Games: games,
	}
}

// ScoreUpdate is a referee edit of a live game's score.
type ScoreUpdate struct {
	HomeScore int `json:"homeScore"`
	AwayScore int `json:"awayScore"`
}
