package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	domaingames "sports-data-service/internal/domain/games"
)

// DefaultStream is the Redis stream referee score updates are appended to.
const DefaultStream = "games.scores.updates"

// ScoreEvent is the payload written for each referee score update.
type ScoreEvent struct {
	EventID    string    `json:"eventId"`
	GameID     int       `json:"gameId"`
	LeagueID   int       `json:"leagueId"`
	HomeTeamID int       `json:"homeTeamId"`
	AwayTeamID int       `json:"awayTeamId"`
	HomeScore  int       `json:"homeScore"`
	AwayScore  int       `json:"awayScore"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

// NewScoreEvent builds an event for g with a fresh id.
func NewScoreEvent(g domaingames.Game, at time.Time) ScoreEvent {
	return ScoreEvent{
		EventID:    uuid.NewString(),
		GameID:     g.ID,
		LeagueID:   g.League.ID,
		HomeTeamID: g.HomeTeam.ID,
		AwayTeamID: g.AwayTeam.ID,
		HomeScore:  g.HomeScore,
		AwayScore:  g.AwayScore,
		Status:     string(g.Status),
		OccurredAt: at.UTC(),
	}
}

type streamClient interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	Close() error
}

// StreamPublisher publishes score updates to a Redis stream.
type StreamPublisher struct {
	client streamClient
	stream string
	now    func() time.Time
}

// NewStreamPublisher connects to the Redis instance at url. Connection errors surface on
// the first publish.
func NewStreamPublisher(url, stream string) (*StreamPublisher, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return newStreamPublisher(redis.NewClient(opts), stream), nil
}

func newStreamPublisher(client streamClient, stream string) *StreamPublisher {
	if stream == "" {
		stream = DefaultStream
	}
	return &StreamPublisher{client: client, stream: stream, now: time.Now}
}

// Stream returns the stream key events are written to.
func (p *StreamPublisher) Stream() string {
	return p.stream
}

// PublishScore appends a ScoreEvent for g to the stream.
func (p *StreamPublisher) PublishScore(ctx context.Context, g domaingames.Game) error {
	event := NewScoreEvent(g, p.now())
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling score event: %w", err)
	}

	_, err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"data":     string(data),
			"event_id": event.EventID,
			"game_id":  event.GameID,
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("publishing to stream %s: %w", p.stream, err)
	}
	return nil
}

// Close releases the Redis connection pool.
func (p *StreamPublisher) Close() error {
	return p.client.Close()
}
