package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	domaingames "sports-data-service/internal/domain/games"
	"sports-data-service/internal/domain/leagues"
	"sports-data-service/internal/domain/teams"
)

type fakeStream struct {
	args   []*redis.XAddArgs
	err    error
	closed bool
}

func (f *fakeStream) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.args = append(f.args, a)
	return redis.NewStringResult("1700000000000-0", f.err)
}

func (f *fakeStream) Close() error {
	f.closed = true
	return nil
}

func liveGame() domaingames.Game {
	return domaingames.Game{
		ID:        7,
		HomeTeam:  teams.Team{ID: 1},
		AwayTeam:  teams.Team{ID: 4},
		HomeScore: 12,
		AwayScore: 9,
		Status:    domaingames.StatusLive,
		League:    leagues.League{ID: 2},
	}
}

func TestPublishScoreWritesEventToStream(t *testing.T) {
	fake := &fakeStream{}
	p := newStreamPublisher(fake, "")
	at := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return at }

	if err := p.PublishScore(context.Background(), liveGame()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(fake.args) != 1 {
		t.Fatalf("expected one XADD, got %d", len(fake.args))
	}
	args := fake.args[0]
	if args.Stream != DefaultStream || p.Stream() != DefaultStream {
		t.Fatalf("expected default stream, got %s", args.Stream)
	}

	values, ok := args.Values.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected values type %T", args.Values)
	}
	var event ScoreEvent
	if err := json.Unmarshal([]byte(values["data"].(string)), &event); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if event.GameID != 7 || event.HomeScore != 12 || event.AwayScore != 9 || event.LeagueID != 2 {
		t.Fatalf("unexpected event %+v", event)
	}
	if !event.OccurredAt.Equal(at) || event.Status != "live" {
		t.Fatalf("unexpected event metadata %+v", event)
	}
	if _, err := uuid.Parse(event.EventID); err != nil || values["event_id"] != event.EventID {
		t.Fatalf("expected uuid event id, got %q", event.EventID)
	}
	if values["game_id"] != 7 {
		t.Fatalf("expected game_id field, got %v", values["game_id"])
	}
}

func TestPublishScoreWrapsRedisErrors(t *testing.T) {
	redisErr := errors.New("connection refused")
	p := newStreamPublisher(&fakeStream{err: redisErr}, "scores")

	err := p.PublishScore(context.Background(), liveGame())
	if !errors.Is(err, redisErr) {
		t.Fatalf("expected wrapped redis error, got %v", err)
	}
}

func TestEventIDsAreUnique(t *testing.T) {
	a := NewScoreEvent(liveGame(), time.Now())
	b := NewScoreEvent(liveGame(), time.Now())
	if a.EventID == b.EventID {
		t.Fatalf("expected distinct event ids")
	}
}

func TestNewStreamPublisher(t *testing.T) {
	if _, err := NewStreamPublisher("not a url", "scores"); err == nil {
		t.Fatalf("expected parse error")
	}
	p, err := NewStreamPublisher("redis://localhost:6379/0", "scores")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if p.Stream() != "scores" {
		t.Fatalf("expected configured stream, got %s", p.Stream())
	}
	if err := p.Close(); err != nil {
		t.Fatalf("unexpected close error %v", err)
	}
}

func TestCloseReleasesClient(t *testing.T) {
	fake := &fakeStream{}
	if err := newStreamPublisher(fake, "s").Close(); err != nil || !fake.closed {
		t.Fatalf("expected client closed")
	}
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	if err := p.PublishScore(context.Background(), liveGame()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.PublishScore(ctx, liveGame()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	expired, cancelExpired := context.WithDeadline(context.Background(), time.Unix(0, 0))
	defer cancelExpired()
	if err := p.PublishScore(expired, liveGame()); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("unexpected close error %v", err)
	}
}
