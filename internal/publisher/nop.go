package publisher

import (
	"context"

	domaingames "sports-data-service/internal/domain/games"
)

// NopPublisher discards score updates. It is used when no Redis URL is configured.
type NopPublisher struct{}

// PublishScore drops the update. It only fails when ctx is already done.
func (NopPublisher) PublishScore(ctx context.Context, g domaingames.Game) error {
	return ctx.Err()
}

// Close is a no-op.
func (NopPublisher) Close() error { return nil }
