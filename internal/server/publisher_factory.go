package server

import (
	"fmt"
	"log/slog"

	"sports-data-service/internal/app/games"
	"sports-data-service/internal/config"
	"sports-data-service/internal/logging"
	"sports-data-service/internal/publisher"
)

// scorePublisher is a games.ScorePublisher that owns a connection.
type scorePublisher interface {
	games.ScorePublisher
	Close() error
}

var newStreamPublisher = func(url, stream string) (scorePublisher, error) {
	return publisher.NewStreamPublisher(url, stream)
}

func buildPublisher(cfg config.Config, logger *slog.Logger) (scorePublisher, error) {
	if cfg.Redis.URL == "" {
		logging.Info(logger, "score publishing disabled, no redis url configured")
		return publisher.NopPublisher{}, nil
	}
	pub, err := newStreamPublisher(cfg.Redis.URL, cfg.Redis.Stream)
	if err != nil {
		return nil, fmt.Errorf("score publisher: %w", err)
	}
	logging.Info(logger, "score publishing enabled", slog.String("stream", cfg.Redis.Stream))
	return pub, nil
}
