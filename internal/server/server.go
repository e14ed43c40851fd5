package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"sports-data-service/internal/app/games"
	"sports-data-service/internal/app/leagues"
	"sports-data-service/internal/app/query"
	"sports-data-service/internal/app/teams"
	"sports-data-service/internal/config"
	httpserver "sports-data-service/internal/http"
	"sports-data-service/internal/http/handlers"
	"sports-data-service/internal/loader"
	"sports-data-service/internal/logging"
	"sports-data-service/internal/metrics"
	"sports-data-service/internal/providers"
	"sports-data-service/internal/store"
)

var metricsSetup = metrics.Setup

// datasetLoader is the loader behavior the server drives.
type datasetLoader interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() loader.Status
}

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	httpServer    httpServer
	metricsServer httpServer
	loader        datasetLoader
	publisher     scorePublisher
	metricsStop   func(context.Context) error
}

// New constructs a server with the default provider chain, publisher and loader.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServer(cfg, logger, nil, nil)
}

func newServer(cfg config.Config, logger *slog.Logger, provider providers.DatasetProvider, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	pub, err := buildPublisher(cfg, logger)
	if err != nil {
		return nil, err
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	snaps := buildSnapshots(cfg)
	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg, snaps, loc)
	}

	memoryStore := store.NewMemoryStore()
	loaderOpts := loader.Options{Logger: logger, Location: loc}
	if snaps.writer != nil {
		loaderOpts.Writer = snaps.writer
	}
	ldr := loader.New(provider, memoryStore, loaderOpts)

	runner := query.Runner{Latency: cfg.QueryLatency, Recorder: recorder, Logger: logger}
	services := handlers.Services{
		Games:   games.NewService(memoryStore, games.Options{Runner: runner, Location: loc, Publisher: pub}),
		Leagues: leagues.NewService(memoryStore, leagues.Options{Runner: runner}),
		Teams:   teams.NewService(memoryStore, runner),
	}
	httpSrv := buildHTTPServer(cfg, loc, services, memoryStore, snaps, logger, recorder, ldr.Status)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		loader:        ldr,
		publisher:     pub,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, ldr datasetLoader, pub scorePublisher) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		loader:     ldr,
		publisher:  pub,
	}
}

func buildHTTPServer(
	cfg config.Config,
	loc *time.Location,
	services handlers.Services,
	source handlers.DatasetSource,
	snaps snapshotComponents,
	logger *slog.Logger,
	recorder *metrics.Recorder,
	statusFn func() loader.Status,
) httpServer {
	handler := handlers.NewHandler(services, logger, statusFn)

	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" {
		var writer handlers.SnapshotWriter
		if snaps.writer != nil {
			writer = snaps.writer
		}
		admin = handlers.NewAdminHandler(writer, source, cfg.AdminToken, loc, logger)
	}

	router := httpserver.NewRouter(httpserver.RouterOptions{
		Handler:     handler,
		Admin:       admin,
		Logger:      logger,
		Recorder:    recorder,
		CORSOrigins: cfg.CORSOrigins,
	})
	return newNetHTTPServer(":"+cfg.Port, router)
}

// Run starts the metrics and HTTP servers and the dataset loader, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.loader.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if err := s.loader.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop dataset loader", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			logging.Warn(s.logger, "score publisher close failed", slog.Any("error", err))
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", slog.Any("error", err))
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", slog.Any("error", err))
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", slog.Any("error", err))
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newNetHTTPServer(":"+recCfg.Port, handler)
	}
	return rec, metricsSrv, shutdown
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Status reports the dataset loader status.
func (s *Server) Status() loader.Status {
	return s.loader.Status()
}
