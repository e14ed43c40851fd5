package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"sports-data-service/internal/http/handlers"
	"sports-data-service/internal/http/middleware"
	"sports-data-service/internal/metrics"
)

// RouterOptions carries the collaborators the router mounts.
type RouterOptions struct {
	Handler     *handlers.Handler
	Admin       *handlers.AdminHandler
	Logger      *slog.Logger
	Recorder    *metrics.Recorder
	CORSOrigins []string
}

// NewRouter registers the public API, and the admin API when an admin handler is provided.
func NewRouter(opts RouterOptions) nethttp.Handler {
	h := opts.Handler
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(opts.Logger, opts.Recorder))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/games", func(r chi.Router) {
		r.Get("/", h.GamesByDate)
		r.Get("/upcoming", h.UpcomingGames)
		r.Get("/live", h.LiveGames)
		r.Get("/recent", h.RecentGames)
		r.Get("/{id}", h.GameByID)
	})

	r.Route("/leagues", func(r chi.Router) {
		r.Get("/", h.Leagues)
		r.Get("/featured", h.FeaturedLeagues)
		r.Get("/{id}/standings", h.LeagueStandings)
	})
	r.Get("/standings", h.Standings)

	r.Get("/teams", h.Teams)
	r.Get("/teams/{id}", h.TeamByID)

	r.Route("/referee", func(r chi.Router) {
		r.Get("/assignments", h.RefereeAssignments)
		r.Post("/games/{id}/score", h.ApplyScore)
	})

	if opts.Admin != nil {
		r.Post("/admin/snapshots", opts.Admin.WriteSnapshot)
	}
	return r
}
