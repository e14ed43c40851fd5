package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"sports-data-service/internal/app/games"
	"sports-data-service/internal/app/leagues"
	"sports-data-service/internal/app/teams"
	domaingames "sports-data-service/internal/domain/games"
	domainleagues "sports-data-service/internal/domain/leagues"
	"sports-data-service/internal/domain/standings"
	domainteams "sports-data-service/internal/domain/teams"
	"sports-data-service/internal/loader"
	"sports-data-service/internal/logging"
	"sports-data-service/internal/timeutil"
)

const maxScoreBody = 1 << 10

type nowFunc func() time.Time

// Services bundles the application services the handlers expose.
type Services struct {
	Games   *games.Service
	Leagues *leagues.Service
	Teams   *teams.Service
}

// Handler wires HTTP routes to the domain services.
type Handler struct {
	games    *games.Service
	leagues  *leagues.Service
	teams    *teams.Service
	logger   *slog.Logger
	now      nowFunc
	statusFn func() loader.Status
}

// NewHandler constructs a Handler with defaults. A nil statusFn reports ready.
func NewHandler(svc Services, logger *slog.Logger, statusFn func() loader.Status) *Handler {
	return &Handler{
		games:    svc.Games,
		leagues:  svc.Leagues,
		teams:    svc.Teams,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the dataset has been loaded.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":   "ready",
			"games":    status.Games,
			"seed":     status.Seed,
			"loadedAt": status.LoadedAt,
		}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// UpcomingGames returns the next scheduled games.
func (h *Handler) UpcomingGames(w http.ResponseWriter, r *http.Request) {
	list, err := h.games.UpcomingGames(r.Context())
	h.writeGames(w, r, "", list, err)
}

// LiveGames returns games in progress.
func (h *Handler) LiveGames(w http.ResponseWriter, r *http.Request) {
	list, err := h.games.LiveGames(r.Context())
	h.writeGames(w, r, "", list, err)
}

// RecentGames returns the latest completed games.
func (h *Handler) RecentGames(w http.ResponseWriter, r *http.Request) {
	list, err := h.games.RecentGames(r.Context())
	h.writeGames(w, r, "", list, err)
}

// GamesByDate returns games on the calendar day given by ?date=YYYY-MM-DD, today by default.
func (h *Handler) GamesByDate(w http.ResponseWriter, r *http.Request) {
	loc := h.games.Location()
	day := h.now().In(loc)
	if raw := strings.TrimSpace(r.URL.Query().Get("date")); raw != "" {
		parsed, err := timeutil.ParseDate(raw, loc)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
		day = parsed
	}

	list, err := h.games.GamesByDate(r.Context(), day)
	h.writeGames(w, r, timeutil.FormatDate(day), list, err)
}

// GameByID returns a specific game.
func (h *Handler) GameByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "invalid game id")
	if !ok {
		return
	}
	game, err := h.games.GameByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, game, h.logger)
}

// RefereeAssignments returns the games assigned to the referee.
func (h *Handler) RefereeAssignments(w http.ResponseWriter, r *http.Request) {
	list, err := h.games.RefereeAssignments(r.Context())
	h.writeGames(w, r, "", list, err)
}

type scoreRequest struct {
	HomeScore *int `json:"homeScore"`
	AwayScore *int `json:"awayScore"`
}

// ApplyScore accepts a referee score update for a live game and returns the updated game.
func (h *Handler) ApplyScore(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "invalid game id")
	if !ok {
		return
	}

	var req scoreRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxScoreBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil || req.HomeScore == nil || req.AwayScore == nil {
		writeError(w, r, http.StatusBadRequest, "body must be {\"homeScore\":n,\"awayScore\":n}", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	game, err := h.games.ApplyScore(r.Context(), id, domaingames.ScoreUpdate{
		HomeScore: *req.HomeScore,
		AwayScore: *req.AwayScore,
	})
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	logging.Info(logger, "score updated",
		slog.Int(logging.FieldGameID, game.ID),
		slog.Int("home_score", game.HomeScore),
		slog.Int("away_score", game.AwayScore),
	)
	writeJSON(w, http.StatusOK, game, h.logger)
}

// Leagues returns the league catalog.
func (h *Handler) Leagues(w http.ResponseWriter, r *http.Request) {
	list, err := h.leagues.Leagues(r.Context())
	h.writeLeagues(w, r, list, err)
}

// FeaturedLeagues returns a random pair of leagues.
func (h *Handler) FeaturedLeagues(w http.ResponseWriter, r *http.Request) {
	list, err := h.leagues.FeaturedLeagues(r.Context())
	h.writeLeagues(w, r, list, err)
}

// LeagueStandings returns the standings table for /leagues/{id}/standings.
func (h *Handler) LeagueStandings(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "invalid league id")
	if !ok {
		return
	}
	h.writeStandings(w, r, id)
}

// Standings returns the standings table without a league scope.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	h.writeStandings(w, r, 0)
}

// Teams returns the team catalog.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	list, err := h.teams.Teams(r.Context())
	if err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	if list == nil {
		list = []domainteams.Team{}
	}
	writeJSON(w, http.StatusOK, domainteams.ListResponse{Teams: list}, h.logger)
}

// TeamByID returns a single team.
func (h *Handler) TeamByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "invalid team id")
	if !ok {
		return
	}
	team, err := h.teams.TeamByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, team, h.logger)
}

// NotFound answers unknown routes with a JSON error.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes called with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// pathID parses the {id} URL param. Non-numeric ids are a bad request; numeric ids that match
// nothing fall through to the service and answer 404.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, msg string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, msg, h.logger)
		return 0, false
	}
	return id, true
}

func (h *Handler) writeGames(w http.ResponseWriter, r *http.Request, date string, list []domaingames.Game, err error) {
	if err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	writeJSON(w, http.StatusOK, domaingames.NewListResponse(date, list), h.logger)
}

func (h *Handler) writeLeagues(w http.ResponseWriter, r *http.Request, list []domainleagues.League, err error) {
	if err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	if list == nil {
		list = []domainleagues.League{}
	}
	writeJSON(w, http.StatusOK, domainleagues.ListResponse{Leagues: list}, h.logger)
}

func (h *Handler) writeStandings(w http.ResponseWriter, r *http.Request, leagueID int) {
	rows, err := h.leagues.Standings(r.Context(), leagueID)
	if err != nil {
		writeServiceError(w, r, err, loggerFromContext(r, h.logger))
		return
	}
	if rows == nil {
		rows = []standings.TeamStanding{}
	}
	writeJSON(w, http.StatusOK, standings.Response{LeagueID: leagueID, Standings: rows}, h.logger)
}
