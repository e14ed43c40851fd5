package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"sports-data-service/internal/domain"
	"sports-data-service/internal/http/requestutil"
	"sports-data-service/internal/logging"
	"sports-data-service/internal/timeutil"
)

// DatasetSource exposes the dataset currently served.
type DatasetSource interface {
	Snapshot() domain.Dataset
}

// SnapshotWriter persists a dataset for a date.
type SnapshotWriter interface {
	WriteDatasetSnapshot(date string, ds domain.Dataset) error
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	writer SnapshotWriter
	source DatasetSource
	token  string
	loc    *time.Location
	logger *slog.Logger
	now    nowFunc
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(writer SnapshotWriter, source DatasetSource, token string, loc *time.Location, logger *slog.Logger) *AdminHandler {
	if loc == nil {
		loc = time.Local
	}
	return &AdminHandler{
		writer: writer,
		source: source,
		token:  token,
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}
}

// WriteSnapshot persists the served dataset under today's date. An explicit ?date= must name
// today; the dataset itself must have been generated today.
// Requires a bearer token matching ADMIN_TOKEN.
func (h *AdminHandler) WriteSnapshot(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.writer == nil || h.source == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot writer not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	now := h.now()
	date := timeutil.FormatDate(now.In(h.loc))
	if requested := strings.TrimSpace(r.URL.Query().Get("date")); requested != "" {
		if _, err := timeutil.ParseDate(requested, h.loc); err != nil {
			logging.Warn(logger, "admin snapshot invalid date", slog.String(logging.FieldDate, requested))
			writeError(w, r, http.StatusBadRequest, "invalid date format", logger)
			return
		}
		if requested != date {
			logging.Warn(logger, "admin snapshot date not today", slog.String(logging.FieldDate, requested))
			writeError(w, r, http.StatusBadRequest, "snapshots can only be written for today", logger)
			return
		}
	}

	ds := h.source.Snapshot()
	if ds.IsEmpty() {
		writeError(w, r, http.StatusServiceUnavailable, "dataset not loaded", logger)
		return
	}
	if !timeutil.SameDay(ds.GeneratedAt, now, h.loc) {
		logging.Warn(logger, "admin snapshot dataset stale",
			slog.String(logging.FieldDate, date),
			slog.Time("generated_at", ds.GeneratedAt),
		)
		writeError(w, r, http.StatusConflict, "served dataset was not generated today", logger)
		return
	}
	if err := h.writer.WriteDatasetSnapshot(date, ds); err != nil {
		logging.Error(logger, "admin snapshot write failed", err,
			slog.String(logging.FieldDate, date),
			slog.Int(logging.FieldCount, len(ds.Games)),
		)
		writeError(w, r, http.StatusInternalServerError, "failed to write snapshot", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":   date,
		"games":  len(ds.Games),
		"seed":   ds.Seed,
		"status": "ok",
	}, logger)
	logging.Info(logger, "admin snapshot written",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(ds.Games)),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got, ok := requestutil.BearerToken(r)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
