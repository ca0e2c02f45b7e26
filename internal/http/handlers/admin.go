package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"gridiron-sim/internal/http/requestutil"
	"gridiron-sim/internal/logging"
	"gridiron-sim/internal/sim/season"
)

// RefreshFunc runs one simulation cycle on demand and returns its summary.
type RefreshFunc func(ctx context.Context) (*season.Summary, error)

// AdminHandler exposes admin-only endpoints (e.g., forced re-simulation).
type AdminHandler struct {
	refresh RefreshFunc
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(refresh RefreshFunc, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresh: refresh,
		token:   token,
		logger:  logger,
	}
}

// RefreshSeason triggers an immediate simulation run and snapshot write.
// Guarded by ADMIN_TOKEN env; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshSeason(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresh == nil {
		writeError(w, r, http.StatusServiceUnavailable, "simulation runner not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	summary, err := h.refresh(r.Context())
	if err != nil {
		logging.Warn(logger, "admin refresh failed", slog.Any("err", err))
		writeError(w, r, http.StatusInternalServerError, "simulation failed", logger)
		return
	}

	games := len(summary.Games) + len(summary.PlayoffGames)
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"seed":     summary.Seed,
		"games":    games,
		"champion": summary.Champion,
	}, logger)
	logging.Info(logger, "admin refresh complete",
		slog.Int64(logging.FieldSeed, summary.Seed),
		slog.Int(logging.FieldCount, games),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
