package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"gridiron-sim/internal/app/careers"
	"gridiron-sim/internal/app/seasons"
	"gridiron-sim/internal/logging"
	"gridiron-sim/internal/runner"
)

// Handler wires HTTP routes to the simulation services.
type Handler struct {
	seasons  *seasons.Service
	careers  *careers.Service
	logger   *slog.Logger
	statusFn func() runner.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(seasonSvc *seasons.Service, careerSvc *careers.Service, logger *slog.Logger, statusFn func() runner.Status) *Handler {
	return &Handler{
		seasons:  seasonSvc,
		careers:  careerSvc,
		logger:   logger,
		statusFn: statusFn,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// LatestSeason returns the most recent season summary.
func (h *Handler) LatestSeason(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	summary, ok := h.seasons.Latest()
	if !ok {
		writeError(w, r, http.StatusNotFound, "no season simulated yet", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served season summary",
		slog.Int64(logging.FieldSeed, summary.Seed),
		slog.Int(logging.FieldCount, len(summary.Games)),
	)
	writeJSON(w, http.StatusOK, summary, h.logger)
}

// Standings returns the regular-season table of the latest simulated season.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	standings, ok := h.seasons.Standings()
	if !ok {
		writeError(w, r, http.StatusNotFound, "no season simulated yet", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"standings": standings}, h.logger)
}

// MVPs returns the award candidates of the latest simulated season.
func (h *Handler) MVPs(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	citations, ok := h.seasons.MVPs()
	if !ok {
		writeError(w, r, http.StatusNotFound, "no season simulated yet", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"mvp": citations}, h.logger)
}

// Careers returns all tracked career states.
func (h *Handler) Careers(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	states := h.careers.Careers()
	writeJSON(w, http.StatusOK, map[string]any{"careers": states, "count": len(states)}, h.logger)
}

// CareerByID returns a single tracked career by player id.
// Expects path: /careers/{id}.
func (h *Handler) CareerByID(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	idRaw := strings.TrimPrefix(r.URL.Path, "/careers/")
	id, err := url.PathUnescape(idRaw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, http.StatusBadRequest, "invalid player id", h.logger)
		return
	}

	state, ok := h.careers.CareerByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "career not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, state, h.logger)
}
