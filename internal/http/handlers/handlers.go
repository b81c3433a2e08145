// Package handlers wires HTTP routes to the player lookup service.
package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strconv"

	"github.com/gorilla/mux"

	appplayers "football-player-service/internal/app/players"
	"football-player-service/internal/match"
	"football-player-service/internal/roster"
)

// Handler wires HTTP routes to the application service.
type Handler struct {
	svc      *appplayers.Service
	logger   *slog.Logger
	statusFn func() roster.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *appplayers.Service, logger *slog.Logger, statusFn func() roster.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Lookup resolves a player name query, optionally narrowed by nationality
// and position hints. The match outcome is carried in the response body;
// the HTTP status stays 200 for every resolved query.
func (h *Handler) Lookup(w nethttp.ResponseWriter, r *nethttp.Request) {
	query := r.URL.Query()
	name := query.Get("name")
	nationality := query.Get("nationality")
	position := query.Get("position")

	var result match.Result
	if nationality != "" || position != "" {
		result = h.svc.LookupWithHints(r.Context(), name, nationality, position)
	} else {
		result = h.svc.Lookup(r.Context(), name)
	}

	logger := loggerFromContext(r, h.logger)
	if logger != nil {
		logger.Info("lookup resolved", "status", string(result.Status))
	}
	writeJSON(w, nethttp.StatusOK, result, h.logger)
}

// PlayerByID returns a specific player if present.
func (h *Handler) PlayerByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}

	player, ok := h.svc.PlayerByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, player, h.logger)
}

// Players returns the full roster snapshot.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.svc.Players(), h.logger)
}

// RosterStats summarises the loaded roster.
type RosterStats struct {
	TotalPlayers  int            `json:"total_players"`
	Nationalities map[string]int `json:"nationalities"`
	Positions     map[string]int `json:"positions"`
}

// Stats reports roster size and per-nationality/position counts.
func (h *Handler) Stats(w nethttp.ResponseWriter, r *nethttp.Request) {
	stats := RosterStats{
		Nationalities: map[string]int{},
		Positions:     map[string]int{},
	}
	for _, p := range h.svc.Players() {
		stats.TotalPlayers++
		if p.Nationality != "" {
			stats.Nationalities[p.Nationality]++
		}
		if p.Position != "" {
			stats.Positions[p.Position]++
		}
	}
	writeJSON(w, nethttp.StatusOK, stats, h.logger)
}
