package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/tracker"
)

// Handler wires HTTP routes to the tracker.
type Handler struct {
	tracker *tracker.Tracker
	logger  *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(t *tracker.Tracker, logger *slog.Logger) *Handler {
	return &Handler{tracker: t, logger: logger}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports readiness: an initial schedule must exist, cached or
// freshly fetched.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.tracker.HasSchedule() {
		h.writeError(w, nethttp.StatusServiceUnavailable, "schedule not loaded")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

// Weeks lists the known weeks for the week selector.
func (h *Handler) Weeks(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]any{
		"weeks":       h.tracker.Weeks(),
		"currentWeek": h.tracker.CurrentWeek(),
		"displayWeek": h.tracker.DisplayWeek(),
	})
}

// CurrentWeek renders the week the upstream reports as current.
func (h *Handler) CurrentWeek(w nethttp.ResponseWriter, r *nethttp.Request) {
	number := h.tracker.CurrentWeek()
	if number == 0 {
		number = h.tracker.DisplayWeek()
	}
	if number == 0 {
		h.writeError(w, nethttp.StatusNotFound, "no current week known")
		return
	}
	h.renderWeek(w, r, number)
}

// WeekByNumber renders one cached week. The select query flag moves the
// display pointer; the refresh flag re-runs the targeted live refresh when
// the requested week is the current one.
func (h *Handler) WeekByNumber(w nethttp.ResponseWriter, r *nethttp.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number < 1 {
		h.writeError(w, nethttp.StatusBadRequest, "invalid week number")
		return
	}

	if isSet(r, "select") {
		if err := h.tracker.SelectWeek(number); err != nil {
			h.writeError(w, nethttp.StatusNotFound, "week not found")
			return
		}
	}
	if isSet(r, "refresh") && number == h.tracker.CurrentWeek() {
		h.tracker.RefreshWeek(r.Context(), number)
	}

	h.renderWeek(w, r, number)
}

type predictionRequest struct {
	Team string `json:"team"`
}

// Predict records the user's pick for a game.
func (h *Handler) Predict(w nethttp.ResponseWriter, r *nethttp.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number < 1 {
		h.writeError(w, nethttp.StatusBadRequest, "invalid week number")
		return
	}
	gameID := chi.URLParam(r, "gameID")

	var req predictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Team == "" {
		h.writeError(w, nethttp.StatusBadRequest, "body must be {\"team\": \"...\"}")
		return
	}

	err = h.tracker.Predict(r.Context(), number, gameID, req.Team)
	switch {
	case errors.Is(err, tracker.ErrWeekNotFound), errors.Is(err, tracker.ErrGameNotFound):
		h.writeError(w, nethttp.StatusNotFound, err.Error())
	case errors.Is(err, tracker.ErrGameLocked):
		h.writeError(w, nethttp.StatusConflict, err.Error())
	case errors.Is(err, tracker.ErrUnknownTeam):
		h.writeError(w, nethttp.StatusUnprocessableEntity, err.Error())
	case err != nil:
		h.writeError(w, nethttp.StatusInternalServerError, "failed to save prediction")
	default:
		h.renderWeek(w, r, number)
	}
}

// Refresh is the manual refresh trigger: it re-runs the live-discovery
// flow. Failures surface to the user; cached data keeps displaying.
func (h *Handler) Refresh(w nethttp.ResponseWriter, r *nethttp.Request) {
	start := time.Now()
	if err := h.tracker.RefreshCurrent(r.Context()); err != nil {
		h.writeJSON(w, nethttp.StatusBadGateway, map[string]any{
			"error":     "live data unavailable",
			"detail":    err.Error(),
			"hasCache":  h.tracker.HasSchedule(),
			"elapsedMs": time.Since(start).Milliseconds(),
		})
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]any{
		"currentWeek": h.tracker.CurrentWeek(),
		"elapsedMs":   time.Since(start).Milliseconds(),
	})
}

func (h *Handler) renderWeek(w nethttp.ResponseWriter, r *nethttp.Request, number int) {
	view, err := h.tracker.WeekView(number)
	if errors.Is(err, tracker.ErrWeekNotFound) {
		h.writeError(w, nethttp.StatusNotFound, "week not found")
		return
	}
	if err != nil {
		h.writeError(w, nethttp.StatusInternalServerError, "failed to build week view")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, view)
}

func isSet(r *nethttp.Request, key string) bool {
	value := r.URL.Query().Get(key)
	return value == "1" || value == "true"
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
