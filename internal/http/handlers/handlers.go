package handlers

import (
	"context"
	"io"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/league-pages/internal/http/requestutil"
	"github.com/preston-bernstein/league-pages/internal/logging"
	"github.com/preston-bernstein/league-pages/internal/pages"
	"github.com/preston-bernstein/league-pages/internal/providers"
)

// Page names used in logs.
const (
	pageSchedule = "schedule"
	pageFragment = "schedule_fragment"
	pageTeams    = "teams"
)

// SchedulePages renders the schedule page and its container fragment.
type SchedulePages interface {
	LoadSchedulePage(ctx context.Context, w io.Writer, f pages.Filter) error
	RenderFragment(ctx context.Context, w io.Writer, f pages.Filter) error
}

// TeamsPages renders the teams page.
type TeamsPages interface {
	LoadTeamsPage(ctx context.Context, w io.Writer) error
}

// Handler wires HTTP routes to the page controllers.
type Handler struct {
	schedule SchedulePages
	teams    TeamsPages
	logger   *slog.Logger
	statusFn func() providers.Status
}

// NewHandler constructs a Handler. A nil statusFn reports always ready.
func NewHandler(schedule SchedulePages, teams TeamsPages, logger *slog.Logger, statusFn func() providers.Status) *Handler {
	return &Handler{
		schedule: schedule,
		teams:    teams,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Index sends visitors to the schedule page.
func (h *Handler) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	nethttp.Redirect(w, r, "/schedule", nethttp.StatusFound)
}

// Schedule renders the full schedule page for the league query parameter.
func (h *Handler) Schedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	f, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	writeHTML(w, r, pageSchedule, h.logger, func(out io.Writer) error {
		return h.schedule.LoadSchedulePage(r.Context(), out, f)
	})
}

// ScheduleFragment renders only the schedule container content. The select
// control fetches it whenever the filter changes.
func (h *Handler) ScheduleFragment(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	f, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeHTML(w, r, pageFragment, h.logger, func(out io.Writer) error {
		return h.schedule.RenderFragment(r.Context(), out, f)
	})
}

// Teams renders the teams page.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeHTML(w, r, pageTeams, h.logger, func(out io.Writer) error {
		return h.teams.LoadTeamsPage(r.Context(), out)
	})
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the dataset source has been readable recently.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
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

func (h *Handler) parseFilter(w nethttp.ResponseWriter, r *nethttp.Request) (pages.Filter, bool) {
	raw := requestutil.League(r)
	f, err := pages.ParseFilter(raw)
	if err != nil {
		logging.Warn(r.Context(), h.logger, "invalid league filter",
			logging.FieldFilter, raw,
		)
		writeError(w, r, nethttp.StatusBadRequest, "invalid league filter", h.logger)
		return pages.Filter{}, false
	}
	return f, true
}
