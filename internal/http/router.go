package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/league-pages/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/", handler.Index)
	mux.HandleFunc("/schedule", handler.Schedule)
	mux.HandleFunc("/schedule/fragment", handler.ScheduleFragment)
	mux.HandleFunc("/teams", handler.Teams)
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	return mux
}
