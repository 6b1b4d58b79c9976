package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/league-pages/internal/http/middleware"
	"github.com/preston-bernstein/league-pages/internal/logging"
)

const contentTypeHTML = "text/html; charset=utf-8"

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeHTML runs render against the response. Renderers buffer their
// output, so a failed render has written nothing and can still turn into
// a JSON error.
func writeHTML(w http.ResponseWriter, r *http.Request, page string, logger *slog.Logger, render func(io.Writer) error) {
	w.Header().Set("Content-Type", contentTypeHTML)
	if err := render(w); err != nil {
		logging.Error(r.Context(), logger, "page render failed", err, logging.FieldPage, page)
		writeError(w, r, http.StatusInternalServerError, "render failed", logger)
	}
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method || (method == http.MethodGet && r.Method == http.MethodHead) {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}
