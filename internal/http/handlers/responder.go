package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-stats-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-stats-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
)

// Cache-Control values advertised per resource.
const (
	cachePlayers  = "no-store"
	cacheStadiums = "no-store, no-cache, must-revalidate, proxy-revalidate"
	cacheGames    = "public, max-age=300"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

func noStore(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Cache-Control", cacheStadiums)
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "0")
}
