package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/preston-bernstein/nba-stats-service/internal/logging"
)

// Recovery turns a panicking handler into a 500 JSON error.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logging.FromContext(r.Context(), logger).Error("panic recovered",
					"error", rec,
					"stack", string(debug.Stack()),
					logging.FieldPath, r.URL.Path,
				)

				body := map[string]string{"error": "Internal server error"}
				if reqID := RequestIDFromContext(r.Context()); reqID != "" {
					body["requestId"] = reqID
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(body)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
