package handlers

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/games"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
)

// ListGames serves the final scores. Responses may be cached for five minutes.
func (h *Handler) ListGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	items, err := h.svc.Games.List(r.Context())
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "list games failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "Failed to load NBA data. Please try again later.", h.logger)
		return
	}

	w.Header().Set("Cache-Control", cacheGames)
	writeJSON(w, nethttp.StatusOK, games.NewScoresResponse(items), h.logger)
}

// Optimize times an in-process sort and responds with the elapsed seconds.
func (h *Handler) Optimize(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.svc.Optimize.Run(r.Context()), h.logger)
}
