package handlers

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/stadiums"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
)

// ListStadiums serves the sanitized stadium collection. It is never cached.
func (h *Handler) ListStadiums(w nethttp.ResponseWriter, r *nethttp.Request) {
	items, err := h.svc.Stadiums.List(r.Context())
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "list stadiums failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "Failed to fetch stadium data", h.logger)
		return
	}

	noStore(w)
	writeJSON(w, nethttp.StatusOK, stadiums.NewResponse(items), h.logger)
}
