package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/nba-stats-service/internal/domain/games"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-service/internal/domain/stadiums"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
)

// PlayersService lists and creates players.
type PlayersService interface {
	List(ctx context.Context) ([]players.Summary, error)
	Create(ctx context.Context, input players.NewPlayer) (players.Created, error)
}

// StadiumsService lists sanitized stadiums.
type StadiumsService interface {
	List(ctx context.Context) ([]stadiums.Stadium, error)
}

// GamesService lists final scores.
type GamesService interface {
	List(ctx context.Context) ([]games.Game, error)
}

// OptimizeService runs the timed sort.
type OptimizeService interface {
	Run(ctx context.Context) float64
}

// Services groups the data services the handlers delegate to.
type Services struct {
	Players  PlayersService
	Stadiums StadiumsService
	Games    GamesService
	Optimize OptimizeService
}

// Handler wires HTTP routes to the data services.
type Handler struct {
	svc    Services
	logger *slog.Logger
	ready  func(context.Context) error
}

// NewHandler constructs a Handler. ready may be nil, in which case the service always reports ready.
func NewHandler(svc Services, logger *slog.Logger, ready func(context.Context) error) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
		ready:  ready,
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
	if h.ready == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if err := h.ready(r.Context()); err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "readiness check failed", "error", err)
		writeError(w, r, nethttp.StatusServiceUnavailable, err.Error(), h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// NotFound answers unknown routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes called with an unsupported method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}
