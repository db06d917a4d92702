package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/nba-stats-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-stats-service/internal/http/middleware"
)

// NewRouter registers HTTP routes on a chi router.
func NewRouter(handler *handlers.Handler, logger *slog.Logger) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Tracing)
	r.Use(middleware.Recovery(logger))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	r.Get("/players", handler.ListPlayers)
	r.Post("/players", handler.CreatePlayer)
	r.Get("/stadiums", handler.ListStadiums)
	r.Get("/games", handler.ListGames)
	r.Get("/nba-results", handler.ListGames)
	r.Get("/optimize", handler.Optimize)

	return r
}
