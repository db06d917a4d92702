package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-stats-service/internal/app/games"
	"github.com/preston-bernstein/nba-stats-service/internal/app/optimize"
	"github.com/preston-bernstein/nba-stats-service/internal/app/players"
	"github.com/preston-bernstein/nba-stats-service/internal/app/stadiums"
	"github.com/preston-bernstein/nba-stats-service/internal/config"
	"github.com/preston-bernstein/nba-stats-service/internal/dataset"
	domainstadiums "github.com/preston-bernstein/nba-stats-service/internal/domain/stadiums"
	httpserver "github.com/preston-bernstein/nba-stats-service/internal/http"
	"github.com/preston-bernstein/nba-stats-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-stats-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-stats-service/internal/store"
	"github.com/preston-bernstein/nba-stats-service/internal/tracing"
	"github.com/preston-bernstein/nba-stats-service/internal/validate"
)

var (
	metricsSetup = metrics.Setup
	tracingSetup = tracing.Setup
)

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	players       *store.PlayerStore
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	tracingStop   func(context.Context) error
}

// New constructs a server serving the bundled datasets, overlaid by cfg.DataDir when set.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithSource(cfg, logger, dataset.New(cfg.DataDir), nil)
}

func newServerWithSource(cfg config.Config, logger *slog.Logger, src dataset.Source, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	seed, err := dataset.LoadPlayers(context.Background(), src)
	if err != nil {
		return nil, fmt.Errorf("seed players: %w", err)
	}
	playerStore := store.NewPlayerStore(seed)

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	tracingShutdown := buildTracing(cfg, logger)

	svc := buildServices(cfg, src, playerStore, recorder, logger)
	httpSrv := buildHTTPServer(cfg, svc, logger, recorder, datasetsReady(src))

	logger.Info("player collection seeded", slog.Int(logging.FieldCount, playerStore.Len()))

	return &Server{
		cfg:           cfg,
		logger:        logger,
		players:       playerStore,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		tracingStop:   tracingShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildServices(cfg config.Config, src dataset.Source, playerStore *store.PlayerStore, recorder *metrics.Recorder, logger *slog.Logger) handlers.Services {
	images := validate.ImagePolicy{
		AllowedPrefix: cfg.Images.AllowedPrefix,
		Fallback:      cfg.Images.Fallback,
	}
	return handlers.Services{
		Players:  players.NewService(playerStore, recorder, logger),
		Stadiums: stadiums.NewService(src, images, recorder, logger),
		Games:    games.NewService(src, recorder),
		Optimize: optimize.NewService(cfg.Optimize.SortSize),
	}
}

func buildHTTPServer(cfg config.Config, svc handlers.Services, logger *slog.Logger, recorder *metrics.Recorder, ready func(context.Context) error) httpServer {
	handler := handlers.NewHandler(svc, logger, ready)
	router := httpserver.NewRouter(handler, logger)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// datasetsReady reports whether the served datasets can be read and have the expected shape.
func datasetsReady(src dataset.Source) func(context.Context) error {
	return func(ctx context.Context) error {
		raw, err := src.Read(ctx, dataset.Stadiums)
		if err != nil {
			return fmt.Errorf("stadiums dataset unreadable: %w", err)
		}
		if _, err := validate.CollectionShape(raw, domainstadiums.CollectionField); err != nil {
			return fmt.Errorf("stadiums dataset: %w", err)
		}
		raw, err = src.Read(ctx, dataset.Games)
		if err != nil {
			return fmt.Errorf("games dataset unreadable: %w", err)
		}
		if _, err := validate.Sequence(raw); err != nil {
			return fmt.Errorf("games dataset: %w", err)
		}
		return nil
	}
}

// Run starts the HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if s.tracingStop != nil {
		if err := s.tracingStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("tracing shutdown failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func buildTracing(cfg config.Config, logger *slog.Logger) func(context.Context) error {
	shutdown, err := tracingSetup(context.Background(), tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Metrics.ServiceName,
	})
	if err != nil {
		if logger != nil {
			logger.Warn("tracing setup failed, continuing without traces", "err", err)
		}
		return nil
	}
	return shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
