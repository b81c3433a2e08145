// Package server wires configuration, storage, the roster refresher, and the
// HTTP surface into a runnable service.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	appplayers "football-player-service/internal/app/players"
	"football-player-service/internal/config"
	httpserver "football-player-service/internal/http"
	"football-player-service/internal/http/handlers"
	"football-player-service/internal/http/middleware"
	"football-player-service/internal/logging"
	"football-player-service/internal/match"
	"football-player-service/internal/metrics"
	"football-player-service/internal/roster"
	"football-player-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.MemoryStore
	pg             *store.PostgresStore
	playersService *appplayers.Service
	httpServer     httpServer
	metricsServer  httpServer
	refresher      Refresher
	metricsStop    func(context.Context) error
}

// New constructs a server with the roster source selected by configuration.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	var (
		source roster.Source
		pg     *store.PostgresStore
	)
	switch cfg.Roster.Source {
	case "postgres":
		db, err := store.OpenPostgres(cfg.Database.URL, cfg.Database.MaxConns)
		if err != nil {
			return nil, fmt.Errorf("open postgres roster source: %w", err)
		}
		pg = db
		source = roster.NewRetryingSource(roster.NewStoreSource("postgres", db.FetchAll), logger, 0, 0)
	default:
		source = roster.NewFileSource(cfg.Roster.File)
	}
	return newServerWithSource(cfg, logger, source, pg), nil
}

func newServerWithSource(cfg config.Config, logger *slog.Logger, source roster.Source, pg *store.PostgresStore) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	memoryStore := store.NewMemoryStore()
	matcher := match.New(memoryStore, logger)
	playerSvc := appplayers.NewService(memoryStore, matcher, recorder, logger)
	refresher := roster.New(source, memoryStore, logger, recorder, cfg.Roster.RefreshInterval)
	httpSrv := buildHTTPServer(cfg, playerSvc, logger, recorder, refresher)

	return &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          memoryStore,
		pg:             pg,
		playersService: playerSvc,
		httpServer:     httpSrv,
		metricsServer:  metricsSrv,
		refresher:      refresher,
		metricsStop:    metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, playerSvc *appplayers.Service, httpSrv httpServer, refresher Refresher) *Server {
	return &Server{
		cfg:            cfg,
		logger:         logger,
		playersService: playerSvc,
		httpServer:     httpSrv,
		refresher:      refresher,
	}
}

func buildHTTPServer(cfg config.Config, playerSvc *appplayers.Service, logger *slog.Logger, recorder *metrics.Recorder, refresher Refresher) httpServer {
	var statusFn func() roster.Status
	if refresher != nil {
		statusFn = refresher.Status
	}

	handler := handlers.NewHandler(playerSvc, logger, statusFn)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.Logging(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the refresher and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.refresher.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
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
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

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

	if err := s.refresher.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop refresher", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.pg != nil {
		if err := s.pg.Close(); err != nil && s.logger != nil {
			s.logger.Warn("postgres close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
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
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
