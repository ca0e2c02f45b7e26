package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"gridiron-sim/internal/app/careers"
	"gridiron-sim/internal/app/seasons"
	"gridiron-sim/internal/archive"
	"gridiron-sim/internal/config"
	httpserver "gridiron-sim/internal/http"
	"gridiron-sim/internal/http/handlers"
	"gridiron-sim/internal/http/middleware"
	"gridiron-sim/internal/logging"
	"gridiron-sim/internal/metrics"
	"gridiron-sim/internal/runner"
	"gridiron-sim/internal/sim/season"
	"gridiron-sim/internal/snapshots"
	"gridiron-sim/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	seasonService *seasons.Service
	careerService *careers.Service
	archive       *archive.Store
	httpServer    httpServer
	metricsServer httpServer
	runner        Runner
	metricsStop   func(context.Context) error
}

// Runner defines the minimal background-runner behavior needed by the server.
type Runner interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() runner.Status
}

// New constructs a server with default simulation and runner wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	memoryStore := store.NewMemoryStore()
	seasonSvc := seasons.NewService(memoryStore)
	careerSvc := careers.NewService(memoryStore)

	arch := buildArchive(cfg, logger)
	writer := buildSnapshotWriter(cfg)
	sim := newSimulator(cfg.Sim, careerSvc, writer, arch, logger, recorder)
	run := runner.New(sim.run, memoryStore, writer, logger, recorder, time.Duration(cfg.RunInterval))
	httpSrv := buildHTTPServer(cfg, seasonSvc, careerSvc, logger, recorder, run)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		seasonService: seasonSvc,
		careerService: careerSvc,
		archive:       arch,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		runner:        run,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, run Runner) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		runner:     run,
	}
}

func buildSnapshotWriter(cfg config.Config) *snapshots.Writer {
	if !cfg.Snapshots.Enabled {
		return nil
	}
	return snapshots.NewWriter(cfg.Snapshots.Dir, cfg.Snapshots.Keep)
}

func buildArchive(cfg config.Config, logger *slog.Logger) *archive.Store {
	if cfg.Archive.Path == "" {
		return nil
	}
	arch, err := archive.Open(cfg.Archive.Path)
	if err != nil {
		logging.Warn(logger, "archive unavailable, continuing without it",
			slog.String("path", cfg.Archive.Path), slog.Any("err", err))
		return nil
	}
	return arch
}

func buildHTTPServer(cfg config.Config, seasonSvc *seasons.Service, careerSvc *careers.Service, logger *slog.Logger, recorder *metrics.Recorder, run Runner) httpServer {
	var statusFn func() runner.Status
	if run != nil {
		statusFn = run.Status
	}

	handler := handlers.NewHandler(seasonSvc, careerSvc, logger, statusFn)

	var admin *handlers.AdminHandler
	if cfg.Snapshots.AdminToken != "" && run != nil {
		if onDemand, ok := run.(interface {
			RunNow(context.Context) (*season.Summary, error)
		}); ok {
			admin = handlers.NewAdminHandler(onDemand.RunNow, cfg.Snapshots.AdminToken, logger)
		}
	}
	router := httpserver.NewRouter(handler, admin)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
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

// Run starts the background runner and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.runner.Start(ctx)

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

	if s.runner != nil {
		if err := s.runner.Stop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Error("failed to stop runner", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.archive != nil {
		if err := s.archive.Close(); err != nil && s.logger != nil {
			s.logger.Warn("archive close failed", "error", err)
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
