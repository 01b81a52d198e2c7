package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Pietzorm/nfl-prediction-tracker/internal/config"
	httpserver "github.com/Pietzorm/nfl-prediction-tracker/internal/http"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/logging"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/metrics"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/poller"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/providers"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/providers/espn"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/snapshots"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/store"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/store/redisstore"
	"github.com/Pietzorm/nfl-prediction-tracker/internal/tracker"
)

var metricsSetup = metrics.Setup

// Server wires the tracker, provider, stores, poller and HTTP surface.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	tracker       *tracker.Tracker
	poller        *poller.Poller
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	storeClose    func() error
}

// New constructs a server with default provider and store wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	recorder, metricsSrv, metricsStop := buildMetrics(cfg, logger)

	persist, storeClose := buildStore(cfg, logger)

	var provider providers.ScheduleProvider = espn.NewClient(espn.Config{
		BaseURL:    cfg.ESPN.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.ESPN.Timeout},
		UserAgent:  cfg.ESPN.UserAgent,
	})
	provider = providers.NewInstrumentedProvider(provider, espn.ProviderName, logger, recorder)

	trk := tracker.New(tracker.Options{
		Provider:    provider,
		Store:       persist,
		Logger:      logger,
		Metrics:     recorder,
		SeasonWeeks: cfg.SeasonWeeks,
	})

	plr := poller.New(trk, logger, cfg.PollInterval)

	handler := httpserver.NewHandler(trk, logger)
	router := httpserver.NewRouter(handler, logger, recorder, cfg.CORSOrigins)

	srv := netHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		tracker:       trk,
		poller:        plr,
		httpServer:    srv,
		metricsServer: metricsSrv,
		metricsStop:   metricsStop,
		storeClose:    storeClose,
	}
}

// Run hydrates cached state, starts the HTTP servers, kicks off the
// initial fetch flow in the background and waits for cancellation.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	// Cached data displays before any network round trip completes.
	if err := s.tracker.Hydrate(ctx); err != nil {
		logging.Warn(s.logger, "hydration failed, starting empty", "error", err)
	}

	s.startMetrics()
	s.startServer(stop)

	go s.bootstrap(ctx)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")
	s.gracefulShutdown()
}

// bootstrap mirrors the load flow: full schedule fetch, then the
// live-discovery refresh of the current week.
func (s *Server) bootstrap(ctx context.Context) {
	start := time.Now()
	if err := s.tracker.FetchFullSchedule(ctx); err != nil {
		logging.Error(s.logger, "full schedule fetch aborted", err)
	}
	if err := s.tracker.RefreshCurrent(ctx); err != nil {
		logging.Error(s.logger, "initial live refresh failed", err)
	}
	logging.Info(s.logger, "bootstrap complete",
		logging.FieldDurationMS, time.Since(start).Milliseconds())
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

	s.poller.Stop()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}
	if s.storeClose != nil {
		if err := s.storeClose(); err != nil {
			logging.Warn(s.logger, "store close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

func buildStore(cfg config.Config, logger *slog.Logger) (store.Store, func() error) {
	switch cfg.Persist.Backend {
	case config.BackendRedis:
		rs, err := redisstore.NewFromAddr(context.Background(), cfg.Persist.RedisAddr, cfg.Persist.RedisPassword, cfg.Persist.RedisDB)
		if err != nil {
			logging.Warn(logger, "redis unavailable, falling back to file snapshots", "error", err)
			return snapshots.NewFSStore(cfg.Persist.SnapshotDir), nil
		}
		return rs, rs.Close
	case config.BackendMemory:
		return store.NewMemoryStore(), nil
	default:
		return snapshots.NewFSStore(cfg.Persist.SnapshotDir), nil
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  "nfl-prediction-tracker",
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = netHTTPServer{srv: &http.Server{
			Addr:    ":" + cfg.Metrics.Port,
			Handler: mux,
		}}
	}

	return rec, metricsSrv, shutdown
}
