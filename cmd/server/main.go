package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/maxviazov/courtside-stats/internal/config"
	"github.com/maxviazov/courtside-stats/internal/handler"
	"github.com/maxviazov/courtside-stats/internal/logger"
	"github.com/maxviazov/courtside-stats/internal/metrics"
	"github.com/maxviazov/courtside-stats/internal/repository"
	"github.com/maxviazov/courtside-stats/internal/repository/memory"
	"github.com/maxviazov/courtside-stats/internal/repository/postgres"
	"github.com/maxviazov/courtside-stats/internal/service"
)

const defaultConfigPath = "config.yaml"

var _ service.Metrics = (*metrics.Recorder)(nil)

func main() {
	// Load application config
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	if err := run(cfg, appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("service stopped with error")
	}
}

// configPath honours CONFIG_PATH and falls back to environment-only config when no file exists.
func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return defaultConfigPath
	}
	return ""
}

// storage is a game repository plus whatever answers readiness for it.
type storage struct {
	games  repository.GameRepository
	pinger repository.Pinger
	close  func()
}

func openStorage(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger) (storage, error) {
	if cfg.Storage.Driver != config.DriverPostgres {
		store := memory.NewStore()
		appLogger.Info().Str("driver", config.DriverMemory).Msg("using in-memory storage")
		return storage{games: store, pinger: store, close: func() {}}, nil
	}

	pg, err := repository.New(ctx, &cfg.Postgres, &appLogger)
	if err != nil {
		return storage{}, fmt.Errorf("postgres connection failed: %w", err)
	}
	if cfg.Postgres.AutoMigrate {
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return storage{}, err
		}
	}
	pool := pg.Pool()
	return storage{
		games:  postgres.NewGameRepository(pool, postgres.NewTxManager(pool)),
		pinger: postgres.NewPinger(pool),
		close:  pg.Close,
	}, nil
}

func run(cfg *config.Config, appLogger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer store.close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	var rec *metrics.Recorder
	if cfg.Metrics.Enabled {
		rec = metrics.New(reg)
	}

	opts := []service.Option{service.WithMetrics(rec)}
	svc := handler.Services{
		Games:     service.NewGameService(store.games, appLogger, opts...),
		Shots:     service.NewShotService(store.games, appLogger, opts...),
		Analytics: service.NewAnalyticsService(store.games, appLogger),
		Reports:   service.NewReportService(store.games, appLogger),
	}

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), rec.Middleware())
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler(reg)))
	}
	handler.Register(r, store.pinger, svc, appLogger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info().Int("port", cfg.App.Port).Str("storage", cfg.Storage.Driver).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	appLogger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.App.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	appLogger.Info().Msg("✅ Service stopped")
	return nil
}
