// @title PropForecast API
// @version 1.0
// @description Ballot proposition outcome predictions, district impact projections and what-if scenarios.
// @BasePath /
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/PropForecast_Go/docs"
	"github.com/osse101/PropForecast_Go/internal/bootstrap"
	"github.com/osse101/PropForecast_Go/internal/clock"
	"github.com/osse101/PropForecast_Go/internal/config"
	"github.com/osse101/PropForecast_Go/internal/database"
	"github.com/osse101/PropForecast_Go/internal/server"
	"github.com/osse101/PropForecast_Go/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	bootstrap.SetupLogger(cfg)

	if warnings, err := config.CheckEnv(os.Getenv); err != nil {
		slog.Warn(bootstrap.LogMsgEnvValidationWarning, "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn(bootstrap.LogMsgEnvValidationWarning, "warning", w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if cfg.DBAutoMigrate {
		if err := database.Migrate(ctx, dbPool); err != nil {
			slog.Error("Failed to apply migrations", "error", err)
			dbPool.Close()
			os.Exit(1)
		}
	}

	schemas := validation.NewSchemaValidator()
	weights, err := bootstrap.LoadWeights(cfg, schemas)
	if err != nil {
		slog.Error("Failed to load weights", "error", err)
		dbPool.Close()
		os.Exit(1)
	}
	presets, err := bootstrap.LoadPresets(cfg, schemas)
	if err != nil {
		slog.Error("Failed to load presets", "error", err)
		dbPool.Close()
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(cfg, repos, weights, presets, clock.NewRealClock())
	srv := server.NewServer(bootstrap.ServerOptions(cfg), dbPool, services)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
