package bootstrap

import (
	"log/slog"

	"github.com/osse101/PropForecast_Go/internal/config"
	"github.com/osse101/PropForecast_Go/internal/logger"
)

// SetupLogger initializes the process-wide slog logger from the application
// config and logs the startup banner.
func SetupLogger(cfg *config.Config) {
	logger.InitLogger(logger.ForEnvironment(cfg.Environment).
		Override(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version))

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingApplication,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"cache_size", cfg.CacheSize,
		"impact_workers", cfg.ImpactWorkers)
}
