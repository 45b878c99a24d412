package bootstrap

import (
	"github.com/osse101/PropForecast_Go/internal/clock"
	"github.com/osse101/PropForecast_Go/internal/config"
	"github.com/osse101/PropForecast_Go/internal/district"
	"github.com/osse101/PropForecast_Go/internal/prediction"
	"github.com/osse101/PropForecast_Go/internal/scenario"
	"github.com/osse101/PropForecast_Go/internal/server"
	"github.com/osse101/PropForecast_Go/internal/similarity"
)

// InitializeServices wires the domain services on top of the repositories
func InitializeServices(
	cfg *config.Config,
	repos *Repositories,
	weights prediction.Weights,
	presets *scenario.Registry,
	clk clock.Clock,
) server.Services {
	similar := similarity.NewService(repos.Propositions, cfg.HistoryFetchConcurrency, cfg.HistoryLookbackYears)
	model := prediction.NewModel(weights, clk)
	predictions := prediction.NewService(
		repos.Propositions,
		repos.Districts,
		similar,
		model,
		cfg.CacheSize,
		cfg.CacheTTL,
	)

	return server.Services{
		Predictions: predictions,
		Similarity:  similar,
		Impact:      district.NewService(repos.Propositions, repos.Districts, district.NewProjector(cfg.ImpactWorkers)),
		Scenarios:   scenario.NewService(predictions, presets),
	}
}

// ServerOptions maps the config onto the HTTP server options
func ServerOptions(cfg *config.Config) server.Options {
	return server.Options{
		Port:           cfg.Port,
		Version:        cfg.Version,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateWindow,
		TrustedProxies: cfg.TrustedProxies,
	}
}
