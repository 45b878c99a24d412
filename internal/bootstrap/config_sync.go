package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/PropForecast_Go/internal/config"
	"github.com/osse101/PropForecast_Go/internal/prediction"
	"github.com/osse101/PropForecast_Go/internal/scenario"
	"github.com/osse101/PropForecast_Go/internal/validation"
)

// LoadWeights loads and validates the factor weights named by the config.
// An empty WeightsPath falls back to the built-in weights.
func LoadWeights(cfg *config.Config, schemas validation.SchemaValidator) (prediction.Weights, error) {
	if cfg.WeightsPath == "" {
		slog.Info(LogMsgWeightsDefault)
		return prediction.DefaultWeights(), nil
	}

	w, err := prediction.LoadWeights(cfg.WeightsPath, cfg.WeightsSchemaPath(), schemas)
	if err != nil {
		return prediction.Weights{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadWeights, err)
	}

	slog.Info(LogMsgWeightsLoaded, "path", cfg.WeightsPath, "version", w.Version)
	return w, nil
}

// LoadPresets builds the scenario preset registry from the config.
// An empty PresetsPath yields an empty registry.
func LoadPresets(cfg *config.Config, schemas validation.SchemaValidator) (*scenario.Registry, error) {
	registry := scenario.NewRegistry()
	if cfg.PresetsPath == "" {
		slog.Info(LogMsgPresetsSkipped)
		return registry, nil
	}

	n, err := registry.Load(cfg.PresetsPath, cfg.PresetsSchemaPath(), schemas)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadPresets, err)
	}

	slog.Info(LogMsgPresetsLoaded, "path", cfg.PresetsPath, "count", n)
	return registry, nil
}
