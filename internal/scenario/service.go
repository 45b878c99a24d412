package scenario

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/logger"
	"github.com/osse101/PropForecast_Go/internal/metrics"
	"github.com/osse101/PropForecast_Go/internal/prediction"
)

var validate = validator.New()

// Request is a scenario to run against a proposition
type Request struct {
	Name       string               `json:"name" validate:"max=100"`
	Preset     string               `json:"preset,omitempty" validate:"omitempty,max=64"`
	Parameters domain.ScenarioPatch `json:"parameters"`
}

// Service defines the interface for scenario simulation
type Service interface {
	// Simulate resolves the request's parameters and compares the proposition's
	// prediction with and without them
	Simulate(ctx context.Context, id string, req Request) (*domain.ScenarioResults, error)

	// Presets lists the registered presets
	Presets() []domain.ScenarioPreset
}

type service struct {
	predictions prediction.Service
	registry    *Registry
	simulator   *Simulator
}

// NewService creates a scenario service. The simulator runs on the prediction
// service's model so both agree on weights.
func NewService(predictions prediction.Service, registry *Registry) Service {
	return &service{
		predictions: predictions,
		registry:    registry,
		simulator:   NewSimulator(predictions.Model()),
	}
}

func (s *service) Simulate(ctx context.Context, id string, req Request) (*domain.ScenarioResults, error) {
	if _, _, err := domain.ParsePropositionID(id); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, RejectWithCause("parameters", "validation failed", err)
	}

	params, err := s.registry.Apply(req.Preset, req.Parameters)
	if err != nil {
		return nil, err
	}

	inputs, err := s.predictions.Inputs(ctx, id)
	if err != nil {
		return nil, err
	}

	results, err := s.simulator.Simulate(*inputs, params)
	if err != nil {
		return nil, fmt.Errorf("proposition %s: %w", id, err)
	}
	results.ScenarioID = uuid.New()
	results.Name = req.Name
	results.Preset = req.Preset

	presetLabel := req.Preset
	if presetLabel == "" {
		presetLabel = metrics.PresetNone
	}
	metrics.ScenariosSimulated.WithLabelValues(presetLabel).Inc()
	metrics.ScenarioProbabilityDelta.Observe(results.ProbabilityDelta)

	logger.FromContext(ctx).Info(LogMsgScenarioSimulated,
		logger.AttrKeyPropositionID, id,
		"scenario_id", results.ScenarioID,
		logger.AttrKeyPreset, req.Preset,
		"original", results.OriginalProbability,
		"new", results.NewProbability,
		"delta", results.ProbabilityDelta)
	return results, nil
}

func (s *service) Presets() []domain.ScenarioPreset {
	return s.registry.List()
}
