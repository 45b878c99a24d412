package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/prediction"
	"github.com/osse101/PropForecast_Go/internal/repository"
	"github.com/osse101/PropForecast_Go/internal/scenario"
	"github.com/osse101/PropForecast_Go/internal/similarity"
)

type MockPredictionService struct {
	mock.Mock
}

func (m *MockPredictionService) GeneratePrediction(ctx context.Context, id string) (*domain.Prediction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *MockPredictionService) RefreshPrediction(ctx context.Context, id string) (*domain.Prediction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *MockPredictionService) Inputs(ctx context.Context, id string) (*prediction.Inputs, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*prediction.Inputs), args.Error(1)
}

func (m *MockPredictionService) Model() *prediction.Model {
	args := m.Called()
	return args.Get(0).(*prediction.Model)
}

type MockSimilarityService struct {
	mock.Mock
}

func (m *MockSimilarityService) FindSimilar(ctx context.Context, id string, opts similarity.Options) ([]domain.HistoricalComparison, error) {
	args := m.Called(ctx, id, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoricalComparison), args.Error(1)
}

func (m *MockSimilarityService) Compare(ctx context.Context, target domain.Proposition, opts similarity.Options) []domain.HistoricalComparison {
	args := m.Called(ctx, target, opts)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.HistoricalComparison)
}

type MockDistrictService struct {
	mock.Mock
}

func (m *MockDistrictService) AnalyzePropositionImpact(ctx context.Context, id string, filter repository.DistrictFilter) (*domain.PropositionImpact, error) {
	args := m.Called(ctx, id, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropositionImpact), args.Error(1)
}

func (m *MockDistrictService) AnalyzeDistrictImpact(ctx context.Context, id, districtID string) (*domain.DistrictImpact, error) {
	args := m.Called(ctx, id, districtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DistrictImpact), args.Error(1)
}

type MockScenarioService struct {
	mock.Mock
}

func (m *MockScenarioService) Simulate(ctx context.Context, id string, req scenario.Request) (*domain.ScenarioResults, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScenarioResults), args.Error(1)
}

func (m *MockScenarioService) Presets() []domain.ScenarioPreset {
	args := m.Called()
	return args.Get(0).([]domain.ScenarioPreset)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
