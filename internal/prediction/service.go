package prediction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/logger"
	"github.com/osse101/PropForecast_Go/internal/metrics"
	"github.com/osse101/PropForecast_Go/internal/repository"
	"github.com/osse101/PropForecast_Go/internal/similarity"
)

// Service defines the interface for prediction operations
type Service interface {
	// GeneratePrediction scores the proposition with the given ID
	GeneratePrediction(ctx context.Context, id string) (*domain.Prediction, error)

	// RefreshPrediction drops any cached prediction for the proposition and
	// scores it again from current records
	RefreshPrediction(ctx context.Context, id string) (*domain.Prediction, error)

	// Inputs assembles the model inputs for a proposition without scoring them
	Inputs(ctx context.Context, id string) (*Inputs, error)

	// Model returns the aggregator the service scores with
	Model() *Model
}

type service struct {
	props     repository.Proposition
	districts repository.District
	similar   similarity.Service
	model     *Model
	cache     *predictionCache
}

// NewService creates a new prediction service
func NewService(
	props repository.Proposition,
	districts repository.District,
	similar similarity.Service,
	model *Model,
	cacheSize int,
	cacheTTL time.Duration,
) Service {
	return &service{
		props:     props,
		districts: districts,
		similar:   similar,
		model:     model,
		cache:     newPredictionCache(cacheSize, cacheTTL),
	}
}

func (s *service) Model() *Model {
	return s.model
}

func (s *service) GeneratePrediction(ctx context.Context, id string) (*domain.Prediction, error) {
	log := logger.FromContext(ctx)

	if _, _, err := domain.ParsePropositionID(id); err != nil {
		return nil, err
	}

	version := s.model.Weights().Version
	if cached, ok := s.cache.Get(id, version); ok {
		metrics.PredictionCacheRequests.WithLabelValues(metrics.CacheHit).Inc()
		log.Debug(LogMsgPredictionCacheHit, logger.AttrKeyPropositionID, id, logger.AttrKeyWeightsVersion, version)
		return cached, nil
	}
	metrics.PredictionCacheRequests.WithLabelValues(metrics.CacheMiss).Inc()

	in, err := s.Inputs(ctx, id)
	if err != nil {
		return nil, err
	}

	prediction, err := s.model.Predict(*in)
	if err != nil {
		return nil, err
	}

	s.cache.Set(prediction)
	metrics.PredictionsGenerated.WithLabelValues(string(prediction.DataQuality)).Inc()
	metrics.PredictionProbability.Observe(prediction.Probability)

	log.Info(LogMsgPredictionGenerated,
		logger.AttrKeyPropositionID, id,
		"probability", prediction.Probability,
		"confidence", prediction.Confidence,
		"data_quality", prediction.DataQuality,
		"comparisons", len(prediction.HistoricalComparisons),
		"cache_entries", s.cache.Len())
	return prediction, nil
}

func (s *service) RefreshPrediction(ctx context.Context, id string) (*domain.Prediction, error) {
	if _, _, err := domain.ParsePropositionID(id); err != nil {
		return nil, err
	}
	s.cache.Invalidate(id, s.model.Weights().Version)
	logger.FromContext(ctx).Debug(LogMsgPredictionInvalidated, logger.AttrKeyPropositionID, id)
	return s.GeneratePrediction(ctx, id)
}

func (s *service) Inputs(ctx context.Context, id string) (*Inputs, error) {
	if _, _, err := domain.ParsePropositionID(id); err != nil {
		return nil, err
	}

	prop, err := s.props.GetProposition(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load proposition %s: %w", id, err)
	}

	in := &Inputs{Proposition: *prop}
	in.Finance = optional(ctx, "finance", id, func() (*domain.Finance, error) {
		return s.props.GetFinance(ctx, id)
	})
	in.Ballot = optional(ctx, "ballot_analysis", id, func() (*domain.BallotAnalysis, error) {
		return s.props.GetBallotAnalysis(ctx, id)
	})
	in.Demographics = optional(ctx, "demographics", id, func() (*domain.Demographics, error) {
		return s.districts.GetElectorateProfile(ctx, prop.Year)
	})
	in.Endorsements = optional(ctx, "endorsements", id, func() ([]domain.Endorsement, error) {
		return s.props.GetEndorsements(ctx, id)
	})
	in.Comparisons = s.similar.Compare(ctx, *prop, similarity.DefaultOptions())

	return in, nil
}

// optional loads a record that may legitimately be absent. Missing data and
// load failures both degrade to the zero value so the factor model can default.
func optional[T any](ctx context.Context, what, id string, load func() (T, error)) T {
	v, err := load()
	if err == nil {
		return v
	}

	var zero T
	log := logger.FromContext(ctx)
	if errors.Is(err, domain.ErrNoData) {
		log.Debug(LogMsgOptionalDataMissing, "input", what, logger.AttrKeyPropositionID, id)
		return zero
	}
	log.Warn(LogMsgOptionalDataFailed, "input", what, logger.AttrKeyPropositionID, id, "error", err)
	return zero
}
