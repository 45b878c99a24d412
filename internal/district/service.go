package district

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/logger"
	"github.com/osse101/PropForecast_Go/internal/metrics"
	"github.com/osse101/PropForecast_Go/internal/repository"
)

// Service defines the interface for district impact analysis
type Service interface {
	// AnalyzePropositionImpact projects the partisan effect of passage across
	// the districts selected by filter
	AnalyzePropositionImpact(ctx context.Context, id string, filter repository.DistrictFilter) (*domain.PropositionImpact, error)
	// AnalyzeDistrictImpact projects the effect of passage on a single district
	AnalyzeDistrictImpact(ctx context.Context, id, districtID string) (*domain.DistrictImpact, error)
}

type service struct {
	props     repository.Proposition
	districts repository.District
	projector *Projector
}

// NewService creates a district impact service
func NewService(props repository.Proposition, districts repository.District, projector *Projector) Service {
	return &service{
		props:     props,
		districts: districts,
		projector: projector,
	}
}

func (s *service) AnalyzePropositionImpact(ctx context.Context, id string, filter repository.DistrictFilter) (*domain.PropositionImpact, error) {
	if _, _, err := domain.ParsePropositionID(id); err != nil {
		return nil, err
	}
	if filter.Type != nil && !filter.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown district type %q", domain.ErrInvalidInput, *filter.Type)
	}

	log := logger.FromContext(ctx)
	start := time.Now()

	prop, err := s.props.GetProposition(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load proposition %s: %w", id, err)
	}

	districts, err := s.districts.ListDistricts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list districts: %w", err)
	}
	if len(districts) == 0 {
		log.Warn(LogMsgNoDistricts, logger.AttrKeyPropositionID, id)
	}

	impact, err := s.projector.Analyze(ctx, *prop, districts)
	if err != nil {
		return nil, err
	}

	for _, d := range impact.Districts {
		metrics.DistrictsAnalyzed.WithLabelValues(string(d.DistrictType)).Inc()
		if d.Change.Significance == domain.SignificanceSignificant {
			log.Debug(LogMsgSignificantShift,
				logger.AttrKeyPropositionID, id,
				logger.AttrKeyDistrictID, d.DistrictID,
				"balance_shift", d.Change.BalanceShift)
		}
	}
	metrics.ImpactDuration.Observe(time.Since(start).Seconds())

	log.Info(LogMsgImpactAnalyzed,
		logger.AttrKeyPropositionID, id,
		"districts", impact.Statewide.TotalDistricts,
		"affected", impact.Statewide.AffectedDistricts,
		"net_direction", impact.Statewide.NetDirection,
		"regions", len(impact.Regions))
	return impact, nil
}

func (s *service) AnalyzeDistrictImpact(ctx context.Context, id, districtID string) (*domain.DistrictImpact, error) {
	if _, _, err := domain.ParsePropositionID(id); err != nil {
		return nil, err
	}
	if districtID == "" {
		return nil, fmt.Errorf("%w: district id is required", domain.ErrInvalidInput)
	}

	start := time.Now()
	prop, err := s.props.GetProposition(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load proposition %s: %w", id, err)
	}
	d, err := s.districts.GetDistrict(ctx, districtID)
	if err != nil {
		return nil, fmt.Errorf("failed to load district %s: %w", districtID, err)
	}

	impact, err := s.projector.Analyze(ctx, *prop, []domain.District{*d})
	if err != nil {
		return nil, err
	}
	result := impact.Districts[0]
	metrics.DistrictsAnalyzed.WithLabelValues(string(result.DistrictType)).Inc()
	metrics.ImpactDuration.Observe(time.Since(start).Seconds())

	logger.FromContext(ctx).Info(LogMsgDistrictImpactAnalyzed,
		logger.AttrKeyPropositionID, id,
		logger.AttrKeyDistrictID, districtID,
		"balance_shift", result.Change.BalanceShift,
		"significance", result.Change.Significance)
	return &result, nil
}
