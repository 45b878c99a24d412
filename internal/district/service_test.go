package district

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/repository"
	"github.com/osse101/PropForecast_Go/internal/repository/mocks"
)

func newTestService() (Service, *mocks.PropositionRepository, *mocks.DistrictRepository) {
	props := new(mocks.PropositionRepository)
	districts := new(mocks.DistrictRepository)
	return NewService(props, districts, NewProjector(4)), props, districts
}

func TestAnalyzePropositionImpact(t *testing.T) {
	svc, props, districts := newTestService()
	prop := housingBond
	congressional := domain.DistrictCongressional
	filter := repository.DistrictFilter{Type: &congressional}

	props.On("GetProposition", mock.Anything, "2024-5").Return(&prop, nil)
	districts.On("ListDistricts", mock.Anything, filter).Return([]domain.District{urbanYoung(), balancedDistrict()}, nil)

	impact, err := svc.AnalyzePropositionImpact(context.Background(), "2024-5", filter)
	require.NoError(t, err)

	assert.Equal(t, 2, impact.Statewide.TotalDistricts)
	assert.Equal(t, 1, impact.Statewide.AffectedDistricts)
	assert.Equal(t, "CD-12", impact.Districts[0].DistrictID)
	props.AssertExpectations(t)
	districts.AssertExpectations(t)
}

func TestAnalyzePropositionImpact_Errors(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.AnalyzePropositionImpact(context.Background(), "prop-5", repository.DistrictFilter{})
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})

	t.Run("unknown district type", func(t *testing.T) {
		svc, _, _ := newTestService()
		bogus := domain.DistrictType("ward")
		_, err := svc.AnalyzePropositionImpact(context.Background(), "2024-5", repository.DistrictFilter{Type: &bogus})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("proposition not found", func(t *testing.T) {
		svc, props, _ := newTestService()
		props.On("GetProposition", mock.Anything, "2024-99").Return(nil, domain.ErrPropositionNotFound)
		_, err := svc.AnalyzePropositionImpact(context.Background(), "2024-99", repository.DistrictFilter{})
		assert.ErrorIs(t, err, domain.ErrPropositionNotFound)
	})

	t.Run("district listing fails", func(t *testing.T) {
		svc, props, districts := newTestService()
		prop := housingBond
		props.On("GetProposition", mock.Anything, "2024-5").Return(&prop, nil)
		districts.On("ListDistricts", mock.Anything, repository.DistrictFilter{}).Return(nil, assert.AnError)
		_, err := svc.AnalyzePropositionImpact(context.Background(), "2024-5", repository.DistrictFilter{})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestAnalyzeDistrictImpact(t *testing.T) {
	t.Run("matches the full analysis", func(t *testing.T) {
		svc, props, districts := newTestService()
		prop := housingBond
		cd12 := urbanYoung()
		props.On("GetProposition", mock.Anything, "2024-5").Return(&prop, nil)
		districts.On("ListDistricts", mock.Anything, repository.DistrictFilter{}).Return([]domain.District{urbanYoung(), balancedDistrict()}, nil)
		districts.On("GetDistrict", mock.Anything, "CD-12").Return(&cd12, nil)

		full, err := svc.AnalyzePropositionImpact(context.Background(), "2024-5", repository.DistrictFilter{})
		require.NoError(t, err)
		one, err := svc.AnalyzeDistrictImpact(context.Background(), "2024-5", "CD-12")
		require.NoError(t, err)

		assert.Equal(t, full.Districts[0], *one)
		districts.AssertExpectations(t)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.AnalyzeDistrictImpact(context.Background(), "2024-05", "CD-12")
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})

	t.Run("missing district id", func(t *testing.T) {
		svc, _, _ := newTestService()
		_, err := svc.AnalyzeDistrictImpact(context.Background(), "2024-5", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown district", func(t *testing.T) {
		svc, props, districts := newTestService()
		prop := housingBond
		props.On("GetProposition", mock.Anything, "2024-5").Return(&prop, nil)
		districts.On("GetDistrict", mock.Anything, "CD-99").Return(nil, domain.ErrDistrictNotFound)
		_, err := svc.AnalyzeDistrictImpact(context.Background(), "2024-5", "CD-99")
		assert.ErrorIs(t, err, domain.ErrDistrictNotFound)
	})
}
