package district

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/testing/leaktest"
)

var housingBond = domain.Proposition{ID: "2024-5", Number: 5, Year: 2024, Category: domain.CategoryHousing}

func manyDistricts(n int) []domain.District {
	districts := make([]domain.District, n)
	for i := range districts {
		d := urbanYoung()
		if i%3 == 0 {
			d = ruralOld()
		}
		d.ID = fmt.Sprintf("AD-%02d", i+1)
		districts[i] = d
	}
	return districts
}

func TestProjectorAnalyze(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	districts := manyDistricts(40)

	impact, err := NewProjector(3).Analyze(context.Background(), housingBond, districts)
	require.NoError(t, err)

	require.Len(t, impact.Districts, len(districts))
	for i, d := range districts {
		assert.Equal(t, ProjectDistrict(d), impact.Districts[i])
	}

	assert.Equal(t, "2024-5", impact.PropositionID)
	assert.Equal(t, 40, impact.Statewide.TotalDistricts)
	// 26 young urban districts shift by exactly one point
	assert.Equal(t, 26, impact.Statewide.AffectedDistricts)
	assert.Equal(t, domain.DirectionDemocratic, impact.Statewide.NetDirection)
	assert.Contains(t, impact.Summary.RepresentationImpact, "Proposition 5")

	require.Len(t, impact.Regions, 2)
	assert.Equal(t, RegionBayArea, impact.Regions[0].Region)
	assert.Equal(t, 26, impact.Regions[0].DistrictCount)
	assert.Equal(t, RegionNorthernSierra, impact.Regions[1].Region)
	assert.Equal(t, 14, impact.Regions[1].DistrictCount)

	checker.Check(2)
}

func TestProjectorAnalyze_Deterministic(t *testing.T) {
	districts := manyDistricts(25)
	first, err := NewProjector(1).Analyze(context.Background(), housingBond, districts)
	require.NoError(t, err)
	second, err := NewProjector(8).Analyze(context.Background(), housingBond, districts)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProjectorAnalyze_Empty(t *testing.T) {
	impact, err := NewProjector(0).Analyze(context.Background(), housingBond, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, impact.Statewide.TotalDistricts)
	assert.Equal(t, domain.DirectionNeutral, impact.Statewide.NetDirection)
	assert.Empty(t, impact.Regions)
}

func TestProjectorAnalyze_Cancelled(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProjector(2).Analyze(ctx, housingBond, manyDistricts(10))
	assert.ErrorIs(t, err, context.Canceled)
	checker.Check(2)
}
