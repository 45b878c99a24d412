package scenario

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PropForecast_Go/internal/clock"
	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/prediction"
)

var testNow = time.Date(2024, time.September, 15, 9, 0, 0, 0, time.UTC)

func newTestModel() *prediction.Model {
	return prediction.NewModel(prediction.DefaultWeights(), clock.NewSimulatedClock(testNow))
}

// rentControl has finance, committees and demographics but no wording or history
func rentControl() prediction.Inputs {
	return prediction.Inputs{
		Proposition: domain.Proposition{
			ID:           "2024-33",
			Number:       33,
			Year:         2024,
			Title:        "Local Rent Control Expansion",
			Category:     domain.CategoryHousing,
			ElectionDate: time.Date(2024, time.November, 5, 0, 0, 0, 0, time.UTC),
		},
		Finance: &domain.Finance{
			PropositionID:   "2024-33",
			TotalSupport:    decimal.NewFromInt(20_000_000),
			TotalOpposition: decimal.NewFromInt(10_000_000),
			Committees: []domain.Committee{
				{Name: "Yes on 33", Position: domain.PositionSupport, Spent: decimal.NewFromInt(15_000_000)},
				{Name: "No on 33", Position: domain.PositionOppose, Spent: decimal.NewFromInt(8_000_000)},
			},
		},
		Demographics: &domain.Demographics{
			MedianIncome:    70_000,
			MedianAge:       37,
			AgeDistribution: domain.AgeDistribution{Age18To34: 0.33, Age35To64: 0.48, Age65Plus: 0.19},
			UrbanRural:      domain.UrbanRural{Urban: 0.6, Suburban: 0.3, Rural: 0.1},
		},
	}
}

func contribution(t *testing.T, r *domain.ScenarioResults, name string) domain.FactorContribution {
	t.Helper()
	for _, c := range r.FactorContributions {
		if c.Factor == name {
			return c
		}
	}
	t.Fatalf("no contribution for %s", name)
	return domain.FactorContribution{}
}

func TestSimulate_IdentityRoundTrip(t *testing.T) {
	sim := NewSimulator(newTestModel())
	baseline, err := newTestModel().Predict(rentControl())
	require.NoError(t, err)

	r, err := sim.Simulate(rentControl(), domain.IdentityParameters())
	require.NoError(t, err)

	assert.Equal(t, baseline.Probability, r.OriginalProbability)
	assert.Equal(t, r.OriginalProbability, r.NewProbability)
	assert.Equal(t, 0.0, r.ProbabilityDelta)
	for _, c := range r.FactorContributions {
		assert.Equal(t, 0.0, c.Difference, c.Factor)
	}
	assert.Equal(t, "2024-33", r.PropositionID)
	assert.Equal(t, testNow, r.GeneratedAt)
}

func TestSimulate_Levers(t *testing.T) {
	sim := NewSimulator(newTestModel())

	tests := []struct {
		name   string
		patch  domain.ScenarioPatch
		factor string
		up     bool
	}{
		{"support funding", domain.ScenarioPatch{SupportFundingMultiplier: ptr(2.0)}, domain.FactorFinance, true},
		{"opposition funding", domain.ScenarioPatch{OppositionFundingMultiplier: ptr(3.0)}, domain.FactorFinance, false},
		{"opposition stands down", domain.ScenarioPatch{OppositionIntensity: ptr(domain.OppositionNone)}, domain.FactorOpposition, true},
		{"higher turnout", domain.ScenarioPatch{TurnoutMultiplier: ptr(1.3)}, domain.FactorTiming, true},
		{"special election", domain.ScenarioPatch{ElectionType: ptr(domain.ElectionSpecial)}, domain.FactorTiming, false},
		{"crowded ballot", domain.ScenarioPatch{CompetingMeasures: ptr(10)}, domain.FactorTiming, false},
		{"young voters surge", domain.ScenarioPatch{DemographicTurnout: map[string]float64{domain.TurnoutGroupYoung: 2}}, domain.FactorDemographics, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := domain.IdentityParameters().Apply(tt.patch)
			r, err := sim.Simulate(rentControl(), params)
			require.NoError(t, err)

			c := contribution(t, r, tt.factor)
			if tt.up {
				assert.Greater(t, r.ProbabilityDelta, 0.0)
				assert.Greater(t, c.Difference, 0.0)
			} else {
				assert.Less(t, r.ProbabilityDelta, 0.0)
				assert.Less(t, c.Difference, 0.0)
			}
		})
	}
}

func TestSimulate_FramingWithoutBallot(t *testing.T) {
	model := newTestModel()
	sim := NewSimulator(model)
	baseline, err := model.Predict(rentControl())
	require.NoError(t, err)

	t.Run("vanishing shift leaves the baseline", func(t *testing.T) {
		r, err := sim.Simulate(rentControl(), domain.IdentityParameters().Apply(domain.ScenarioPatch{SentimentShift: ptr(0.0001)}))
		require.NoError(t, err)
		assert.InDelta(t, 0.0, r.ProbabilityDelta, 0.001)
	})

	t.Run("delta shrinks with the shift", func(t *testing.T) {
		var prev float64
		for i, shift := range []float64{-0.5, -0.25, -0.1} {
			r, err := sim.Simulate(rentControl(), domain.IdentityParameters().Apply(domain.ScenarioPatch{SentimentShift: ptr(shift)}))
			require.NoError(t, err)
			assert.Less(t, r.ProbabilityDelta, 0.0, "shift %v", shift)
			if i > 0 {
				assert.Greater(t, r.ProbabilityDelta, prev, "shift %v", shift)
			}
			prev = r.ProbabilityDelta
		}
	})

	t.Run("invented wording is not real data", func(t *testing.T) {
		params := domain.IdentityParameters().Apply(domain.ScenarioPatch{SentimentShift: ptr(-0.5)})
		adjusted, err := model.Predict(Apply(rentControl(), params))
		require.NoError(t, err)

		assert.Equal(t, baseline.DataQuality, adjusted.DataQuality)
		assert.Equal(t, baseline.Confidence, adjusted.Confidence)
		assert.Equal(t, baseline.RealFactorCount(), adjusted.RealFactorCount())

		wording, ok := adjusted.Factor(domain.FactorWording)
		require.True(t, ok)
		assert.False(t, wording.HasRealData)
		assert.Equal(t, domain.SourceScenario, wording.DataSource)

		r, err := sim.Simulate(rentControl(), params)
		require.NoError(t, err)
		c := contribution(t, r, domain.FactorWording)
		assert.Equal(t, 0.0, c.OriginalImpact)
		assert.Greater(t, c.AdjustedImpact, 0.0)
		assert.Equal(t, Interval(baseline.Probability, baseline.Confidence).Confidence, r.ConfidenceInterval.Confidence)
	})
}

func TestSimulate_ConfidenceInterval(t *testing.T) {
	r, err := NewSimulator(newTestModel()).Simulate(rentControl(), domain.IdentityParameters())
	require.NoError(t, err)

	ci := r.ConfidenceInterval
	assert.Less(t, ci.Lower, r.NewProbability)
	assert.Greater(t, ci.Upper, r.NewProbability)
	assert.Greater(t, ci.Confidence, 0.0)
}

func TestSimulate_NoRealData(t *testing.T) {
	in := prediction.Inputs{Proposition: domain.Proposition{ID: "2024-1"}}
	_, err := NewSimulator(newTestModel()).Simulate(in, domain.IdentityParameters())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInterval(t *testing.T) {
	assert.Equal(t, domain.ConfidenceInterval{Lower: 0.5, Upper: 0.7, Confidence: 0.6}, Interval(0.6, 0.6))

	clamped := Interval(0.95, 0.2)
	assert.Equal(t, 0.75, clamped.Lower)
	assert.Equal(t, 1.0, clamped.Upper)

	// lower confidence, wider interval
	narrow := Interval(0.5, 0.9)
	wide := Interval(0.5, 0.4)
	assert.Greater(t, wide.Upper-wide.Lower, narrow.Upper-narrow.Lower)
}

func TestContributions(t *testing.T) {
	original := []domain.Factor{
		{Name: "a", Weight: 0.5, Value: 0.8, HasRealData: true},
		{Name: "b", Weight: 0.5, Value: 0.4, HasRealData: true},
		{Name: "c", Weight: 1, Value: 0.5},
	}
	adjusted := []domain.Factor{
		{Name: "a", Weight: 0.5, Value: 0.6, HasRealData: true},
		{Name: "b", Weight: 0.5, Value: 0.4, HasRealData: true},
		{Name: "c", Weight: 1, Value: 0.5},
	}

	got := Contributions(original, adjusted)
	assert.Equal(t, []domain.FactorContribution{
		{Factor: "a", OriginalImpact: 0.4, AdjustedImpact: 0.3, Difference: -0.1},
		{Factor: "b", OriginalImpact: 0.2, AdjustedImpact: 0.2, Difference: 0},
		{Factor: "c", OriginalImpact: 0, AdjustedImpact: 0, Difference: 0},
	}, got)
}

func TestSensitivity(t *testing.T) {
	r, err := NewSimulator(newTestModel()).Simulate(rentControl(), domain.IdentityParameters())
	require.NoError(t, err)

	require.Len(t, r.Sensitivity, 5)
	names := make([]string, len(r.Sensitivity))
	for i, c := range r.Sensitivity {
		names[i] = c.Parameter
		if i > 0 {
			assert.GreaterOrEqual(t, r.Sensitivity[i-1].Range, c.Range)
		}
	}
	assert.ElementsMatch(t, []string{
		ParamSupportFunding, ParamOppositionFunding, ParamTurnout, ParamSentimentShift, ParamOppositionIntensity,
	}, names)

	for _, c := range r.Sensitivity {
		switch c.Parameter {
		case ParamSupportFunding, ParamOppositionFunding:
			require.Len(t, c.Points, len(FundingGrid))
			assert.Equal(t, 0.0, c.Points[2].Delta, "identity point of %s", c.Parameter)
		case ParamTurnout, ParamSentimentShift:
			require.Len(t, c.Points, 5)
			assert.Equal(t, 0.0, c.Points[2].Delta, "identity point of %s", c.Parameter)
		case ParamOppositionIntensity:
			require.Len(t, c.Points, len(domain.AllOppositionIntensities))
			assert.Equal(t, string(domain.OppositionNone), c.Points[0].Label)
			assert.Equal(t, 0.0, c.Points[0].Value)
			assert.Equal(t, 0.0, c.Points[2].Delta, "moderate intensity is the baseline")
			assert.Greater(t, c.Points[0].Probability, c.Points[4].Probability)
		}
	}
}

func TestApply_DoesNotMutateBaseline(t *testing.T) {
	baseline := rentControl()
	params := domain.IdentityParameters().Apply(domain.ScenarioPatch{
		SupportFundingMultiplier: ptr(2.0),
		OppositionIntensity:      ptr(domain.OppositionIntense),
		SentimentShift:           ptr(0.3),
		DemographicTurnout:       map[string]float64{domain.TurnoutGroupSenior: 1.2},
		EndorsementChanges:       []domain.Endorsement{{Name: "Tenants Union", Position: domain.PositionSupport}},
	})

	out := Apply(baseline, params)

	assert.True(t, baseline.Finance.TotalSupport.Equal(decimal.NewFromInt(20_000_000)))
	assert.True(t, out.Finance.TotalSupport.Equal(decimal.NewFromInt(40_000_000)))
	assert.True(t, baseline.Finance.Committees[1].Spent.Equal(decimal.NewFromInt(8_000_000)))
	assert.True(t, out.Finance.Committees[1].Spent.Equal(decimal.NewFromInt(16_000_000)))
	assert.Nil(t, baseline.Ballot)
	require.NotNil(t, out.Ballot)
	assert.Equal(t, 0.3, out.Ballot.Sentiment)
	assert.Empty(t, baseline.Endorsements)
	assert.Len(t, out.Endorsements, 1)
	assert.Nil(t, baseline.Conditions)
	assert.Equal(t, 1.2, out.Conditions.GroupTurnout[domain.TurnoutGroupSenior])
}

func TestApply_Conditions(t *testing.T) {
	params := domain.IdentityParameters().Apply(domain.ScenarioPatch{
		TurnoutMultiplier: ptr(1.2),
		RegionalTurnout:   map[string]float64{"Bay Area": 1.5, "Central Valley": 0.5},
		MonthOffset:       ptr(6),
		ElectionType:      ptr(domain.ElectionPrimary),
	})

	cond := Apply(rentControl(), params).Conditions
	require.NotNil(t, cond)
	assert.InDelta(t, 1.2, cond.Turnout, 1e-12)
	assert.Equal(t, 6, cond.MonthOffset)
	assert.Equal(t, domain.ElectionPrimary, cond.ElectionType)
}

func ptr[T any](v T) *T {
	return &v
}
