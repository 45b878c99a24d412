// Package prediction turns factor scores into a passage probability.
package prediction

import (
	"fmt"

	"github.com/osse101/PropForecast_Go/internal/clock"
	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/factor"
	"github.com/osse101/PropForecast_Go/internal/utils"
)

// Model is the pure aggregator: a fixed weight set applied to the factor model
type Model struct {
	weights Weights
	clock   clock.Clock
}

// NewModel creates a model over the given weights
func NewModel(weights Weights, clk clock.Clock) *Model {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Model{weights: weights, clock: clk}
}

// Weights returns the weight set the model applies
func (m *Model) Weights() Weights {
	return m.weights
}

// Factors computes every factor in canonical order with its weight attached
func (m *Model) Factors(in Inputs) []domain.Factor {
	cond := in.conditions()
	factors := []domain.Factor{
		factor.Finance(in.Finance),
		factor.Demographics(in.Demographics, in.Proposition.Category, cond),
		factor.Wording(in.Ballot),
		factor.Timing(in.Proposition.ElectionDate, cond),
		factor.Opposition(in.Finance, in.Endorsements),
		factor.Historical(in.Comparisons),
	}
	for i := range factors {
		factors[i].Weight = m.weights.For(factors[i].Name)
	}
	return factors
}

// Predict scores in. Only factors backed by real data take part in the
// weighted mean; when none do there is nothing to aggregate and the call fails
// with domain.ErrInvalidInput.
func (m *Model) Predict(in Inputs) (*domain.Prediction, error) {
	factors := m.Factors(in)

	probability, err := Aggregate(factors)
	if err != nil {
		return nil, fmt.Errorf("proposition %s: %w", in.Proposition.ID, err)
	}

	realCount := countReal(factors)
	return &domain.Prediction{
		PropositionID:         in.Proposition.ID,
		Probability:           probability,
		Confidence:            Confidence(realCount, len(factors), len(in.Comparisons)),
		DataQuality:           DataQualityFor(realCount),
		Factors:               factors,
		HistoricalComparisons: in.Comparisons,
		WeightsVersion:        m.weights.Version,
		GeneratedAt:           m.clock.Now(),
	}, nil
}

// Aggregate is the renormalized weighted mean of the participating factors
// (see Participating), clamped to [0,1] and rounded to metric precision
func Aggregate(factors []domain.Factor) (float64, error) {
	participating, err := Participating(factors)
	if err != nil {
		return 0, err
	}
	mean, err := weightedMean(participating)
	if err != nil {
		return 0, err
	}
	return utils.RoundMetric(utils.Clamp01(mean)), nil
}

// Participating returns the factors that take part in the weighted mean.
// Real-data factors keep their value. A hypothetical factor is re-anchored on
// the real-data mean, moving it by its distance from neutral, so a neutral
// hypothetical input leaves the probability exactly where real data put it.
func Participating(factors []domain.Factor) ([]domain.Factor, error) {
	out := make([]domain.Factor, 0, len(factors))
	for _, f := range factors {
		if f.HasRealData {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no factor has real data", domain.ErrInvalidInput)
	}

	anchor, err := weightedMean(out)
	if err != nil {
		return nil, err
	}
	for _, f := range factors {
		if f.HasRealData || !f.Hypothetical() {
			continue
		}
		f.Value = utils.Clamp01(anchor + f.Value - factor.NeutralValue)
		out = append(out, f)
	}
	return out, nil
}

func weightedMean(factors []domain.Factor) (float64, error) {
	values := make([]float64, len(factors))
	weights := make([]float64, len(factors))
	for i, f := range factors {
		values[i] = f.Value
		weights[i] = f.Weight
	}
	return utils.WeightedAverage(values, weights)
}

// Confidence grows with the share of real-data factors and the number of
// historical comparisons, capped at MaxConfidence
func Confidence(realFactors, totalFactors, comparisons int) float64 {
	if totalFactors <= 0 {
		return 0
	}
	dataShare := float64(realFactors) / float64(totalFactors)
	history := float64(min(comparisons, MaxComparisonsForConfidence)) / MaxComparisonsForConfidence
	c := BaseConfidence + RealDataConfidenceWeight*dataShare + HistoryConfidenceWeight*history
	return utils.RoundMetric(utils.Clamp(c, 0, MaxConfidence))
}

// DataQualityFor labels a prediction by how many factors had real data
func DataQualityFor(realFactors int) domain.DataQuality {
	switch {
	case realFactors >= StrongDataThreshold:
		return domain.DataQualityStrong
	case realFactors >= ModerateDataThreshold:
		return domain.DataQualityModerate
	default:
		return domain.DataQualityLimited
	}
}

func countReal(factors []domain.Factor) int {
	n := 0
	for _, f := range factors {
		if f.HasRealData {
			n++
		}
	}
	return n
}
