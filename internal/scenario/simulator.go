// Package scenario re-runs predictions under what-if parameter overrides.
package scenario

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/factor"
	"github.com/osse101/PropForecast_Go/internal/prediction"
	"github.com/osse101/PropForecast_Go/internal/utils"
)

// Simulator compares a baseline prediction with one recomputed under overrides
type Simulator struct {
	model *prediction.Model
}

// NewSimulator creates a simulator over the given model
func NewSimulator(model *prediction.Model) *Simulator {
	return &Simulator{model: model}
}

// Simulate predicts baseline as-is and with params applied, then reports the
// difference, the per-factor contributions and a one-lever sensitivity sweep
func (s *Simulator) Simulate(baseline prediction.Inputs, params domain.ScenarioParameters) (*domain.ScenarioResults, error) {
	original, err := s.model.Predict(baseline)
	if err != nil {
		return nil, fmt.Errorf("baseline prediction: %w", err)
	}

	adjusted, err := s.model.Predict(Apply(baseline, params))
	if err != nil {
		return nil, fmt.Errorf("scenario prediction: %w", err)
	}

	sensitivity, err := s.sensitivity(baseline, original.Probability)
	if err != nil {
		return nil, err
	}

	return &domain.ScenarioResults{
		PropositionID:       baseline.Proposition.ID,
		Parameters:          params,
		OriginalProbability: original.Probability,
		NewProbability:      adjusted.Probability,
		ProbabilityDelta:    utils.RoundMetric(adjusted.Probability - original.Probability),
		ConfidenceInterval:  Interval(adjusted.Probability, adjusted.Confidence),
		FactorContributions: Contributions(original.Factors, adjusted.Factors),
		Sensitivity:         sensitivity,
		GeneratedAt:         adjusted.GeneratedAt,
	}, nil
}

// Interval bounds probability by a half-width that widens as confidence falls
func Interval(probability, confidence float64) domain.ConfidenceInterval {
	half := (1 - confidence) * ConfidenceSpread
	return domain.ConfidenceInterval{
		Lower:      utils.RoundMetric(utils.Clamp01(probability - half)),
		Upper:      utils.RoundMetric(utils.Clamp01(probability + half)),
		Confidence: confidence,
	}
}

// Contributions pairs each factor's share of the probability before and after.
// Factors without real data contribute nothing unless they are hypothetical.
func Contributions(original, adjusted []domain.Factor) []domain.FactorContribution {
	before := shares(original)
	after := shares(adjusted)

	out := make([]domain.FactorContribution, 0, len(original))
	for _, f := range original {
		o, a := before[f.Name], after[f.Name]
		out = append(out, domain.FactorContribution{
			Factor:         f.Name,
			OriginalImpact: o,
			AdjustedImpact: a,
			Difference:     utils.RoundMetric(a - o),
		})
	}
	return out
}

// shares is each participating factor's renormalized weight times its
// effective value; everything else contributes nothing
func shares(factors []domain.Factor) map[string]float64 {
	out := make(map[string]float64, len(factors))
	for _, f := range factors {
		out[f.Name] = 0
	}

	participating, err := prediction.Participating(factors)
	if err != nil {
		return out
	}
	var total float64
	for _, f := range participating {
		total += f.Weight
	}
	if total == 0 {
		return out
	}
	for _, f := range participating {
		out[f.Name] = utils.RoundMetric(f.Weight / total * f.Value)
	}
	return out
}

type sweep struct {
	parameter string
	points    []sweepPoint
}

type sweepPoint struct {
	value  float64
	label  string
	params domain.ScenarioParameters
}

func numericSweep(parameter string, grid []float64, set func(*domain.ScenarioParameters, float64)) sweep {
	sw := sweep{parameter: parameter}
	for _, v := range grid {
		p := domain.IdentityParameters()
		set(&p, v)
		sw.points = append(sw.points, sweepPoint{value: v, params: p})
	}
	return sw
}

func sweeps() []sweep {
	intensity := sweep{parameter: ParamOppositionIntensity}
	for _, level := range domain.AllOppositionIntensities {
		scale, _ := factor.OppositionIntensityScale(level)
		p := domain.IdentityParameters()
		p.Opposition = &domain.OppositionParameters{Intensity: level}
		intensity.points = append(intensity.points, sweepPoint{value: scale, label: string(level), params: p})
	}

	return []sweep{
		numericSweep(ParamSupportFunding, FundingGrid, func(p *domain.ScenarioParameters, v float64) {
			p.Funding.SupportMultiplier = v
		}),
		numericSweep(ParamOppositionFunding, FundingGrid, func(p *domain.ScenarioParameters, v float64) {
			p.Funding.OppositionMultiplier = v
		}),
		numericSweep(ParamTurnout, TurnoutGrid, func(p *domain.ScenarioParameters, v float64) {
			p.Turnout.Overall = v
		}),
		numericSweep(ParamSentimentShift, SentimentGrid, func(p *domain.ScenarioParameters, v float64) {
			p.Framing.SentimentShift = v
		}),
		intensity,
	}
}

// sensitivity moves one lever at a time across its grid with every other
// lever at identity. Curves are ordered by range, widest first.
func (s *Simulator) sensitivity(baseline prediction.Inputs, originalProbability float64) ([]domain.SensitivityCurve, error) {
	sws := sweeps()
	curves := make([]domain.SensitivityCurve, 0, len(sws))

	for _, sw := range sws {
		curve := domain.SensitivityCurve{Parameter: sw.parameter}
		lo, hi := 1.0, 0.0
		for _, pt := range sw.points {
			p, err := s.model.Predict(Apply(baseline, pt.params))
			if err != nil {
				return nil, fmt.Errorf("sensitivity %s=%v: %w", sw.parameter, pt.value, err)
			}
			curve.Points = append(curve.Points, domain.SensitivityPoint{
				Value:       pt.value,
				Label:       pt.label,
				Probability: p.Probability,
				Delta:       utils.RoundMetric(p.Probability - originalProbability),
			})
			lo = min(lo, p.Probability)
			hi = max(hi, p.Probability)
		}
		curve.Range = utils.RoundMetric(hi - lo)
		curves = append(curves, curve)
	}

	slices.SortStableFunc(curves, func(a, b domain.SensitivityCurve) int {
		if c := cmp.Compare(b.Range, a.Range); c != 0 {
			return c
		}
		return cmp.Compare(a.Parameter, b.Parameter)
	})
	return curves, nil
}
