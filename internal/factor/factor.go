// Package factor computes the individual prediction factors.
//
// Every function here is pure and total: given any well-formed input it returns
// a value in [0,1], falling back to the neutral default (0.5, impact neutral,
// HasRealData=false) when its source data is missing. Default substitution lives
// only here so the aggregator never has to null-check anything.
package factor

import (
	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/utils"
)

// Conditions carries the electorate-level levers a scenario can move.
// Baseline() is the identity; predictions without a scenario use it.
type Conditions struct {
	Turnout           float64
	GroupTurnout      map[string]float64
	ElectionType      domain.ElectionType // overrides the type derived from the election date
	MonthOffset       int
	CompetingMeasures int
}

// Baseline returns the identity conditions
func Baseline() Conditions {
	return Conditions{Turnout: 1}
}

// groupMultiplier returns the turnout multiplier for a demographic group, 1 when unset
func (c Conditions) groupMultiplier(group string) float64 {
	if m, ok := c.GroupTurnout[group]; ok {
		return m
	}
	return 1
}

// ImpactFor classifies a factor value into an impact direction
func ImpactFor(value float64) domain.ImpactDirection {
	switch {
	case value > PositiveThreshold:
		return domain.ImpactPositive
	case value < NegativeThreshold:
		return domain.ImpactNegative
	default:
		return domain.ImpactNeutral
	}
}

// OppositionIntensityScale returns the spend multiplier for an opposition intensity
func OppositionIntensityScale(intensity domain.OppositionIntensity) (float64, bool) {
	scale, ok := oppositionIntensityScale[intensity]
	return scale, ok
}

func neutral(name, description string) domain.Factor {
	return domain.Factor{
		Name:        name,
		Value:       NeutralValue,
		Impact:      domain.ImpactNeutral,
		Description: description,
		DataSource:  domain.SourceDefault,
		HasRealData: false,
	}
}

// hypothetical scores scenario-invented input; it stays out of real-data counts
func hypothetical(name string, value float64, description string) domain.Factor {
	f := measured(name, value, domain.SourceScenario, description)
	f.HasRealData = false
	return f
}

func measured(name string, value float64, source, description string) domain.Factor {
	value = utils.Clamp01(value)
	return domain.Factor{
		Name:        name,
		Value:       value,
		Impact:      ImpactFor(value),
		Description: description,
		DataSource:  source,
		HasRealData: true,
	}
}
