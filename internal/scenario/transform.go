package scenario

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/factor"
	"github.com/osse101/PropForecast_Go/internal/prediction"
	"github.com/osse101/PropForecast_Go/internal/utils"
)

// Apply returns a copy of baseline with every lever in params applied.
// baseline is never modified and identity parameters return equal inputs.
func Apply(baseline prediction.Inputs, params domain.ScenarioParameters) prediction.Inputs {
	in := baseline.Clone()

	applyFunding(&in, params)
	applyFraming(&in, params.Framing)
	if params.Opposition != nil {
		in.Endorsements = append(in.Endorsements, params.Opposition.EndorsementChanges...)
	}
	in.Conditions = conditions(baseline.Conditions, params)

	return in
}

func applyFunding(in *prediction.Inputs, params domain.ScenarioParameters) {
	if in.Finance == nil {
		return
	}

	support := params.Funding.SupportMultiplier
	opposition := params.Funding.OppositionMultiplier
	committeeOpposition := opposition
	if params.Opposition != nil {
		if scale, ok := factor.OppositionIntensityScale(params.Opposition.Intensity); ok {
			committeeOpposition *= scale
		}
	}

	f := in.Finance
	f.TotalSupport = scale(f.TotalSupport, support)
	f.TotalOpposition = scale(f.TotalOpposition, opposition)
	for i, c := range f.Committees {
		m := support
		if c.Position == domain.PositionOppose {
			m = committeeOpposition
		}
		f.Committees[i].Raised = scale(c.Raised, m)
		f.Committees[i].Spent = scale(c.Spent, m)
	}
}

func scale(amount decimal.Decimal, multiplier float64) decimal.Decimal {
	if multiplier == 1 {
		return amount
	}
	return amount.Mul(decimal.NewFromFloat(multiplier))
}

func applyFraming(in *prediction.Inputs, framing domain.FramingParameters) {
	if !framing.Changed() {
		return
	}

	if in.Ballot == nil {
		b := neutralBallot
		b.Hypothetical = true
		in.Ballot = &b
	}
	b := in.Ballot
	b.Sentiment = utils.Clamp(b.Sentiment+framing.SentimentShift, -1, 1)
	if framing.Complexity != nil {
		b.Complexity = *framing.Complexity
	}
	if framing.Emphasis != "" {
		b.Emphasis = framing.Emphasis
	}
}

// conditions layers turnout and timing levers over the baseline conditions.
// Regional multipliers have no per-region electorate to act on at the
// statewide level, so they fold into overall turnout as their mean.
func conditions(base *factor.Conditions, params domain.ScenarioParameters) *factor.Conditions {
	cond := factor.Baseline()
	if base != nil {
		cond = *base
	}

	cond.Turnout *= params.Turnout.Overall
	if len(params.Turnout.Regional) > 0 {
		// sorted so the sum does not depend on map order
		cond.Turnout *= utils.Mean(slices.Sorted(maps.Values(params.Turnout.Regional)))
	}

	cond.GroupTurnout = maps.Clone(cond.GroupTurnout)
	for group, m := range params.Turnout.Demographic {
		if cond.GroupTurnout == nil {
			cond.GroupTurnout = make(map[string]float64, len(params.Turnout.Demographic))
		}
		if existing, ok := cond.GroupTurnout[group]; ok {
			m *= existing
		}
		cond.GroupTurnout[group] = m
	}

	if t := params.Timing; t != nil {
		if t.ElectionType != "" {
			cond.ElectionType = t.ElectionType
		}
		cond.MonthOffset += t.MonthOffset
		cond.CompetingMeasures = t.CompetingMeasures
	}

	return &cond
}
