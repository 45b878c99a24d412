package domain

import (
	"time"

	"github.com/google/uuid"
)

// Demographic turnout adjustment keys
const (
	TurnoutGroupYoung      = "young"
	TurnoutGroupSenior     = "senior"
	TurnoutGroupUrban      = "urban"
	TurnoutGroupRural      = "rural"
	TurnoutGroupLowIncome  = "low_income"
	TurnoutGroupHighIncome = "high_income"
)

// ScenarioParameters is a fully resolved override bundle.
// Identity() is the bundle that changes nothing.
type ScenarioParameters struct {
	Funding    FundingParameters     `json:"funding"`
	Turnout    TurnoutParameters     `json:"turnout"`
	Framing    FramingParameters     `json:"framing"`
	Timing     *TimingParameters     `json:"timing,omitempty"`
	Opposition *OppositionParameters `json:"opposition,omitempty"`
}

// FundingParameters scales campaign money on each side
type FundingParameters struct {
	SupportMultiplier    float64 `json:"support_multiplier"`
	OppositionMultiplier float64 `json:"opposition_multiplier"`
}

// TurnoutParameters scales expected turnout overall and by group or region
type TurnoutParameters struct {
	Overall     float64            `json:"overall"`
	Demographic map[string]float64 `json:"demographic,omitempty"`
	Regional    map[string]float64 `json:"regional,omitempty"`
}

// FramingParameters replaces or shifts the ballot wording inputs
type FramingParameters struct {
	SentimentShift float64         `json:"sentiment_shift"`
	Complexity     *float64        `json:"complexity,omitempty"`
	Emphasis       FramingEmphasis `json:"emphasis,omitempty"`
}

// Changed reports whether any framing override is set
func (f FramingParameters) Changed() bool {
	return f.SentimentShift != 0 || f.Complexity != nil || f.Emphasis != ""
}

// TimingParameters moves the proposition to a different election
type TimingParameters struct {
	ElectionType      ElectionType `json:"election_type,omitempty"`
	MonthOffset       int          `json:"month_offset"`
	CompetingMeasures int          `json:"competing_measures"`
}

// OppositionParameters changes the strength of the organized opposition
type OppositionParameters struct {
	Intensity          OppositionIntensity `json:"intensity,omitempty"`
	EndorsementChanges []Endorsement       `json:"endorsement_changes,omitempty"`
}

// IdentityParameters returns the no-op parameter bundle
func IdentityParameters() ScenarioParameters {
	return ScenarioParameters{
		Funding: FundingParameters{SupportMultiplier: 1, OppositionMultiplier: 1},
		Turnout: TurnoutParameters{Overall: 1},
	}
}

// ScenarioPatch is a partial parameter bundle. Presets and user edits are
// both patches; nil fields leave the underlying value untouched.
type ScenarioPatch struct {
	SupportFundingMultiplier    *float64             `json:"support_funding_multiplier,omitempty" validate:"omitempty,gte=0,lte=5"`
	OppositionFundingMultiplier *float64             `json:"opposition_funding_multiplier,omitempty" validate:"omitempty,gte=0,lte=5"`
	TurnoutMultiplier           *float64             `json:"turnout_multiplier,omitempty" validate:"omitempty,gte=0.1,lte=3"`
	DemographicTurnout          map[string]float64   `json:"demographic_turnout,omitempty" validate:"omitempty,dive,keys,oneof=young senior urban rural low_income high_income,endkeys,gte=0,lte=3"`
	RegionalTurnout             map[string]float64   `json:"regional_turnout,omitempty" validate:"omitempty,dive,keys,required,endkeys,gte=0,lte=3"`
	SentimentShift              *float64             `json:"sentiment_shift,omitempty" validate:"omitempty,gte=-1,lte=1"`
	Complexity                  *float64             `json:"complexity,omitempty" validate:"omitempty,gte=0,lte=1"`
	Emphasis                    *FramingEmphasis     `json:"emphasis,omitempty" validate:"omitempty,oneof=benefits costs neutral"`
	ElectionType                *ElectionType        `json:"election_type,omitempty" validate:"omitempty,oneof=presidential_general midterm_general primary special"`
	MonthOffset                 *int                 `json:"month_offset,omitempty" validate:"omitempty,gte=-48,lte=48"`
	CompetingMeasures           *int                 `json:"competing_measures,omitempty" validate:"omitempty,gte=0,lte=30"`
	OppositionIntensity         *OppositionIntensity `json:"opposition_intensity,omitempty" validate:"omitempty,oneof=none weak moderate strong intense"`
	EndorsementChanges          []Endorsement        `json:"endorsement_changes,omitempty" validate:"omitempty,dive"`
}

// Apply layers the non-nil fields of patch over p and returns the result.
// Maps and slices are copied, never shared with the patch.
func (p ScenarioParameters) Apply(patch ScenarioPatch) ScenarioParameters {
	out := p
	out.Turnout.Demographic = copyMultipliers(p.Turnout.Demographic)
	out.Turnout.Regional = copyMultipliers(p.Turnout.Regional)

	if patch.SupportFundingMultiplier != nil {
		out.Funding.SupportMultiplier = *patch.SupportFundingMultiplier
	}
	if patch.OppositionFundingMultiplier != nil {
		out.Funding.OppositionMultiplier = *patch.OppositionFundingMultiplier
	}
	if patch.TurnoutMultiplier != nil {
		out.Turnout.Overall = *patch.TurnoutMultiplier
	}
	for k, v := range patch.DemographicTurnout {
		if out.Turnout.Demographic == nil {
			out.Turnout.Demographic = make(map[string]float64)
		}
		out.Turnout.Demographic[k] = v
	}
	for k, v := range patch.RegionalTurnout {
		if out.Turnout.Regional == nil {
			out.Turnout.Regional = make(map[string]float64)
		}
		out.Turnout.Regional[k] = v
	}
	if patch.SentimentShift != nil {
		out.Framing.SentimentShift = *patch.SentimentShift
	}
	if patch.Complexity != nil {
		c := *patch.Complexity
		out.Framing.Complexity = &c
	}
	if patch.Emphasis != nil {
		out.Framing.Emphasis = *patch.Emphasis
	}

	if patch.ElectionType != nil || patch.MonthOffset != nil || patch.CompetingMeasures != nil {
		timing := TimingParameters{}
		if p.Timing != nil {
			timing = *p.Timing
		}
		if patch.ElectionType != nil {
			timing.ElectionType = *patch.ElectionType
		}
		if patch.MonthOffset != nil {
			timing.MonthOffset = *patch.MonthOffset
		}
		if patch.CompetingMeasures != nil {
			timing.CompetingMeasures = *patch.CompetingMeasures
		}
		out.Timing = &timing
	}

	if patch.OppositionIntensity != nil || len(patch.EndorsementChanges) > 0 {
		opp := OppositionParameters{}
		if p.Opposition != nil {
			opp.Intensity = p.Opposition.Intensity
			opp.EndorsementChanges = append(opp.EndorsementChanges, p.Opposition.EndorsementChanges...)
		}
		if patch.OppositionIntensity != nil {
			opp.Intensity = *patch.OppositionIntensity
		}
		opp.EndorsementChanges = append(opp.EndorsementChanges, patch.EndorsementChanges...)
		out.Opposition = &opp
	}

	return out
}

func copyMultipliers(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ScenarioPreset is a named, reusable partial parameter bundle
type ScenarioPreset struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Patch       ScenarioPatch `json:"parameters"`
}

// ConfidenceInterval bounds the scenario probability
type ConfidenceInterval struct {
	Lower      float64 `json:"lower"`
	Upper      float64 `json:"upper"`
	Confidence float64 `json:"confidence"`
}

// FactorContribution compares a factor's weighted impact before and after a scenario
type FactorContribution struct {
	Factor         string  `json:"factor"`
	OriginalImpact float64 `json:"original_impact"`
	AdjustedImpact float64 `json:"adjusted_impact"`
	Difference     float64 `json:"difference"`
}

// SensitivityPoint is one sample on a one-parameter sweep
type SensitivityPoint struct {
	Value       float64 `json:"value"`
	Label       string  `json:"label,omitempty"`
	Probability float64 `json:"probability"`
	Delta       float64 `json:"delta"`
}

// SensitivityCurve is a one-parameter sweep holding every other lever at baseline
type SensitivityCurve struct {
	Parameter string             `json:"parameter"`
	Points    []SensitivityPoint `json:"points"`
	Range     float64            `json:"range"`
}

// ScenarioResults is the outcome of re-running a prediction under overrides
type ScenarioResults struct {
	ScenarioID          uuid.UUID            `json:"scenario_id"`
	Name                string               `json:"name,omitempty"`
	PropositionID       string               `json:"proposition_id"`
	Preset              string               `json:"preset,omitempty"`
	Parameters          ScenarioParameters   `json:"parameters"`
	OriginalProbability float64              `json:"original_probability"`
	NewProbability      float64              `json:"new_probability"`
	ProbabilityDelta    float64              `json:"probability_delta"`
	ConfidenceInterval  ConfidenceInterval   `json:"confidence_interval"`
	FactorContributions []FactorContribution `json:"factor_contributions"`
	Sensitivity         []SensitivityCurve   `json:"sensitivity"`
	GeneratedAt         time.Time            `json:"generated_at"`
}
