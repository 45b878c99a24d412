package prediction

import (
	"maps"
	"slices"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/factor"
)

// Inputs bundles everything the model reads. Optional records are nil when
// unavailable; the factor model substitutes neutral defaults.
type Inputs struct {
	Proposition  domain.Proposition
	Finance      *domain.Finance
	Demographics *domain.Demographics
	Ballot       *domain.BallotAnalysis
	Endorsements []domain.Endorsement
	Comparisons  []domain.HistoricalComparison

	// Conditions carries scenario turnout and timing levers; nil is the baseline
	Conditions *factor.Conditions
}

func (in Inputs) conditions() factor.Conditions {
	if in.Conditions == nil {
		return factor.Baseline()
	}
	return *in.Conditions
}

// Clone returns a deep copy that can be modified without touching in
func (in Inputs) Clone() Inputs {
	out := in
	if in.Finance != nil {
		f := *in.Finance
		f.Committees = slices.Clone(in.Finance.Committees)
		f.TopDonors = slices.Clone(in.Finance.TopDonors)
		out.Finance = &f
	}
	if in.Demographics != nil {
		d := *in.Demographics
		out.Demographics = &d
	}
	if in.Ballot != nil {
		b := *in.Ballot
		out.Ballot = &b
	}
	out.Endorsements = slices.Clone(in.Endorsements)
	out.Comparisons = slices.Clone(in.Comparisons)
	if in.Conditions != nil {
		c := *in.Conditions
		c.GroupTurnout = maps.Clone(in.Conditions.GroupTurnout)
		out.Conditions = &c
	}
	return out
}
