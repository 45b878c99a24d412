package factor

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/osse101/PropForecast_Go/internal/domain"
)

// Opposition scores the organized campaign against a measure from committee
// spending and public endorsements.
func Opposition(f *domain.Finance, endorsements []domain.Endorsement) domain.Factor {
	supportCommittees := f.CommitteesByPosition(domain.PositionSupport)
	opposeCommittees := f.CommitteesByPosition(domain.PositionOppose)

	if len(supportCommittees)+len(opposeCommittees) == 0 && len(endorsements) == 0 {
		return neutral(domain.FactorOpposition, "No committee or endorsement data available")
	}

	share := oppositionSpendShare(supportCommittees, opposeCommittees)
	penalized := math.Min(float64(len(opposeCommittees)), MaxPenalizedCommittees)
	value := (1 - share) - OppositionCommitteePenalty*penalized + EndorsementAdjustment*endorsementBalance(endorsements)

	return measured(domain.FactorOpposition, value, domain.SourceCommittees,
		fmt.Sprintf("%d opposition committees hold %.0f%% of committee spending; %d endorsements",
			len(opposeCommittees), share*100, len(endorsements)))
}

// oppositionSpendShare is the opposition's share of all committee spending,
// 0.5 when nothing has been spent or raised
func oppositionSpendShare(support, oppose []domain.Committee) float64 {
	supportSpend := committeeSpend(support)
	opposeSpend := committeeSpend(oppose)
	total := supportSpend.Add(opposeSpend)
	if !total.IsPositive() {
		return NeutralValue
	}
	return opposeSpend.Div(total).InexactFloat64()
}

func committeeSpend(committees []domain.Committee) decimal.Decimal {
	total := decimal.Zero
	for _, c := range committees {
		if c.Spent.IsPositive() {
			total = total.Add(c.Spent)
			continue
		}
		if c.Raised.IsPositive() {
			total = total.Add(c.Raised)
		}
	}
	return total
}

// endorsementBalance sums endorsement weights, positive for support.
// An unweighted endorsement counts once.
func endorsementBalance(endorsements []domain.Endorsement) float64 {
	var balance float64
	for _, e := range endorsements {
		w := e.Weight
		if w == 0 {
			w = 1
		}
		switch e.Position {
		case domain.PositionSupport:
			balance += w
		case domain.PositionOppose:
			balance -= w
		}
	}
	return balance
}
