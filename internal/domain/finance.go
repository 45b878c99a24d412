package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Finance aggregates campaign money raised for and against a proposition
type Finance struct {
	PropositionID   string          `json:"proposition_id"`
	TotalSupport    decimal.Decimal `json:"total_support"`
	TotalOpposition decimal.Decimal `json:"total_opposition"`
	Committees      []Committee     `json:"committees"`
	TopDonors       []Donor         `json:"top_donors"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Committee is a registered campaign committee
type Committee struct {
	Name     string          `json:"name"`
	Position Position        `json:"position"`
	Raised   decimal.Decimal `json:"raised"`
	Spent    decimal.Decimal `json:"spent"`
}

// Donor is one of the largest contributors to a committee
type Donor struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Position Position        `json:"position"`
	Type     string          `json:"type"` // individual, business, union, party, other
}

// CommitteesByPosition returns the committees taking the given position
func (f *Finance) CommitteesByPosition(pos Position) []Committee {
	if f == nil {
		return nil
	}
	var out []Committee
	for _, c := range f.Committees {
		if c.Position == pos {
			out = append(out, c)
		}
	}
	return out
}
