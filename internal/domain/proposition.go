package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// canonical form only: no leading zeros, so every proposition has exactly one ID
var propositionIDPattern = regexp.MustCompile(`^([1-9]\d{3})-([1-9]\d{0,2})$`)

// Proposition is a statewide ballot measure
type Proposition struct {
	ID           string             `json:"id"`
	Number       int                `json:"number"`
	Year         int                `json:"year"`
	ElectionDate time.Time          `json:"election_date"`
	Title        string             `json:"title"`
	Summary      string             `json:"summary"`
	Status       PropositionStatus  `json:"status"`
	Category     Category           `json:"category"`
	Result       *PropositionResult `json:"result,omitempty"`
}

// PropositionResult is the certified outcome of a proposition.
// Once recorded the proposition is treated as immutable.
type PropositionResult struct {
	YesVotes int64   `json:"yes_votes"`
	NoVotes  int64   `json:"no_votes"`
	Turnout  float64 `json:"turnout"`
	Passed   bool    `json:"passed"`
}

// YesPercentage returns the share of yes votes as a percentage
func (r PropositionResult) YesPercentage() float64 {
	total := r.YesVotes + r.NoVotes
	if total <= 0 {
		return 0
	}
	return float64(r.YesVotes) / float64(total) * 100
}

// HasResult reports whether the proposition has a recorded outcome
func (p Proposition) HasResult() bool {
	return p.Result != nil
}

// FormatPropositionID builds the canonical "<year>-<number>" identifier
func FormatPropositionID(year, number int) string {
	return fmt.Sprintf("%d-%d", year, number)
}

// ParsePropositionID splits a canonical identifier into year and ballot number.
// Non-canonical spellings such as "2024-01" are rejected rather than normalized.
func ParsePropositionID(id string) (int, int, error) {
	m := propositionIDPattern.FindStringSubmatch(id)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q is not a canonical <year>-<number>", ErrInvalidID, id)
	}
	year, _ := strconv.Atoi(m[1])
	number, _ := strconv.Atoi(m[2])
	return year, number, nil
}

// BallotAnalysis is the readability and framing profile of the ballot label
type BallotAnalysis struct {
	Readability float64         `json:"readability"` // Flesch reading ease, 0-100
	Complexity  float64         `json:"complexity"`  // 0 (plain) to 1 (dense)
	Sentiment   float64         `json:"sentiment"`   // -1 to 1
	Emphasis    FramingEmphasis `json:"emphasis"`
	WordCount   int             `json:"word_count"`

	// Hypothetical marks an analysis invented by a what-if scenario for a
	// proposition that has none on record
	Hypothetical bool `json:"-"`
}

// Endorsement is a public stance taken by an organization or official
type Endorsement struct {
	Name     string   `json:"name" validate:"required,max=200"`
	Position Position `json:"position" validate:"required,oneof=support oppose"`
	Weight   float64  `json:"weight" validate:"gte=0,lte=5"`
}
