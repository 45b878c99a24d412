package domain

import "time"

// Factor is one weighted input signal to the passage probability
type Factor struct {
	Name        string          `json:"name"`
	Weight      float64         `json:"weight"`
	Value       float64         `json:"value"`
	Impact      ImpactDirection `json:"impact"`
	Description string          `json:"description"`
	DataSource  string          `json:"data_source"`
	HasRealData bool            `json:"has_real_data"`
}

// HistoricalComparison is a past proposition ranked by resemblance to a target
type HistoricalComparison struct {
	PropositionID string            `json:"proposition_id"`
	Number        int               `json:"number"`
	Year          int               `json:"year"`
	Title         string            `json:"title"`
	Similarity    float64           `json:"similarity"`
	Result        PropositionStatus `json:"result"`
	YesPercentage float64           `json:"yes_percentage"`
}

// Hypothetical reports whether the factor was scored from scenario-invented
// input. Such factors move a scenario's probability but never count as real data.
func (f Factor) Hypothetical() bool {
	return f.DataSource == SourceScenario
}

// Prediction is a derived, recomputable passage estimate for a proposition
type Prediction struct {
	PropositionID         string                 `json:"proposition_id"`
	Probability           float64                `json:"probability"`
	Confidence            float64                `json:"confidence"`
	DataQuality           DataQuality            `json:"data_quality"`
	Factors               []Factor               `json:"factors"`
	HistoricalComparisons []HistoricalComparison `json:"historical_comparisons"`
	WeightsVersion        string                 `json:"weights_version"`
	GeneratedAt           time.Time              `json:"generated_at"`
}

// Factor returns the named factor, if present
func (p *Prediction) Factor(name string) (Factor, bool) {
	for _, f := range p.Factors {
		if f.Name == name {
			return f, true
		}
	}
	return Factor{}, false
}

// RealFactorCount returns how many factors were computed from real source data
func (p *Prediction) RealFactorCount() int {
	n := 0
	for _, f := range p.Factors {
		if f.HasRealData {
			n++
		}
	}
	return n
}
