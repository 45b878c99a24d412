package domain

// District is a geographic unit with a registered electorate
type District struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Type             DistrictType `json:"type"`
	Counties         []string     `json:"counties"`
	Population       int          `json:"population"`
	RegisteredVoters int          `json:"registered_voters"`
	Demographics     Demographics `json:"demographics"`
}

// Demographics is the census and registration profile of an electorate
type Demographics struct {
	MedianIncome      float64            `json:"median_income"`
	MedianAge         float64            `json:"median_age"`
	AgeDistribution   AgeDistribution    `json:"age_distribution"`
	Ethnicity         map[string]float64 `json:"ethnicity,omitempty"`
	Education         Education          `json:"education"`
	UrbanRural        UrbanRural         `json:"urban_rural"`
	VoterRegistration VoterRegistration  `json:"voter_registration"`
}

// AgeDistribution holds population shares by age band
type AgeDistribution struct {
	Age18To34 float64 `json:"age_18_34"`
	Age35To64 float64 `json:"age_35_64"`
	Age65Plus float64 `json:"age_65_plus"`
}

// Education holds attainment shares for the adult population
type Education struct {
	HighSchoolOrLess float64 `json:"high_school_or_less"`
	SomeCollege      float64 `json:"some_college"`
	Bachelors        float64 `json:"bachelors"`
	Graduate         float64 `json:"graduate"`
}

// CollegeEducated is the share holding a bachelor's degree or higher
func (e Education) CollegeEducated() float64 {
	return e.Bachelors + e.Graduate
}

// UrbanRural holds population shares by settlement type
type UrbanRural struct {
	Urban    float64 `json:"urban"`
	Suburban float64 `json:"suburban"`
	Rural    float64 `json:"rural"`
}

// VoterRegistration holds registered voter counts by party
type VoterRegistration struct {
	Democratic  int `json:"democratic"`
	Republican  int `json:"republican"`
	Independent int `json:"independent"`
	Other       int `json:"other"`
}

// Total returns the number of registered voters across all parties
func (v VoterRegistration) Total() int {
	return v.Democratic + v.Republican + v.Independent + v.Other
}

// PartisanMetrics is the derived partisan profile of a district
type PartisanMetrics struct {
	DemocraticAdvantage  float64 `json:"democratic_advantage"`
	CompetitivenessIndex float64 `json:"competitiveness_index"`
	SwingPotential       float64 `json:"swing_potential"`
	VoterEngagement      float64 `json:"voter_engagement"`
}

// PartisanChange describes how a district's balance moves after passage
type PartisanChange struct {
	BalanceShift  float64           `json:"balance_shift"`
	Direction     PartisanDirection `json:"direction"`
	Significance  Significance      `json:"significance"`
	DriverFactors []string          `json:"driver_factors"`
}

// DistrictImpact is the before/after projection for a single district
type DistrictImpact struct {
	DistrictID   string          `json:"district_id"`
	DistrictName string          `json:"district_name"`
	DistrictType DistrictType    `json:"district_type"`
	Counties     []string        `json:"counties,omitempty"`
	Current      PartisanMetrics `json:"current"`
	Projected    PartisanMetrics `json:"projected"`
	Change       PartisanChange  `json:"change"`
}

// StatewideImpact summarizes projected change across every analyzed district
type StatewideImpact struct {
	TotalDistricts               int               `json:"total_districts"`
	AffectedDistricts            int               `json:"affected_districts"`
	AverageBalanceShift          float64           `json:"average_balance_shift"`
	NetDirection                 PartisanDirection `json:"net_direction"`
	AverageCompetitivenessChange float64           `json:"average_competitiveness_change"`
}

// ImpactSummary buckets districts by the size and direction of their change
type ImpactSummary struct {
	BySignificance         map[Significance]int      `json:"by_significance"`
	ByDirection            map[PartisanDirection]int `json:"by_direction"`
	CompetitivenessGainers int                       `json:"competitiveness_gainers"`
	CompetitivenessLosers  int                       `json:"competitiveness_losers"`
	RepresentationImpact   string                    `json:"representation_impact"`
	SignificantDistrictIDs []string                  `json:"significant_district_ids,omitempty"`
}

// RegionalImpact averages district projections within one region
type RegionalImpact struct {
	Region                     string  `json:"region"`
	DistrictCount              int     `json:"district_count"`
	AverageDemocraticAdvantage float64 `json:"average_democratic_advantage"`
	AverageTurnout             float64 `json:"average_turnout"`
	AverageBalanceShift        float64 `json:"average_balance_shift"`
}

// PropositionImpact is the full district-level projection for a proposition
type PropositionImpact struct {
	PropositionID string           `json:"proposition_id"`
	Statewide     StatewideImpact  `json:"statewide"`
	Districts     []DistrictImpact `json:"districts"`
	Summary       ImpactSummary    `json:"summary"`
	Regions       []RegionalImpact `json:"regions"`
}
