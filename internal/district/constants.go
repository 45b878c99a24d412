package district

// Turnout estimate
const (
	BaseTurnout = 0.55
	MinTurnout  = 0.3
	MaxTurnout  = 0.85

	HighIncomeThreshold     = 100_000
	UpperIncomeThreshold    = 75_000
	LowIncomeThreshold      = 40_000
	HighIncomeTurnoutBoost  = 0.10
	UpperIncomeTurnoutBoost = 0.05
	LowIncomeTurnoutPenalty = 0.05

	HighCollegeThreshold    = 0.4
	SomeCollegeThreshold    = 0.25
	HighCollegeTurnoutBoost = 0.08
	SomeCollegeTurnoutBoost = 0.04

	UrbanHeavyThreshold = 0.7
	RuralHeavyThreshold = 0.5
	UrbanTurnoutBoost   = 0.03
	RuralTurnoutPenalty = 0.02
)

// Registration shift estimate, in points of democratic advantage
const (
	YoungMedianAge       = 35
	OlderMedianAge       = 55
	YoungShift           = 0.5
	OlderShift           = -0.3
	UrbanShift           = 0.3
	RuralShift           = -0.2
	ShiftLowIncome       = 50_000
	ShiftHighIncome      = 150_000
	LowIncomeShift       = 0.2
	HighIncomeShift      = -0.1
	MaxRegistrationShift = 2.0
)

// Post-passage projection
const (
	SwingIndependentWeight  = 0.3
	CompetitivenessPerPoint = 0.01
	SwingErosionPerPoint    = 0.02
	EngagementPerPoint      = 0.01
	MinProjectedEngagement  = 0.3
	MaxProjectedEngagement  = 0.9
)

// Change classification
const (
	DirectionThreshold   = 0.5
	SignificantShift     = 2.0
	ModerateShift        = 1.0
	NetDirectionRatio    = 1.5
	SubstantialDistricts = 5
)

// Shift drivers reported on each district change
const (
	DriverYoungElectorate    = "young_electorate"
	DriverOlderElectorate    = "older_electorate"
	DriverUrbanConcentration = "urban_concentration"
	DriverRuralConcentration = "rural_concentration"
	DriverLowerIncome        = "lower_income"
	DriverHigherIncome       = "higher_income"
)

// DefaultWorkers bounds concurrent district projections when none is configured
const DefaultWorkers = 8

// Log messages
const (
	LogMsgImpactAnalyzed         = "Proposition impact analyzed"
	LogMsgDistrictImpactAnalyzed = "District impact analyzed"
	LogMsgNoDistricts            = "No districts matched filter"
	LogMsgSignificantShift       = "Significant district shift projected"
)
