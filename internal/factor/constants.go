package factor

import "github.com/osse101/PropForecast_Go/internal/domain"

// Neutral default used whenever a factor has no source data
const NeutralValue = 0.5

// Impact classification bands
const (
	PositiveThreshold = 0.55
	NegativeThreshold = 0.45
)

// Demographic lean constants
const (
	ReferenceIncome    = 75000.0 // median household income treated as income-neutral
	ReferenceMedianAge = 40.0    // used when no age distribution is available
)

// Wording model coefficients
const (
	SentimentCoefficient   = 0.15
	ComplexityCoefficient  = 0.20
	ReadabilityCoefficient = 0.10
	NeutralReadability     = 50.0
	NeutralComplexity      = 0.5
	EmphasisAdjustment     = 0.05
)

// Timing model constants
const (
	CompetingMeasurePenalty    = 0.01
	MaxCompetingMeasurePenalty = 0.10
	TurnoutTimingCoefficient   = 0.20
)

// Opposition model constants
const (
	OppositionCommitteePenalty = 0.03
	MaxPenalizedCommittees     = 5
	EndorsementAdjustment      = 0.02
)

// electionTypeValues is the baseline timing value for each election type
var electionTypeValues = map[domain.ElectionType]float64{
	domain.ElectionPresidentialGeneral: 0.60,
	domain.ElectionMidtermGeneral:      0.50,
	domain.ElectionPrimary:             0.45,
	domain.ElectionSpecial:             0.40,
}

// leanWeights is how strongly each demographic lean moves support for a category
type leanWeights struct {
	Age    float64
	Urban  float64
	Income float64
}

var categoryLeanWeights = map[domain.Category]leanWeights{
	domain.CategoryTaxation:        {Age: 0.05, Urban: 0.10, Income: 0.20},
	domain.CategoryEducation:       {Age: 0.20, Urban: 0.15, Income: 0.05},
	domain.CategoryHealthcare:      {Age: 0.10, Urban: 0.10, Income: 0.15},
	domain.CategoryEnvironment:     {Age: 0.20, Urban: 0.20, Income: 0.00},
	domain.CategoryCriminalJustice: {Age: 0.15, Urban: 0.15, Income: 0.05},
	domain.CategoryLabor:           {Age: 0.10, Urban: 0.10, Income: 0.20},
	domain.CategoryHousing:         {Age: 0.15, Urban: 0.20, Income: 0.10},
	domain.CategoryTransportation:  {Age: 0.05, Urban: 0.25, Income: 0.00},
	domain.CategoryGovernment:      {Age: 0.05, Urban: 0.05, Income: 0.05},
	domain.CategoryCivilRights:     {Age: 0.20, Urban: 0.15, Income: 0.00},
	domain.CategoryOther:           {Age: 0.10, Urban: 0.10, Income: 0.10},
}

// oppositionIntensityScale multiplies opposition spending for a scenario intensity
var oppositionIntensityScale = map[domain.OppositionIntensity]float64{
	domain.OppositionNone:     0,
	domain.OppositionWeak:     0.5,
	domain.OppositionModerate: 1,
	domain.OppositionStrong:   1.5,
	domain.OppositionIntense:  2,
}
