package scenario

import "github.com/osse101/PropForecast_Go/internal/domain"

// ConfidenceSpread scales (1 - confidence) into the interval half-width
const ConfidenceSpread = 0.25

// Sensitivity curve names
const (
	ParamSupportFunding      = "support_funding_multiplier"
	ParamOppositionFunding   = "opposition_funding_multiplier"
	ParamTurnout             = "turnout_multiplier"
	ParamSentimentShift      = "sentiment_shift"
	ParamOppositionIntensity = "opposition_intensity"
)

// Sensitivity grids
var (
	FundingGrid   = []float64{0.5, 0.75, 1, 1.25, 1.5, 2}
	TurnoutGrid   = []float64{0.7, 0.85, 1, 1.15, 1.3}
	SentimentGrid = []float64{-0.5, -0.25, 0, 0.25, 0.5}
)

// synthesized ballot used when framing is changed on a proposition with no wording analysis
var neutralBallot = domain.BallotAnalysis{
	Readability: 50,
	Complexity:  0.5,
	Sentiment:   0,
}

// Log messages
const (
	LogMsgScenarioSimulated = "Scenario simulated"
	LogMsgPresetsLoaded     = "Scenario presets loaded"
)
