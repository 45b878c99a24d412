package factor

import (
	"fmt"

	"github.com/osse101/PropForecast_Go/internal/domain"
)

// Wording scores the ballot label. Dense, hard-to-read or negatively framed
// language pulls toward "no".
func Wording(b *domain.BallotAnalysis) domain.Factor {
	if b == nil {
		return neutral(domain.FactorWording, "No ballot wording analysis available")
	}

	value := NeutralValue +
		SentimentCoefficient*b.Sentiment -
		ComplexityCoefficient*(b.Complexity-NeutralComplexity) +
		ReadabilityCoefficient*(b.Readability-NeutralReadability)/NeutralReadability

	switch b.Emphasis {
	case domain.EmphasisBenefits:
		value += EmphasisAdjustment
	case domain.EmphasisCosts:
		value -= EmphasisAdjustment
	}

	desc := fmt.Sprintf("Readability %.0f, complexity %.2f, sentiment %+.2f", b.Readability, b.Complexity, b.Sentiment)
	if b.Hypothetical {
		return hypothetical(domain.FactorWording, value, "Scenario framing: "+desc)
	}
	return measured(domain.FactorWording, value, domain.SourceBallotText, desc)
}
