package factor

import (
	"fmt"

	"github.com/osse101/PropForecast_Go/internal/domain"
)

// Historical scores how similar past propositions fared, weighting each
// comparison's yes share by its similarity.
func Historical(comparisons []domain.HistoricalComparison) domain.Factor {
	var sum, total float64
	for _, c := range comparisons {
		sum += c.Similarity * c.YesPercentage / 100
		total += c.Similarity
	}
	if total == 0 {
		return neutral(domain.FactorHistorical, "No comparable past propositions found")
	}

	passed := 0
	for _, c := range comparisons {
		if c.Result == domain.StatusPassed {
			passed++
		}
	}

	return measured(domain.FactorHistorical, sum/total, domain.SourceHistorical,
		fmt.Sprintf("%d of %d similar propositions passed", passed, len(comparisons)))
}
