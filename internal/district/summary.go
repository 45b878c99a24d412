package district

import (
	"fmt"
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/utils"
)

var titleCaser = cases.Title(language.English)

// Statewide aggregates district projections into a single statewide view
func Statewide(impacts []domain.DistrictImpact) domain.StatewideImpact {
	shifts := make([]float64, len(impacts))
	competitiveness := make([]float64, len(impacts))
	affected := 0
	for i, impact := range impacts {
		shifts[i] = impact.Change.BalanceShift
		competitiveness[i] = impact.Projected.CompetitivenessIndex - impact.Current.CompetitivenessIndex
		if impact.Change.Significance != domain.SignificanceMinimal {
			affected++
		}
	}

	return domain.StatewideImpact{
		TotalDistricts:               len(impacts),
		AffectedDistricts:            affected,
		AverageBalanceShift:          utils.RoundMetric(utils.Mean(shifts)),
		NetDirection:                 NetDirection(impacts),
		AverageCompetitivenessChange: utils.RoundMetric(utils.Mean(competitiveness)),
	}
}

// NetDirection is democratic or republican only when that direction covers at
// least NetDirectionRatio times as many districts as the other. With no
// district moving either way it is neutral, otherwise mixed.
func NetDirection(impacts []domain.DistrictImpact) domain.PartisanDirection {
	dem, rep := directionCounts(impacts)
	switch {
	case dem == 0 && rep == 0:
		return domain.DirectionNeutral
	case float64(dem) >= NetDirectionRatio*float64(rep):
		return domain.DirectionDemocratic
	case float64(rep) >= NetDirectionRatio*float64(dem):
		return domain.DirectionRepublican
	default:
		return domain.DirectionMixed
	}
}

func directionCounts(impacts []domain.DistrictImpact) (dem, rep int) {
	for _, impact := range impacts {
		switch impact.Change.Direction {
		case domain.DirectionDemocratic:
			dem++
		case domain.DirectionRepublican:
			rep++
		}
	}
	return dem, rep
}

// Summarize buckets districts by significance and direction and describes the
// effect on representation
func Summarize(number int, impacts []domain.DistrictImpact) domain.ImpactSummary {
	summary := domain.ImpactSummary{
		BySignificance: map[domain.Significance]int{
			domain.SignificanceMinimal:     0,
			domain.SignificanceModerate:    0,
			domain.SignificanceSignificant: 0,
		},
		ByDirection: map[domain.PartisanDirection]int{
			domain.DirectionDemocratic: 0,
			domain.DirectionRepublican: 0,
			domain.DirectionNeutral:    0,
		},
	}

	for _, impact := range impacts {
		summary.BySignificance[impact.Change.Significance]++
		summary.ByDirection[impact.Change.Direction]++

		switch delta := impact.Projected.CompetitivenessIndex - impact.Current.CompetitivenessIndex; {
		case delta > 0:
			summary.CompetitivenessGainers++
		case delta < 0:
			summary.CompetitivenessLosers++
		}

		if impact.Change.Significance == domain.SignificanceSignificant {
			summary.SignificantDistrictIDs = append(summary.SignificantDistrictIDs, impact.DistrictID)
		}
	}

	summary.RepresentationImpact = representationImpact(number, impacts, summary.BySignificance[domain.SignificanceSignificant])
	return summary
}

func representationImpact(number int, impacts []domain.DistrictImpact, significant int) string {
	dem, rep := directionCounts(impacts)
	if dem == 0 && rep == 0 {
		return fmt.Sprintf("Passage of Proposition %d would not meaningfully change representation across the %d districts analyzed", number, len(impacts))
	}

	magnitude := "moderate"
	if significant > SubstantialDistricts {
		magnitude = "substantial"
	}

	direction, count := dominantDirection(impacts, dem, rep)
	return fmt.Sprintf("Passage of Proposition %d would have a %s effect on representation, with the largest shift toward %s voters across %d districts",
		number, magnitude, titleCaser.String(string(direction)), count)
}

// dominantDirection picks the direction more districts move in. A tie goes to
// the direction of the single largest shift.
func dominantDirection(impacts []domain.DistrictImpact, dem, rep int) (domain.PartisanDirection, int) {
	switch {
	case dem > rep:
		return domain.DirectionDemocratic, dem
	case rep > dem:
		return domain.DirectionRepublican, rep
	}

	var largest float64
	for _, impact := range impacts {
		if math.Abs(impact.Change.BalanceShift) > math.Abs(largest) {
			largest = impact.Change.BalanceShift
		}
	}
	if largest < 0 {
		return domain.DirectionRepublican, rep
	}
	return domain.DirectionDemocratic, dem
}
