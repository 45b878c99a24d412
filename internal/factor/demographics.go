package factor

import (
	"fmt"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/utils"
)

// Demographics scores how favorable the electorate is for a category of measure.
// Younger, more urban and lower-income electorates lean toward passage with
// category-specific strength; turnout amplifies or mutes the combined lean.
func Demographics(d *domain.Demographics, category domain.Category, cond Conditions) domain.Factor {
	if d == nil || isEmptyDemographics(d) {
		return neutral(domain.FactorDemographics, "No demographic data available")
	}

	weights, ok := categoryLeanWeights[category]
	if !ok {
		weights = categoryLeanWeights[domain.CategoryOther]
	}

	ageLean := ageLean(d, cond)
	urbanLean := utils.Clamp01(d.UrbanRural.Urban*cond.groupMultiplier(domain.TurnoutGroupUrban)) -
		utils.Clamp01(d.UrbanRural.Rural*cond.groupMultiplier(domain.TurnoutGroupRural))
	incomeLean := incomeLean(d, cond)

	lean := weights.Age*ageLean + weights.Urban*urbanLean + weights.Income*incomeLean
	value := NeutralValue + cond.Turnout*lean

	return measured(domain.FactorDemographics, value, domain.SourceCensus,
		fmt.Sprintf("Electorate lean for %s measures (age %+.2f, urban %+.2f, income %+.2f)",
			category, ageLean, urbanLean, incomeLean))
}

func isEmptyDemographics(d *domain.Demographics) bool {
	return d.MedianIncome == 0 && d.MedianAge == 0 &&
		d.UrbanRural == (domain.UrbanRural{}) &&
		d.AgeDistribution == (domain.AgeDistribution{})
}

// ageLean is the young-minus-senior share, estimated from median age when no
// distribution is recorded
func ageLean(d *domain.Demographics, cond Conditions) float64 {
	if d.AgeDistribution == (domain.AgeDistribution{}) {
		if d.MedianAge == 0 {
			return 0
		}
		return utils.Clamp((ReferenceMedianAge-d.MedianAge)/ReferenceMedianAge, -1, 1)
	}
	young := utils.Clamp01(d.AgeDistribution.Age18To34 * cond.groupMultiplier(domain.TurnoutGroupYoung))
	senior := utils.Clamp01(d.AgeDistribution.Age65Plus * cond.groupMultiplier(domain.TurnoutGroupSenior))
	return young - senior
}

// incomeLean is positive for electorates below the reference income
func incomeLean(d *domain.Demographics, cond Conditions) float64 {
	if d.MedianIncome <= 0 {
		return 0
	}
	lean := utils.Clamp((ReferenceIncome-d.MedianIncome)/ReferenceIncome, -1, 1)
	if lean > 0 {
		return utils.Clamp(lean*cond.groupMultiplier(domain.TurnoutGroupLowIncome), -1, 1)
	}
	return utils.Clamp(lean*cond.groupMultiplier(domain.TurnoutGroupHighIncome), -1, 1)
}
