package district

import (
	"math"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/utils"
)

// CalculatePartisanMetrics derives the current partisan profile of a district
// from its registration counts. A district with no registered voters is
// treated as evenly balanced.
func CalculatePartisanMetrics(d domain.District) domain.PartisanMetrics {
	reg := d.Demographics.VoterRegistration
	total := float64(reg.Total())

	var advantage, independentShare float64
	competitiveness := 1.0
	if total > 0 {
		margin := float64(reg.Democratic - reg.Republican)
		advantage = margin / total * 100
		competitiveness = 1 - math.Abs(margin)/total
		independentShare = float64(reg.Independent) / total
	}

	return domain.PartisanMetrics{
		DemocraticAdvantage:  utils.RoundMetric(advantage),
		CompetitivenessIndex: utils.RoundMetric(competitiveness),
		SwingPotential:       utils.RoundMetric(utils.Clamp01(independentShare + competitiveness*SwingIndependentWeight)),
		VoterEngagement:      EstimateTurnout(d),
	}
}

// EstimateTurnout estimates the share of registered voters who turn out.
// Unknown (zero) income is not treated as low income.
func EstimateTurnout(d domain.District) float64 {
	dm := d.Demographics
	turnout := BaseTurnout

	switch {
	case dm.MedianIncome > HighIncomeThreshold:
		turnout += HighIncomeTurnoutBoost
	case dm.MedianIncome > UpperIncomeThreshold:
		turnout += UpperIncomeTurnoutBoost
	case dm.MedianIncome > 0 && dm.MedianIncome < LowIncomeThreshold:
		turnout -= LowIncomeTurnoutPenalty
	}

	switch college := dm.Education.CollegeEducated(); {
	case college > HighCollegeThreshold:
		turnout += HighCollegeTurnoutBoost
	case college > SomeCollegeThreshold:
		turnout += SomeCollegeTurnoutBoost
	}

	if dm.UrbanRural.Urban > UrbanHeavyThreshold {
		turnout += UrbanTurnoutBoost
	}
	if dm.UrbanRural.Rural > RuralHeavyThreshold {
		turnout -= RuralTurnoutPenalty
	}

	return utils.RoundMetric(utils.Clamp(turnout, MinTurnout, MaxTurnout))
}

type shiftDriver struct {
	name   string
	amount float64
}

// registrationDrivers lists the demographic pressures moving registration,
// in a fixed order
func registrationDrivers(dm domain.Demographics) []shiftDriver {
	var drivers []shiftDriver

	switch {
	case dm.MedianAge > 0 && dm.MedianAge < YoungMedianAge:
		drivers = append(drivers, shiftDriver{DriverYoungElectorate, YoungShift})
	case dm.MedianAge > OlderMedianAge:
		drivers = append(drivers, shiftDriver{DriverOlderElectorate, OlderShift})
	}

	switch {
	case dm.UrbanRural.Urban > UrbanHeavyThreshold:
		drivers = append(drivers, shiftDriver{DriverUrbanConcentration, UrbanShift})
	case dm.UrbanRural.Rural > RuralHeavyThreshold:
		drivers = append(drivers, shiftDriver{DriverRuralConcentration, RuralShift})
	}

	switch {
	case dm.MedianIncome > 0 && dm.MedianIncome < ShiftLowIncome:
		drivers = append(drivers, shiftDriver{DriverLowerIncome, LowIncomeShift})
	case dm.MedianIncome > ShiftHighIncome:
		drivers = append(drivers, shiftDriver{DriverHigherIncome, HighIncomeShift})
	}

	return drivers
}

// EstimateRegistrationShift estimates how far passage moves a district's
// democratic advantage, in points, clamped to ±MaxRegistrationShift
func EstimateRegistrationShift(d domain.District) float64 {
	var shift float64
	for _, driver := range registrationDrivers(d.Demographics) {
		shift += driver.amount
	}
	return utils.RoundMetric(utils.Clamp(shift, -MaxRegistrationShift, MaxRegistrationShift))
}

// ShiftDrivers names the demographic pressures behind a district's shift
func ShiftDrivers(d domain.District) []string {
	drivers := registrationDrivers(d.Demographics)
	names := make([]string, len(drivers))
	for i, driver := range drivers {
		names[i] = driver.name
	}
	return names
}

// ProjectPostPassageMetrics applies a registration shift to current metrics
func ProjectPostPassageMetrics(current domain.PartisanMetrics, shift float64) domain.PartisanMetrics {
	magnitude := math.Abs(shift)
	return domain.PartisanMetrics{
		DemocraticAdvantage:  utils.RoundMetric(current.DemocraticAdvantage + shift),
		CompetitivenessIndex: utils.RoundMetric(utils.Clamp01(current.CompetitivenessIndex + magnitude*CompetitivenessPerPoint)),
		SwingPotential:       utils.RoundMetric(utils.Clamp01(current.SwingPotential - magnitude*SwingErosionPerPoint)),
		VoterEngagement: utils.RoundMetric(utils.Clamp(
			current.VoterEngagement+shift*EngagementPerPoint,
			MinProjectedEngagement, MaxProjectedEngagement,
		)),
	}
}

// CalculateChange compares projected metrics against current ones
func CalculateChange(current, projected domain.PartisanMetrics) domain.PartisanChange {
	shift := utils.RoundMetric(projected.DemocraticAdvantage - current.DemocraticAdvantage)
	return domain.PartisanChange{
		BalanceShift:  shift,
		Direction:     ClassifyDirection(shift),
		Significance:  ClassifySignificance(shift),
		DriverFactors: []string{},
	}
}

// ClassifyDirection names the party a balance shift favors
func ClassifyDirection(shift float64) domain.PartisanDirection {
	switch {
	case shift > DirectionThreshold:
		return domain.DirectionDemocratic
	case shift < -DirectionThreshold:
		return domain.DirectionRepublican
	default:
		return domain.DirectionNeutral
	}
}

// ClassifySignificance buckets the magnitude of a shift. Both thresholds are inclusive.
func ClassifySignificance(shift float64) domain.Significance {
	magnitude := math.Abs(shift)
	switch {
	case magnitude >= SignificantShift:
		return domain.SignificanceSignificant
	case magnitude >= ModerateShift:
		return domain.SignificanceModerate
	default:
		return domain.SignificanceMinimal
	}
}

// ProjectDistrict runs the full per-district pipeline
func ProjectDistrict(d domain.District) domain.DistrictImpact {
	current := CalculatePartisanMetrics(d)
	projected := ProjectPostPassageMetrics(current, EstimateRegistrationShift(d))
	change := CalculateChange(current, projected)
	if drivers := ShiftDrivers(d); len(drivers) > 0 {
		change.DriverFactors = drivers
	}

	return domain.DistrictImpact{
		DistrictID:   d.ID,
		DistrictName: d.Name,
		DistrictType: d.Type,
		Counties:     d.Counties,
		Current:      current,
		Projected:    projected,
		Change:       change,
	}
}
