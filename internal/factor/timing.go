package factor

import (
	"fmt"
	"math"
	"time"

	"github.com/osse101/PropForecast_Go/internal/domain"
)

// Timing scores the election a proposition appears on. Presidential generals
// bring the broadest electorate; special and off-cycle elections the narrowest.
func Timing(electionDate time.Time, cond Conditions) domain.Factor {
	if electionDate.IsZero() && cond.ElectionType == "" {
		return neutral(domain.FactorTiming, "No election date available")
	}

	date := electionDate
	if cond.MonthOffset != 0 && !date.IsZero() {
		date = date.AddDate(0, cond.MonthOffset, 0)
	}

	electionType := cond.ElectionType
	if electionType == "" {
		electionType = ClassifyElection(date)
	}

	base, ok := electionTypeValues[electionType]
	if !ok {
		base = electionTypeValues[domain.ElectionSpecial]
	}

	penalty := math.Min(CompetingMeasurePenalty*float64(cond.CompetingMeasures), MaxCompetingMeasurePenalty)
	value := base - penalty + (cond.Turnout-1)*TurnoutTimingCoefficient

	description := fmt.Sprintf("Appears on a %s ballot", electionType)
	if cond.CompetingMeasures > 0 {
		description += fmt.Sprintf(" with %d competing measures", cond.CompetingMeasures)
	}
	return measured(domain.FactorTiming, value, domain.SourceElectionCalendar, description)
}

// ClassifyElection derives the election type from a California election date.
// November of an even year is a general election; March and June of an even
// year are primaries; everything else is treated as a special election.
func ClassifyElection(date time.Time) domain.ElectionType {
	year := date.Year()
	if year%2 != 0 {
		return domain.ElectionSpecial
	}
	switch date.Month() {
	case time.November:
		if year%4 == 0 {
			return domain.ElectionPresidentialGeneral
		}
		return domain.ElectionMidtermGeneral
	case time.March, time.June:
		return domain.ElectionPrimary
	default:
		return domain.ElectionSpecial
	}
}
