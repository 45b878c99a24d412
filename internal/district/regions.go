package district

import (
	"strings"
	"unicode"

	"github.com/osse101/PropForecast_Go/internal/domain"
	"github.com/osse101/PropForecast_Go/internal/utils"
)

// Region names
const (
	RegionBayArea          = "Bay Area"
	RegionLosAngeles       = "Los Angeles"
	RegionOrangeCounty     = "Orange County"
	RegionSanDiego         = "San Diego"
	RegionInlandEmpire     = "Inland Empire"
	RegionCentralValley    = "Central Valley"
	RegionSacramentoValley = "Sacramento Valley"
	RegionCentralCoast     = "Central Coast"
	RegionNorthernSierra   = "Northern & Sierra"
)

type region struct {
	name     string
	counties []string
}

// regions partitions all 58 California counties. Order is the reporting order.
var regions = []region{
	{RegionBayArea, []string{"Alameda", "Contra Costa", "Marin", "Napa", "San Francisco", "San Mateo", "Santa Clara", "Solano", "Sonoma"}},
	{RegionLosAngeles, []string{"Los Angeles"}},
	{RegionOrangeCounty, []string{"Orange"}},
	{RegionSanDiego, []string{"San Diego", "Imperial"}},
	{RegionInlandEmpire, []string{"Riverside", "San Bernardino"}},
	{RegionCentralValley, []string{"Fresno", "Kern", "Kings", "Madera", "Merced", "San Joaquin", "Stanislaus", "Tulare"}},
	{RegionSacramentoValley, []string{"Sacramento", "Yolo", "Placer", "El Dorado", "Sutter", "Yuba", "Colusa", "Glenn", "Butte", "Tehama"}},
	{RegionCentralCoast, []string{"Monterey", "San Benito", "San Luis Obispo", "Santa Barbara", "Santa Cruz", "Ventura"}},
	{RegionNorthernSierra, []string{
		"Alpine", "Amador", "Calaveras", "Del Norte", "Humboldt", "Inyo", "Lake", "Lassen", "Mariposa", "Mendocino",
		"Modoc", "Mono", "Nevada", "Plumas", "Shasta", "Sierra", "Siskiyou", "Trinity", "Tuolumne",
	}},
}

// countyRegion maps a lowercased county name to its region
var countyRegion = func() map[string]string {
	m := make(map[string]string)
	for _, r := range regions {
		for _, c := range r.counties {
			m[strings.ToLower(c)] = r.name
		}
	}
	return m
}()

// RegionNames returns the fixed region names in reporting order
func RegionNames() []string {
	names := make([]string, len(regions))
	for i, r := range regions {
		names[i] = r.name
	}
	return names
}

// CanonicalRegion matches a region name case-insensitively and returns its
// reporting spelling.
func CanonicalRegion(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, r := range RegionNames() {
		if strings.EqualFold(r, name) {
			return r, true
		}
	}
	return "", false
}

// RegionFor returns the region of a district. The first listed county that
// belongs to a region wins; districts without counties fall back to the
// earliest whole-word county name in the district name.
func RegionFor(districtName string, counties []string) (string, bool) {
	for _, c := range counties {
		if name, ok := countyRegion[countyKey(c)]; ok {
			return name, true
		}
	}
	if len(counties) > 0 {
		return "", false
	}
	return regionFromName(districtName)
}

// countyKey normalizes a county for lookup: "Los Angeles County" and
// "los angeles" share one key.
func countyKey(county string) string {
	key := strings.ToLower(strings.TrimSpace(county))
	if trimmed, ok := strings.CutSuffix(key, " county"); ok {
		key = strings.TrimSpace(trimmed)
	}
	return key
}

func regionFromName(districtName string) (string, bool) {
	words := strings.FieldsFunc(strings.ToLower(districtName), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if len(words) == 0 {
		return "", false
	}
	padded := " " + strings.Join(words, " ") + " "

	best, bestAt := "", -1
	for county := range countyRegion {
		at := strings.Index(padded, " "+county+" ")
		if at < 0 {
			continue
		}
		// ties at the same position go to the longer county name
		if bestAt < 0 || at < bestAt || (at == bestAt && len(county) > len(best)) {
			best, bestAt = county, at
		}
	}
	if bestAt < 0 {
		return "", false
	}
	return countyRegion[best], true
}

// AggregateByRegion averages district projections per region. Regions with no
// districts are omitted and unmatched districts are ignored.
func AggregateByRegion(impacts []domain.DistrictImpact) []domain.RegionalImpact {
	grouped := make(map[string][]domain.DistrictImpact)
	for _, impact := range impacts {
		name, ok := RegionFor(impact.DistrictName, impact.Counties)
		if !ok {
			continue
		}
		grouped[name] = append(grouped[name], impact)
	}

	out := make([]domain.RegionalImpact, 0, len(grouped))
	for _, r := range regions {
		members := grouped[r.name]
		if len(members) == 0 {
			continue
		}

		advantage := make([]float64, len(members))
		turnout := make([]float64, len(members))
		shift := make([]float64, len(members))
		for i, m := range members {
			advantage[i] = m.Current.DemocraticAdvantage
			turnout[i] = m.Current.VoterEngagement
			shift[i] = m.Change.BalanceShift
		}

		out = append(out, domain.RegionalImpact{
			Region:                     r.name,
			DistrictCount:              len(members),
			AverageDemocraticAdvantage: utils.RoundMetric(utils.Mean(advantage)),
			AverageTurnout:             utils.RoundMetric(utils.Mean(turnout)),
			AverageBalanceShift:        utils.RoundMetric(utils.Mean(shift)),
		})
	}
	return out
}
