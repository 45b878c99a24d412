package domain

// Category is the subject-matter bucket a proposition belongs to
type Category string

const (
	CategoryTaxation        Category = "taxation"
	CategoryEducation       Category = "education"
	CategoryHealthcare      Category = "healthcare"
	CategoryEnvironment     Category = "environment"
	CategoryCriminalJustice Category = "criminal_justice"
	CategoryLabor           Category = "labor"
	CategoryHousing         Category = "housing"
	CategoryTransportation  Category = "transportation"
	CategoryGovernment      Category = "government"
	CategoryCivilRights     Category = "civil_rights"
	CategoryOther           Category = "other"
)

// AllCategories lists every category in declaration order
var AllCategories = []Category{
	CategoryTaxation,
	CategoryEducation,
	CategoryHealthcare,
	CategoryEnvironment,
	CategoryCriminalJustice,
	CategoryLabor,
	CategoryHousing,
	CategoryTransportation,
	CategoryGovernment,
	CategoryCivilRights,
	CategoryOther,
}

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// PropositionStatus tracks where a proposition is in its lifecycle
type PropositionStatus string

const (
	StatusUpcoming PropositionStatus = "upcoming"
	StatusActive   PropositionStatus = "active"
	StatusPassed   PropositionStatus = "passed"
	StatusFailed   PropositionStatus = "failed"
)

// Position is a committee, donor or endorser stance on a proposition
type Position string

const (
	PositionSupport Position = "support"
	PositionOppose  Position = "oppose"
)

// ImpactDirection is the direction a factor pushes the passage probability
type ImpactDirection string

const (
	ImpactPositive ImpactDirection = "positive"
	ImpactNegative ImpactDirection = "negative"
	ImpactNeutral  ImpactDirection = "neutral"
)

// DataQuality labels how much of a prediction is backed by real source data
type DataQuality string

const (
	DataQualityStrong   DataQuality = "strong"
	DataQualityModerate DataQuality = "moderate"
	DataQualityLimited  DataQuality = "limited"
)

// DistrictType is the kind of electoral or administrative district
type DistrictType string

const (
	DistrictCongressional DistrictType = "congressional"
	DistrictStateSenate   DistrictType = "state_senate"
	DistrictStateAssembly DistrictType = "state_assembly"
	DistrictCounty        DistrictType = "county"
	DistrictCity          DistrictType = "city"
)

// IsValid reports whether t is one of the known district types
func (t DistrictType) IsValid() bool {
	switch t {
	case DistrictCongressional, DistrictStateSenate, DistrictStateAssembly, DistrictCounty, DistrictCity:
		return true
	}
	return false
}

// PartisanDirection is the party a balance shift favors
type PartisanDirection string

const (
	DirectionDemocratic PartisanDirection = "democratic"
	DirectionRepublican PartisanDirection = "republican"
	DirectionNeutral    PartisanDirection = "neutral"
	DirectionMixed      PartisanDirection = "mixed"
)

// Significance buckets the magnitude of a partisan balance shift
type Significance string

const (
	SignificanceMinimal     Significance = "minimal"
	SignificanceModerate    Significance = "moderate"
	SignificanceSignificant Significance = "significant"
)

// ElectionType classifies the election a proposition appears on
type ElectionType string

const (
	ElectionPresidentialGeneral ElectionType = "presidential_general"
	ElectionMidtermGeneral      ElectionType = "midterm_general"
	ElectionPrimary             ElectionType = "primary"
	ElectionSpecial             ElectionType = "special"
)

// IsValid reports whether e is one of the known election types
func (e ElectionType) IsValid() bool {
	switch e {
	case ElectionPresidentialGeneral, ElectionMidtermGeneral, ElectionPrimary, ElectionSpecial:
		return true
	}
	return false
}

// OppositionIntensity describes how hard the opposing campaign is fighting
type OppositionIntensity string

const (
	OppositionNone     OppositionIntensity = "none"
	OppositionWeak     OppositionIntensity = "weak"
	OppositionModerate OppositionIntensity = "moderate"
	OppositionStrong   OppositionIntensity = "strong"
	OppositionIntense  OppositionIntensity = "intense"
)

// AllOppositionIntensities lists intensities from weakest to strongest
var AllOppositionIntensities = []OppositionIntensity{
	OppositionNone,
	OppositionWeak,
	OppositionModerate,
	OppositionStrong,
	OppositionIntense,
}

// FramingEmphasis is what the ballot language foregrounds
type FramingEmphasis string

const (
	EmphasisBenefits FramingEmphasis = "benefits"
	EmphasisCosts    FramingEmphasis = "costs"
	EmphasisNeutral  FramingEmphasis = "neutral"
)

// Factor names
const (
	FactorFinance      = "finance"
	FactorDemographics = "demographics"
	FactorWording      = "wording"
	FactorTiming       = "timing"
	FactorOpposition   = "opposition"
	FactorHistorical   = "historical_similarity"
)

// Data source labels attached to factors
const (
	SourceCampaignFinance  = "campaign_finance"
	SourceCensus           = "census"
	SourceBallotText       = "ballot_text"
	SourceElectionCalendar = "election_calendar"
	SourceCommittees       = "committee_filings"
	SourceHistorical       = "historical_results"
	SourceDefault          = "default"
	SourceScenario         = "scenario"
)
