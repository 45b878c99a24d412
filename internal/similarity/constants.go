package similarity

// Scoring weights
const (
	CategoryMatchBase    = 0.6
	KeywordOverlapWeight = 0.3
	MaxRecencyBonus      = 0.1
	RecencyDecayPerYear  = 0.02
)

// Keyword extraction
const MinKeywordLength = 3

// Matching defaults
const (
	DefaultLimit         = 5
	DefaultMinSimilarity = 0.2
)

// Pool fetch bounds
const (
	MaxConcurrentFetches = 4
	DefaultLookbackYears = 20
)

// Log messages
const (
	LogMsgHistoryFetchFailed = "Historical fetch failed, continuing without year"
	LogMsgPoolAssembled      = "Historical pool assembled"
	LogMsgSimilarFound       = "Similar propositions ranked"
)

// stopWords are dropped from titles before keyword comparison
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "act": {}, "with": {}, "from": {}, "that": {},
	"this": {}, "are": {}, "was": {}, "its": {}, "into": {}, "onto": {}, "upon": {},
	"state": {}, "california": {}, "initiative": {}, "measure": {}, "proposition": {},
	"constitutional": {}, "amendment": {}, "statute": {}, "law": {}, "laws": {},
	"certain": {}, "other": {}, "new": {}, "all": {}, "any": {}, "not": {},
	"provides": {}, "requires": {}, "authorizes": {}, "changes": {}, "related": {},
}
