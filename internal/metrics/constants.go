package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Prediction metric names
const (
	MetricNamePredictionsGenerated  = "predictions_generated_total"
	MetricNamePredictionProbability = "prediction_probability"
	MetricNamePredictionCache       = "prediction_cache_requests_total"
)

// Historical pool metric names
const (
	MetricNameHistoryFetchFailures = "history_fetch_failures_total"
	MetricNameHistoryPoolSize      = "history_pool_size"
)

// Impact and scenario metric names
const (
	MetricNameDistrictsAnalyzed  = "districts_analyzed_total"
	MetricNameImpactDuration     = "impact_analysis_duration_seconds"
	MetricNameScenariosSimulated = "scenarios_simulated_total"
	MetricNameScenarioDelta      = "scenario_probability_delta"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Prediction metric help text
const (
	HelpTextPredictionsGenerated  = "Total number of passage predictions generated"
	HelpTextPredictionProbability = "Distribution of predicted passage probabilities"
	HelpTextPredictionCache       = "Prediction cache lookups by result"
)

// Historical pool metric help text
const (
	HelpTextHistoryFetchFailures = "Historical proposition fetches that failed and were skipped"
	HelpTextHistoryPoolSize      = "Number of historical propositions in the last assembled pool"
)

// Impact and scenario metric help text
const (
	HelpTextDistrictsAnalyzed  = "Total number of district projections computed"
	HelpTextImpactDuration     = "District impact analysis latency in seconds"
	HelpTextScenariosSimulated = "Total number of scenario simulations"
	HelpTextScenarioDelta      = "Distribution of scenario probability deltas"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod       = "method"
	LabelPath         = "path"
	LabelStatus       = "status"
	LabelDataQuality  = "data_quality"
	LabelResult       = "result"
	LabelYear         = "year"
	LabelDistrictType = "district_type"
	LabelPreset       = "preset"
)

// Cache lookup results
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// PresetNone labels simulations run without a preset
const PresetNone = "none"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ProbabilityBuckets cover [0,1] in tenths
var ProbabilityBuckets = []float64{.1, .2, .3, .4, .5, .6, .7, .8, .9, 1}

// DeltaBuckets cover signed probability movements
var DeltaBuckets = []float64{-.3, -.2, -.1, -.05, -.01, 0, .01, .05, .1, .2, .3}
