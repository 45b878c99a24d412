package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Prediction Metrics
var (
	PredictionsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsGenerated,
			Help: HelpTextPredictionsGenerated,
		},
		[]string{LabelDataQuality},
	)

	PredictionProbability = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePredictionProbability,
			Help:    HelpTextPredictionProbability,
			Buckets: ProbabilityBuckets,
		},
	)

	PredictionCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePredictionCache,
			Help: HelpTextPredictionCache,
		},
		[]string{LabelResult},
	)
)

// Historical Pool Metrics
var (
	HistoryFetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHistoryFetchFailures,
			Help: HelpTextHistoryFetchFailures,
		},
		[]string{LabelYear},
	)

	HistoryPoolSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHistoryPoolSize,
			Help: HelpTextHistoryPoolSize,
		},
	)
)

// Impact and Scenario Metrics
var (
	DistrictsAnalyzed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDistrictsAnalyzed,
			Help: HelpTextDistrictsAnalyzed,
		},
		[]string{LabelDistrictType},
	)

	ImpactDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameImpactDuration,
			Help:    HelpTextImpactDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)

	ScenariosSimulated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScenariosSimulated,
			Help: HelpTextScenariosSimulated,
		},
		[]string{LabelPreset},
	)

	ScenarioProbabilityDelta = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameScenarioDelta,
			Help:    HelpTextScenarioDelta,
			Buckets: DeltaBuckets,
		},
	)
)
