package prediction

import "time"

// DefaultWeightsVersion identifies the canonical weight set
const DefaultWeightsVersion = "2024.1"

// Confidence model
const (
	BaseConfidence              = 0.35
	RealDataConfidenceWeight    = 0.45
	HistoryConfidenceWeight     = 0.15
	MaxComparisonsForConfidence = 10
	MaxConfidence               = 0.95
)

// Data quality thresholds, in factors backed by real data
const (
	StrongDataThreshold   = 4
	ModerateDataThreshold = 2
)

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
)

// CacheSchemaVersion is bumped when the cached prediction shape changes
const CacheSchemaVersion = "1.0"

// Log messages
const (
	LogMsgPredictionGenerated   = "Prediction generated"
	LogMsgPredictionCacheHit    = "Prediction served from cache"
	LogMsgPredictionInvalidated = "Cached prediction invalidated"
	LogMsgOptionalDataMissing   = "Optional prediction input unavailable"
	LogMsgOptionalDataFailed    = "Failed to load optional prediction input, using default"
	LogMsgWeightsLoaded         = "Factor weights loaded"
)
