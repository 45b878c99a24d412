package config

import "time"

// Configuration file paths
const (
	ConfigPathWeights = "configs/weights.json"
	ConfigPathPresets = "configs/presets.json"
	ConfigPathSchemas = "configs/schemas"
)

// Defaults applied when an environment variable is unset or unparseable
const (
	DefaultPort                    = 8080
	DefaultLogLevel                = "info"
	DefaultLogFormat               = "text"
	DefaultEnvironment             = "dev"
	DefaultServiceName             = "propforecast"
	DefaultVersion                 = "dev"
	DefaultDBName                  = "propforecast"
	DefaultDBMaxConns              = 20
	DefaultDBMaxConnIdleTime       = 5 * time.Minute
	DefaultDBMaxConnLifetime       = 30 * time.Minute
	DefaultCacheSize               = 256
	DefaultCacheTTL                = 10 * time.Minute
	DefaultHistoryLookbackYears    = 20
	DefaultHistoryFetchConcurrency = 4
	DefaultImpactWorkers           = 8
	DefaultMaxBodyBytes            = 1 << 20
	DefaultRateLimit               = 1000
	DefaultRateWindow              = 5 * time.Minute
	DefaultShutdownTimeout         = 10 * time.Second
)

// Validation bounds
const (
	MaxHistoryFetchConcurrency = 4
	MaxHistoryLookbackYears    = 100
	MaxImpactWorkers           = 64
	MaxPort                    = 65535
)
