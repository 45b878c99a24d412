package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	DBAutoMigrate     bool

	CacheSize               int
	CacheTTL                time.Duration
	HistoryLookbackYears    int
	HistoryFetchConcurrency int
	ImpactWorkers           int

	WeightsPath string
	PresetsPath string
	SchemaDir   string

	MaxBodyBytes    int64
	RateLimit       int
	RateWindow      time.Duration
	TrustedProxies  []string
	ShutdownTimeout time.Duration
}

// Load reads .env (if present) and the environment, then validates the result
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		DBAutoMigrate:     getEnvAsBool("DB_AUTO_MIGRATE", false),

		CacheSize:               getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		CacheTTL:                getEnvAsDuration("CACHE_TTL", DefaultCacheTTL),
		HistoryLookbackYears:    getEnvAsInt("HISTORY_LOOKBACK_YEARS", DefaultHistoryLookbackYears),
		HistoryFetchConcurrency: getEnvAsInt("HISTORY_FETCH_CONCURRENCY", DefaultHistoryFetchConcurrency),
		ImpactWorkers:           getEnvAsInt("IMPACT_WORKERS", DefaultImpactWorkers),

		WeightsPath: getEnv("WEIGHTS_PATH", ConfigPathWeights),
		PresetsPath: getEnv("PRESETS_PATH", ConfigPathPresets),
		SchemaDir:   getEnv("SCHEMA_DIR", ConfigPathSchemas),

		MaxBodyBytes:    int64(getEnvAsInt("MAX_BODY_BYTES", DefaultMaxBodyBytes)),
		RateLimit:       getEnvAsInt("RATE_LIMIT", DefaultRateLimit),
		RateWindow:      getEnvAsDuration("RATE_WINDOW", DefaultRateWindow),
		TrustedProxies:  getEnvAsList("TRUSTED_PROXIES"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every out-of-range setting at once
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Port > 0 && c.Port <= MaxPort, "PORT must be between 1 and %d, got %d", MaxPort, c.Port)
	check(slices.Contains([]string{"debug", "info", "warn", "error"}, c.LogLevel),
		"LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel)
	check(c.LogFormat == "text" || c.LogFormat == "json", "LOG_FORMAT must be text or json, got %q", c.LogFormat)
	check(c.DBHost != "", "DB_HOST must be set")
	check(c.DBName != "", "DB_NAME must be set")
	check(c.DBMaxConns > 0, "DB_MAX_CONNS must be positive, got %d", c.DBMaxConns)
	check(c.CacheSize > 0, "CACHE_SIZE must be positive, got %d", c.CacheSize)
	check(c.CacheTTL > 0, "CACHE_TTL must be positive, got %s", c.CacheTTL)
	check(c.HistoryLookbackYears > 0 && c.HistoryLookbackYears <= MaxHistoryLookbackYears,
		"HISTORY_LOOKBACK_YEARS must be between 1 and %d, got %d", MaxHistoryLookbackYears, c.HistoryLookbackYears)
	check(c.HistoryFetchConcurrency > 0 && c.HistoryFetchConcurrency <= MaxHistoryFetchConcurrency,
		"HISTORY_FETCH_CONCURRENCY must be between 1 and %d, got %d", MaxHistoryFetchConcurrency, c.HistoryFetchConcurrency)
	check(c.ImpactWorkers > 0 && c.ImpactWorkers <= MaxImpactWorkers,
		"IMPACT_WORKERS must be between 1 and %d, got %d", MaxImpactWorkers, c.ImpactWorkers)
	check(c.PresetsPath == "" || c.SchemaDir != "", "SCHEMA_DIR must be set when PRESETS_PATH is")
	check(c.MaxBodyBytes > 0, "MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	check(c.RateLimit > 0, "RATE_LIMIT must be positive, got %d", c.RateLimit)

	return errors.Join(errs...)
}

// WeightsSchemaPath is the JSON schema the weights file is validated against
func (c *Config) WeightsSchemaPath() string {
	return filepath.Join(c.SchemaDir, "weights.schema.json")
}

// PresetsSchemaPath is the JSON schema the presets file is validated against
func (c *Config) PresetsSchemaPath() string {
	return filepath.Join(c.SchemaDir, "presets.schema.json")
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma-separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
