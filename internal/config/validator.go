package config

import (
	"errors"
	"fmt"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be non-empty in a deployed environment
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

var examplePasswords = []string{"change_this_secure_password", "postgres"}

// envWarning flags a setting that works but should not ship
type envWarning struct {
	applies func(getenv func(string) string) bool
	message string
}

var envWarnings = []envWarning{
	{
		applies: func(getenv func(string) string) bool {
			pw := getenv("DB_PASSWORD")
			for _, example := range examplePasswords {
				if pw == example {
					return true
				}
			}
			return false
		},
		message: "DB_PASSWORD is an example value; set a real secret",
	},
	{
		applies: func(getenv func(string) string) bool {
			return isProd(getenv) && strings.EqualFold(getenv("DB_AUTO_MIGRATE"), "true")
		},
		message: "DB_AUTO_MIGRATE is enabled in prod; run cmd/migrate as a release step instead",
	},
	{
		applies: func(getenv func(string) string) bool {
			return isProd(getenv) && !strings.EqualFold(getenv("LOG_FORMAT"), "json")
		},
		message: "LOG_FORMAT is not json in prod; log shippers expect structured records",
	},
}

func isProd(getenv func(string) string) bool {
	return getenv("ENVIRONMENT") == "prod"
}

// CheckEnv verifies the schema version and required variables through getenv
// (normally os.Getenv) and returns warnings for risky but valid settings
func CheckEnv(getenv func(string) string) ([]string, error) {
	switch v := getenv("ENV_SCHEMA_VERSION"); {
	case v == "":
		return nil, fmt.Errorf("ENV_SCHEMA_VERSION is not set; add it to .env (expected %s)", ExpectedEnvSchemaVersion)
	case v != ExpectedEnvSchemaVersion:
		return nil, fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s", ExpectedEnvSchemaVersion, v)
	}

	var errs []error
	for _, key := range RequiredEnvVars {
		if getenv(key) == "" {
			errs = append(errs, fmt.Errorf("%s is required", key))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("missing required environment variables:\n%w", err)
	}

	var warnings []string
	for _, w := range envWarnings {
		if w.applies(getenv) {
			warnings = append(warnings, w.message)
		}
	}
	return warnings, nil
}
