package database

import "time"

// Pool tuning applied on top of the configured limits
const (
	DefaultMinConnections = 2
	HealthCheckPeriod     = 30 * time.Second
	ApplicationName       = "propforecast"
)

const (
	ErrMsgFailedToParseConnString     = "failed to parse connection string"
	ErrMsgFailedToCreatePool          = "failed to create connection pool"
	ErrMsgFailedToPingDatabase        = "failed to ping database"
	ErrMsgFailedToLoadMigrations      = "failed to load migrations"
	ErrMsgFailedToApplyMigrations     = "failed to apply migrations"
	ErrMsgFailedToRollbackMigrations  = "failed to roll back migrations"
	ErrMsgFailedToReadMigrationStatus = "failed to read migration status"
)

const (
	LogMsgConnected        = "Connected to forecast database"
	LogMsgMigrationApplied = "Applied migration"
	LogMsgSchemaUpToDate   = "Database schema is up to date"
)
