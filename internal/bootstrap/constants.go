package bootstrap

import "time"

// =============================================================================
// Logger Messages
// =============================================================================

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingApplication = "Starting PropForecast"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// =============================================================================
// Config Load Messages
// =============================================================================

const (
	LogMsgWeightsLoaded        = "Factor weights loaded"
	LogMsgWeightsDefault       = "No weights file configured, using built-in weights"
	LogMsgPresetsLoaded        = "Scenario presets loaded"
	LogMsgPresetsSkipped       = "No presets file configured, preset registry is empty"
	LogMsgEnvValidationWarning = "Environment validation warning"

	ErrMsgFailedLoadWeights = "failed to load factor weights"
	ErrMsgFailedLoadPresets = "failed to load scenario presets"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)

// DefaultShutdownTimeout bounds GracefulShutdown when the caller passes no deadline
const DefaultShutdownTimeout = 10 * time.Second
