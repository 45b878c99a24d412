package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgPropositionNotFound = "proposition not found"
	ErrMsgDistrictNotFound    = "district not found"
	ErrMsgInvalidID           = "invalid identifier"
	ErrMsgInvalidInput        = "invalid input"
	ErrMsgPresetNotFound      = "scenario preset not found"
	ErrMsgNoData              = "no data"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Lookup errors
	ErrPropositionNotFound = errors.New(ErrMsgPropositionNotFound)
	ErrDistrictNotFound    = errors.New(ErrMsgDistrictNotFound)
	ErrPresetNotFound      = errors.New(ErrMsgPresetNotFound)

	// Validation errors
	ErrInvalidID    = errors.New(ErrMsgInvalidID)
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrNoData is returned by repositories for optional records that do not exist.
	// Services treat it as partial data, never as a failure.
	ErrNoData = errors.New(ErrMsgNoData)
)
