package handler

// Result codes carried in the error envelope
const (
	CodeNotFound      = "NOT_FOUND"
	CodeInvalidID     = "INVALID_ID"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeInternalError = "INTERNAL_ERROR"
)

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgGenericServerError    = "Something went wrong"

	ErrMsgPropositionNotFound  = "Proposition not found"
	ErrMsgDistrictNotFound     = "District not found"
	ErrMsgPresetNotFound       = "Scenario preset not found"
	ErrMsgNoData               = "No data recorded for this proposition"
	ErrMsgInvalidPropositionID = "Proposition ID must look like <year>-<number>"
	ErrMsgInvalidInput         = "Invalid input"
)

// Health messages
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	MsgDatabaseDown   = "database connection failed"
)

// Operation names used in logs
const (
	OpGetPrediction    = "Get prediction"
	OpFindSimilar      = "Find similar propositions"
	OpAnalyzeImpact    = "Analyze district impact"
	OpRegionalImpact   = "Analyze regional impact"
	OpDistrictImpact   = "Analyze single district impact"
	OpSimulateScenario = "Simulate scenario"
)
