package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a child row references a missing proposition
	PgErrorCodeForeignKeyViolation = "23503"
	// PgErrorCodeCheckViolation is raised when a row fails a CHECK constraint
	PgErrorCodeCheckViolation = "23514"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Proposition Operations
const (
	ErrMsgFailedToGetProposition    = "failed to get proposition"
	ErrMsgFailedToListPropositions  = "failed to list propositions"
	ErrMsgFailedToSaveProposition   = "failed to save proposition"
	ErrMsgPropositionCertified      = "proposition has a certified result and cannot be changed"
	ErrMsgPropositionIDMismatch     = "proposition id does not match year and number"
	ErrMsgFailedToGetFinance        = "failed to get campaign finance"
	ErrMsgFailedToSaveFinance       = "failed to save campaign finance"
	ErrMsgFailedToParseAmount       = "failed to parse amount"
	ErrMsgFailedToGetBallot         = "failed to get ballot analysis"
	ErrMsgFailedToSaveBallot        = "failed to save ballot analysis"
	ErrMsgFailedToGetEndorsements   = "failed to get endorsements"
	ErrMsgFailedToClearEndorsements = "failed to clear endorsements"
	ErrMsgFailedToCopyEndorsements  = "failed to insert endorsements"
)

// Error Messages - District Operations
const (
	ErrMsgFailedToGetDistrict      = "failed to get district"
	ErrMsgFailedToListDistricts    = "failed to list districts"
	ErrMsgFailedToSaveDistrict     = "failed to save district"
	ErrMsgFailedToGetElectorate    = "failed to get electorate profile"
	ErrMsgFailedToSaveElectorate   = "failed to save electorate profile"
	ErrMsgDistrictIDRequired       = "district id is required"
	ErrMsgElectorateYearOutOfRange = "electorate year out of range"
)

// Table and column names used by COPY
const (
	TableEndorsements = "endorsements"
)

var endorsementColumns = []string{"proposition_id", "name", "position", "weight"}
