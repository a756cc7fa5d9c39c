package handler

// User-facing messages. Store failures never expose driver text; only the
// SQLSTATE code is passed through so operators can correlate with logs.
// Both handlers and tests should reference these constants.
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgStoreErrorWithCode  = "Something went wrong, code: %s"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgDatabaseUnavailable = "database connection failed"

	// Query parameter binding
	ErrMsgNotAnInteger = "%s must be an integer, got %q"
	ErrMsgNotPositive  = "%s must be positive, got %d"

	// Field-level validation messages
	ErrMsgFieldRequired = "This field is required"
	ErrMsgFieldMin      = "Must be at least %s"
	ErrMsgFieldSortSpec = "Must be <column>_<ASC|DESC> with column one of id, nombre, precio, categoria, metal, stock"
	ErrMsgFieldInvalid  = "Invalid value"
)

// Log messages
const (
	LogMsgInvalidRequest  = "Invalid request"
	LogMsgOperationFailed = "%s failed"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
