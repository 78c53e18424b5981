package errors

// ErrorCode is a machine-readable error code. Callers branch on codes,
// not on message text.
type ErrorCode string

// Local errors raised before any network I/O.
const (
	// ErrCodeArgumentEmpty indicates a required string argument was empty
	// or whitespace-only.
	ErrCodeArgumentEmpty ErrorCode = "ARGUMENT_EMPTY"
	// ErrCodeInvalidConfig indicates a configuration value is invalid.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInvalidInput indicates an input value failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Remote/protocol errors.
const (
	// ErrCodeEmptyResponse indicates the server answered 2xx without a body
	// where one was required.
	ErrCodeEmptyResponse ErrorCode = "EMPTY_RESPONSE"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeConflict indicates a conflict with the current resource state.
	ErrCodeConflict ErrorCode = "CONFLICT"
	// ErrCodeConnectionFailed indicates a failed connection to the service.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeExternalService indicates an error reported by the remote service.
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE_ERROR"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConnectionFailed: true,
	ErrCodeTimeout:          true,
	ErrCodeExternalService:  true,
}

// IsRetryableCode returns true if the code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
