// Package errors provides the structured error model shared across the
// SDK. Errors carry a machine-readable code, an optional details map,
// and an optional wrapped cause.
package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified SDK error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error, if any.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// CodeOf returns the error code of err, or ErrCodeInternal if err is not
// an AppError.
func CodeOf(err error) ErrorCode {
	var e *AppError
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// IsCode checks whether err is an AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *AppError
	return stderrors.As(err, &e) && e.Code == code
}

// IsRetryable checks whether err is a retryable AppError.
func IsRetryable(err error) bool {
	var e *AppError
	return stderrors.As(err, &e) && e.Retryable
}

// --- Common Error Constructors ---

// ArgumentEmpty creates an error for a required argument that was empty
// or whitespace-only. The argument name is kept in the details map.
func ArgumentEmpty(argument string) *AppError {
	return &AppError{
		Code:    ErrCodeArgumentEmpty,
		Message: fmt.Sprintf("argument %q is empty or whitespace", argument),
		Details: map[string]any{"argument": argument},
	}
}

// EmptyResponse creates an error for a 2xx response with no body where
// one was required.
func EmptyResponse() *AppError {
	return &AppError{
		Code:    ErrCodeEmptyResponse,
		Message: "service returned an empty response",
	}
}

// InvalidConfig creates an error for an invalid configuration.
func InvalidConfig(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConfig,
		Message: reason,
	}
}

// InvalidInput creates an error for invalid input.
func InvalidInput(field, reason string) *AppError {
	e := &AppError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("invalid input: %s", reason),
	}
	if field != "" {
		e = e.WithDetail("field", field)
	}
	return e
}

// Validation creates an error for a failed validation with a prebuilt message.
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}

// NotFound creates an error for a resource that was not found.
func NotFound(resource, id string) *AppError {
	e := &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Details: map[string]any{"resource": resource},
	}
	if id != "" {
		e.Details["id"] = id
	}
	return e
}

// Conflict creates an error for a conflict with current resource state.
func Conflict(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeConflict,
		Message: reason,
	}
}

// ConnectionFailed creates an error for a failed connection to a service.
func ConnectionFailed(service string, cause error) *AppError {
	return &AppError{
		Code:      ErrCodeConnectionFailed,
		Message:   fmt.Sprintf("unable to connect to %s", service),
		Retryable: true,
		Cause:     cause,
	}
}

// Timeout creates an error for an operation that timed out.
func Timeout(operation string) *AppError {
	return &AppError{
		Code:      ErrCodeTimeout,
		Message:   fmt.Sprintf("%s timed out", operation),
		Retryable: true,
		Details:   map[string]any{"operation": operation},
	}
}

// ExternalService creates an error for a failure reported by a remote service.
func ExternalService(service string, cause error) *AppError {
	return &AppError{
		Code:      ErrCodeExternalService,
		Message:   fmt.Sprintf("the %s service reported an error", service),
		Retryable: true,
		Details:   map[string]any{"service": service},
		Cause:     cause,
	}
}

// Internal creates an error for an unexpected internal failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "an unexpected error occurred",
		Cause:   cause,
	}
}
