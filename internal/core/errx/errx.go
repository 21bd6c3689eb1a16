package errx

import (
	"errors"
	"fmt"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// RedisNotFoundMessage describes a missing Redis key.
	RedisNotFoundMessage = "redis key not found"
	// ProviderErrorMessage describes model provider failures.
	ProviderErrorMessage = "model provider call failed"
)

// Kind classifies an analysis failure into a small closed set. The user-facing
// alert stays generic per call site; the kind travels alongside for logging and
// machine-readable responses, and marks transport failures as the retryable ones.
type Kind string

const (
	KindNone       Kind = ""
	KindTransport  Kind = "transport"
	KindEmptyReply Kind = "empty_reply"
	KindBadJSON    Kind = "bad_json"
	KindSchema     Kind = "schema_mismatch"
	KindRefusal    Kind = "provider_refusal"
)

// Retryable reports whether a retry without changing the input can succeed.
func (k Kind) Retryable() bool {
	return k == KindTransport
}

// AppError wraps an underlying error with an HTTP status, a safe message and
// an optional failure kind.
type AppError struct {
	Err     error
	Status  int
	Message string
	Kind    Kind
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// NewKind creates an AppError carrying a failure kind.
func NewKind(err error, status int, message string, kind Kind) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
		Kind:    kind,
	}
}

// Is reports whether the target matches the underlying error or the AppError itself.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to AppError or the wrapped error in a chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}

// KindOf extracts the failure kind from an error chain, if any.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindNone
}
