package errors

import (
	stderrors "errors"
	"fmt"
)

// Error kinds. Every error produced by the store, the aggregator and the
// importer carries one of these so callers can branch with errors.Is.
var (
	// ErrInvalidInput marks missing or malformed input fields.
	ErrInvalidInput = New("invalid input")
	// ErrNotFound marks an operation that targets a nonexistent record.
	ErrNotFound = New("not found")
	// ErrStorageUnavailable marks connection and query failures.
	ErrStorageUnavailable = New("storage unavailable")
	// ErrAudioSourceUnavailable marks failures listing audio files.
	ErrAudioSourceUnavailable = New("audio source unavailable")
	// ErrBatchUnreadable marks a batch file that cannot be read or parsed as a whole.
	ErrBatchUnreadable = New("batch file unreadable")
)

// Error represents a standardized error
type Error struct {
	message string
	kind    *Error
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

func withKind(kind *Error, cause error, format string, args ...interface{}) *Error {
	return &Error{
		message: fmt.Sprintf(format, args...),
		kind:    kind,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Message returns the error text without the wrapped cause.
func (e *Error) Message() string {
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is the kind of e. Errors are otherwise matched by
// identity only.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind != nil && e.kind == t
}

// RequiredField returns an error for missing required fields
func RequiredField(field string) error {
	return withKind(ErrInvalidInput, nil, "%s is required", field)
}

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return withKind(ErrInvalidInput, nil, "%s is invalid: %s", field, reason)
}

// OutOfRange returns an error for values outside acceptable range
func OutOfRange(field string, min, max interface{}) error {
	return withKind(ErrInvalidInput, nil, "%s out of range (must be between %v and %v)", field, min, max)
}

// NotFound returns an error for items that were not found
func NotFound(itemType string, identifier interface{}) error {
	return withKind(ErrNotFound, nil, "%s not found: %v", itemType, identifier)
}

// Unavailable wraps a driver or connection failure for the named operation.
func Unavailable(err error, operation string) error {
	if err == nil {
		return nil
	}
	return withKind(ErrStorageUnavailable, err, "%s failed", operation)
}

// SourceUnavailable wraps a failure listing audio files.
func SourceUnavailable(err error, location string) error {
	if err == nil {
		return nil
	}
	return withKind(ErrAudioSourceUnavailable, err, "list audio files in %s", location)
}

// Unreadable wraps a failure reading or decoding a whole batch file.
func Unreadable(err error, path string) error {
	return withKind(ErrBatchUnreadable, err, "read batch file %s", path)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return stderrors.Is(err, ErrInvalidInput)
}

// IsNotFound checks if an error reports a missing record
func IsNotFound(err error) bool {
	return stderrors.Is(err, ErrNotFound)
}

// IsStorageUnavailable checks if an error comes from the storage layer
func IsStorageUnavailable(err error) bool {
	return stderrors.Is(err, ErrStorageUnavailable)
}
