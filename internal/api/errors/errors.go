package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	apperrors "audio-review/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindInternal   ErrorKind = "internal"
	KindBadRequest ErrorKind = "bad_request"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{
		Kind:    KindValidation,
		Message: message,
		Details: fields,
	}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{
		Kind:    KindInternal,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{
		Kind:    KindBadRequest,
		Message: message,
	}
}

// FromDomain translates store and source errors into API errors. Storage and
// source failures become a generic internal error; the caller logs the cause.
// ok is false for errors outside the domain taxonomy.
func FromDomain(err error) (apiErr *APIError, ok bool) {
	switch {
	case err == nil:
		return nil, true
	case apperrors.IsValidationError(err):
		return NewValidationError(domainMessage(err), nil), true
	case apperrors.IsNotFound(err):
		return &APIError{Kind: KindNotFound, Message: domainMessage(err)}, true
	case apperrors.IsStorageUnavailable(err),
		stderrors.Is(err, apperrors.ErrAudioSourceUnavailable):
		return NewInternalError("Internal server error"), true
	}
	return nil, false
}

func domainMessage(err error) string {
	var de *apperrors.Error
	if stderrors.As(err, &de) {
		return de.Message()
	}
	return err.Error()
}
