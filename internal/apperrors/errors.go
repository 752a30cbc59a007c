// Package apperrors defines the typed errors the domain services raise and
// the JSON envelope every error surfaces as at the HTTP boundary.
package apperrors

import (
	"errors"
	"net/http"
	"time"
)

// Kind classifies a domain error so the HTTP boundary can map it to a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindAlreadyExists
	KindBadRequest
	KindForbidden
	KindUnauthenticated
)

// Error is a domain error carrying a kind, a client-safe message and an
// optional field -> message map for validation failures.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound creates a not-found error
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// AlreadyExists creates a duplicate-resource error
func AlreadyExists(message string) *Error {
	return &Error{Kind: KindAlreadyExists, Message: message}
}

// BadRequest creates an invalid-request error
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// Validation creates an invalid-request error with per-field messages
func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindBadRequest, Message: message, Fields: fields}
}

// Forbidden creates an ownership/role violation error
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Unauthenticated creates an authentication failure error
func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

// KindOf returns the kind of err, unwrapping as needed.
// Errors that are not *Error are classified as internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// FieldsOf returns the validation field map of err, or nil.
func FieldsOf(err error) map[string]string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}

// HTTPStatus maps an error kind to its HTTP status code
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindAlreadyExists:
		return http.StatusConflict
	case KindBadRequest:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Response is the uniform error envelope returned by every failed request
type Response struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Path      string            `json:"path"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// NewResponse builds the envelope for err on the given request path.
// Internal errors get a generic message so details never leak to clients.
func NewResponse(err error, path string) *Response {
	kind := KindOf(err)
	status := HTTPStatus(kind)

	message := err.Error()
	if kind == KindInternal {
		message = "an unexpected error occurred"
	}

	return &Response{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      path,
		Errors:    FieldsOf(err),
	}
}
