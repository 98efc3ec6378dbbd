// Package errors defines wrapped typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindUnavailable  Kind = "unavailable"
)

// Error is a typed application failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return string(e.Kind)
	}
	return e.Message
}

// Unwrap exposes the cause.
func (e Error) Unwrap() error {
	return e.Err
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// Wrap builds a typed Error around a cause.
func Wrap(kind Kind, message string, err error) error {
	return Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return KindUnknown
	}
	return appErr.Kind
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
