// Package apperror classifies failures so the HTTP boundary can map them to a
// status code and a client-safe message.
package apperror

import (
	"errors"
	"net/http"
)

// Kind identifies an error category.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConfiguration
	KindUpstream
	KindDelivery
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	case KindUpstream:
		return "upstream"
	case KindDelivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// HTTPStatus maps the kind to the response status.
func (k Kind) HTTPStatus() int {
	if k == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Error carries a message that is safe to show to clients and the underlying
// cause, which is only logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String() + ": " + e.Message
	}
	return e.Kind.String() + ": " + e.Message + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports a malformed or missing request field.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Configuration reports missing credentials for an external service.
func Configuration(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

// Upstream reports a failed or unusable completion-provider call.
func Upstream(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// Delivery reports a mail transport rejection.
func Delivery(message string, err error) *Error {
	return &Error{Kind: KindDelivery, Message: message, Err: err}
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindUnknown
}
