// Package errors defines typed application errors for lesson handlers.
//
// Every failure a handler can produce is classified by Kind so the HTTP
// mapping stays in one place. Handlers convert errors into HTML fragment
// responses at the point of detection; nothing propagates past the handler.
package errors

import (
	stderrors "errors"
	"net/http"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown Kind = "unknown"
	// KindInvalidInput marks a missing or malformed required form field.
	KindInvalidInput Kind = "invalid_input"
	// KindMalformed marks a field that parsed as a form value but carries an
	// unusable payload, surfaced as a plain 400.
	KindMalformed Kind = "malformed"
	// KindPaymentRequired, KindForbidden, and KindConflict are domain
	// rejections: well-formed requests refused by a business rule.
	KindPaymentRequired Kind = "payment_required"
	KindForbidden       Kind = "forbidden"
	KindConflict        Kind = "conflict"
	// KindNotFound marks an absent route target or entity id.
	KindNotFound Kind = "not_found"
	// KindInternal marks a (simulated) server fault.
	KindInternal Kind = "internal"
)

// Error is a typed application failure.
type Error struct {
	Kind    Kind
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// NotFound builds a not-found error.
func NotFound(message string) error {
	return E(KindNotFound, message)
}

// Invalid builds an invalid-input error.
func Invalid(message string) error {
	return E(KindInvalidInput, message)
}

// IsNotFound reports whether err carries KindNotFound.
func IsNotFound(err error) bool {
	var appErr Error
	return stderrors.As(err, &appErr) && appErr.Kind == KindNotFound
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
		return http.StatusUnprocessableEntity
	case KindMalformed:
		return http.StatusBadRequest
	case KindPaymentRequired:
		return http.StatusPaymentRequired
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
