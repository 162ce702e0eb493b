// Package apperr defines the error variant shared by the validation, data
// access and HTTP layers.
//
// Every failure is classified once, at the point where it happens, into one
// of four kinds. The HTTP layer never inspects error text or driver types; it
// switches on Kind only.
//
//   - KindValidation: malformed input (shape, type, allow-list) → 400
//   - KindNotFound:   referenced entity absent or unknown route → 404
//   - KindStore:      constraint / data exception raised by the store → 400
//   - KindUnexpected: anything else → 500 (logged, never exposed)
package apperr

import (
	"errors"
	"net/http"
)

// Kind discriminates the error variants.
type Kind uint8

const (
	KindUnexpected Kind = iota
	KindValidation
	KindNotFound
	KindStore
)

// String returns a stable, lowercase label suitable for logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStore:
		return "store"
	default:
		return "unexpected"
	}
}

// Client-facing messages.
const (
	MsgBadRequest = "Bad request"
	MsgNotFound   = "Not found"
	MsgInternal   = "Internal server error"
)

// Error is the tagged error carried through every layer.
//
// Code is only set for KindStore (the driver's SQLSTATE or constraint label)
// and is never sent to clients. Cause is kept for server-side logging.
type Error struct {
	Kind   Kind
	Status int
	Msg    string
	Code   string
	Cause  error
}

// Error returns the client-safe message, followed by the cause when present.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// Validation builds a 400 error with the given message.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Msg: msg}
}

// BadRequest is Validation with the canonical message.
func BadRequest() *Error { return Validation(MsgBadRequest) }

// NotFound builds the canonical 404 error.
func NotFound() *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Msg: MsgNotFound}
}

// Store wraps a low-level store failure carrying a constraint or data
// exception code.
func Store(code string, cause error) *Error {
	return &Error{Kind: KindStore, Status: http.StatusBadRequest, Msg: MsgBadRequest, Code: code, Cause: cause}
}

// Unexpected wraps any failure that has no better classification.
func Unexpected(cause error) *Error {
	return &Error{Kind: KindUnexpected, Status: http.StatusInternalServerError, Msg: MsgInternal, Cause: cause}
}

// As reports whether err (or anything it wraps) is an *Error.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the Kind of err, or KindUnexpected for untagged errors.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindUnexpected
}

// IsNotFound reports whether err is tagged KindNotFound.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
