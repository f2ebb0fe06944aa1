package apperr

import (
	"errors"

	"github.com/travessias-ma/balsa-client/internal/ports/out/gateway"
)

// Codes identify the error class for callers that branch on it (tests,
// exit codes). Presentation shows Message only.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeServer         = "SERVER_ERROR"
	CodeNetwork        = "NETWORK_ERROR"
	CodeSessionExpired = "SESSION_EXPIRED"
	CodeStorage        = "STORAGE_ERROR"
)

// MsgConnection is the fixed message for connectivity failures; it is
// never replaced by per-operation text.
const MsgConnection = "connection error: check your internet connection"

// Error is an application-layer error carrying exactly one user-facing
// message. Domain services produce it from gateway failures or
// validation; presentation displays Message and offers a manual retry,
// never inspecting internals.
type Error struct {
	Code    string
	Message string
	err     error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.err }

// New builds a plain application error.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches an underlying cause for logs without leaking it into
// the message.
func Wrap(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, err: err}
}

// Validation is shorthand for a pre-submission field check failure.
func Validation(message string) *Error {
	return New(CodeValidation, message)
}

// FromGateway maps a gateway failure to a single user-facing message:
// the fixed connection message for network failures, the
// server-supplied message verbatim when present, and the caller's
// per-operation fallback otherwise.
func FromGateway(err error, fallback string) *Error {
	var ge *gateway.Error
	if !errors.As(err, &ge) {
		return Wrap(CodeServer, fallback, err)
	}
	switch {
	case ge.Kind == gateway.KindNetwork:
		return Wrap(CodeNetwork, MsgConnection, err)
	case gateway.IsSessionExpired(err):
		return Wrap(CodeSessionExpired, "your session expired, sign in again", err)
	case ge.Kind == gateway.KindServer && ge.Message != "":
		return Wrap(CodeServer, ge.Message, err)
	default:
		return Wrap(CodeServer, fallback, err)
	}
}

// IsCode reports whether err is an application error with the given
// code.
func IsCode(err error, code string) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == code
}
