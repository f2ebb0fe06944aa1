package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a gateway failure. Classification happens once, at
// the gateway boundary; domain services map kinds to user-facing
// messages instead of re-deriving them from transport details.
type Kind string

const (
	// KindServer: a response was received with a non-2xx status.
	KindServer Kind = "SERVER"

	// KindNetwork: the request was sent but no response arrived
	// (connectivity failure or timeout).
	KindNetwork Kind = "NETWORK"

	// KindRequest: the request could not be constructed, or the
	// response body did not match the endpoint's schema.
	KindRequest Kind = "REQUEST"
)

// Error is the gateway failure type.
type Error struct {
	Kind Kind

	// Status is the HTTP status for KindServer, 0 otherwise.
	Status int

	// Message is the server-supplied message for KindServer when the
	// error body carried one; otherwise a short description of the
	// failure.
	Message string

	// Err is the underlying cause, when there is one.
	Err error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case KindServer:
		return fmt.Sprintf("server rejected the request (status %d)", e.Status)
	case KindNetwork:
		return "no response from server"
	default:
		return "request could not be built"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is a gateway error of the given kind.
func IsKind(err error, k Kind) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Kind == k
}

// IsStatus reports whether err is a server rejection with the given
// HTTP status.
func IsStatus(err error, status int) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Kind == KindServer && ge.Status == status
}

// IsSessionExpired reports whether err is the 401 rejection that also
// invalidated the local session as a side effect.
func IsSessionExpired(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}
