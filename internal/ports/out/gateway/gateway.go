package gateway

import (
	"context"
	"net/url"
)

// Gateway is the single entry point to the remote ticketing API.
//
// Implementations attach the stored bearer token to every outgoing
// request (a missing token is not an error; the call proceeds
// unauthenticated), decode the JSON response body into out when out is
// non-nil, and translate every failure into *Error exactly once at this
// boundary. Callers never see raw transport errors.
type Gateway interface {
	Do(ctx context.Context, method, path string, query url.Values, body, out any) error
}
