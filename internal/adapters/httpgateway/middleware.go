package httpgateway

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

// TokenSource yields the bearer token to attach to outgoing requests.
// An empty token means the call proceeds unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// SessionInvalidator clears the local session when the server rejects
// the presented token.
type SessionInvalidator interface {
	Clear(ctx context.Context) error
}

// RequestHook runs before the request is sent. Returning an error
// aborts the call with a request-construction failure.
type RequestHook func(ctx context.Context, req *http.Request) error

// ResponseHook runs after a response is received and before the gateway
// classifies it. The response body has already been consumed; hooks may
// only inspect status and headers.
type ResponseHook func(ctx context.Context, res *http.Response)

// BearerAuth returns the request hook that injects
// "Authorization: Bearer <token>" when the source holds a token.
// A missing token is not an error, and neither is a failing store read:
// the request simply goes out unauthenticated.
func BearerAuth(src TokenSource, log zerolog.Logger) RequestHook {
	return func(ctx context.Context, req *http.Request) error {
		tok, err := src.Token(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("reading token from session store; proceeding unauthenticated")
			return nil
		}
		if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
		return nil
	}
}

// InvalidateOn401 returns the response hook that clears the stored
// session when the server answers 401. The failure is still surfaced to
// the caller afterwards; nothing is retried or swallowed here.
func InvalidateOn401(inv SessionInvalidator, log zerolog.Logger) ResponseHook {
	return func(ctx context.Context, res *http.Response) {
		if res.StatusCode != http.StatusUnauthorized {
			return
		}
		if err := inv.Clear(ctx); err != nil {
			log.Warn().Err(err).Msg("clearing session after 401 rejection")
			return
		}
		log.Debug().Msg("session invalidated after 401 rejection")
	}
}
