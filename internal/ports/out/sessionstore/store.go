package sessionstore

import (
	"context"

	"github.com/travessias-ma/balsa-client/internal/domain"
)

// Store persists the authenticated session between runs.
//
// The stored state is three entries (auth token, authenticated flag,
// cached user profile), kept layout-compatible with the mobile client's
// key-value storage. The interface deliberately has no per-entry
// setters: Save and Clear write all entries together, so the token and
// the authenticated flag can never be written apart.
type Store interface {
	// Load returns the stored session. It returns ErrNoSession when no
	// complete, consistent session is stored; a token without the
	// authenticated flag (or the reverse) reads as no session.
	Load(ctx context.Context) (domain.Session, error)

	// Token returns the stored auth token, or "" when none is stored.
	// Absence is not an error: unauthenticated requests are legal.
	Token(ctx context.Context) (string, error)

	// Authenticated reports whether both a non-empty token and the
	// authenticated flag are present.
	Authenticated(ctx context.Context) (bool, error)

	// Save stores the session and sets the authenticated flag in the
	// same write.
	Save(ctx context.Context, s domain.Session) error

	// Clear removes the token, the flag and the cached profile.
	// Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
