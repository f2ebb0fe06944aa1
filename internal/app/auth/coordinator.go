package auth

import (
	"context"
	"sync"

	"github.com/travessias-ma/balsa-client/internal/domain"
)

// State is the coordinator's view of the session.
type State string

const (
	// StateUnknown holds between process start and the first store
	// read. Navigation must not redirect while Unknown; otherwise the
	// rider flashes through the login screen before the stored session
	// has been checked.
	StateUnknown State = "UNKNOWN"

	StateAuthenticated   State = "AUTHENTICATED"
	StateUnauthenticated State = "UNAUTHENTICATED"
)

// Coordinator owns the process-wide authentication state. The stored
// session is read on Refresh, so a gateway-triggered 401 invalidation
// is observed on the next poll; there is no push-based notification.
type Coordinator struct {
	svc *Service

	mu    sync.Mutex
	state State
	user  domain.User
}

func NewCoordinator(svc *Service) *Coordinator {
	return &Coordinator{svc: svc, state: StateUnknown}
}

// State returns the current state without touching the store.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Refresh re-reads the session store and returns the resulting state.
// The first call resolves StateUnknown.
func (c *Coordinator) Refresh(ctx context.Context) State {
	sess, err := c.svc.store.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateUnauthenticated
		c.user = domain.User{}
	} else {
		c.state = StateAuthenticated
		c.user = sess.User
	}
	return c.state
}

// IsAuthenticated polls the store and reports whether a session is
// present.
func (c *Coordinator) IsAuthenticated(ctx context.Context) bool {
	return c.Refresh(ctx) == StateAuthenticated
}

// Login delegates to the auth service and flips to Authenticated on
// success. On failure the error propagates unchanged and the state
// settles on Unauthenticated.
func (c *Coordinator) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	sess, err := c.svc.Login(ctx, creds)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateUnauthenticated
		return domain.Session{}, err
	}
	c.state = StateAuthenticated
	c.user = sess.User
	return sess, nil
}

// Logout clears the stored session. The in-memory state flips to
// Unauthenticated even when clearing the store fails: local state is
// client-authoritative for navigation, and the store catches up on the
// next successful clear.
func (c *Coordinator) Logout(ctx context.Context) error {
	err := c.svc.Logout(ctx)

	c.mu.Lock()
	c.state = StateUnauthenticated
	c.user = domain.User{}
	c.mu.Unlock()

	return err
}

// Register creates an account. Pure pass-through: registration never
// signs the rider in, so no state changes here.
func (c *Coordinator) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	return c.svc.Register(ctx, reg)
}

// User returns the profile of the authenticated session, if any.
func (c *Coordinator) User() (domain.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateAuthenticated {
		return domain.User{}, false
	}
	return c.user, true
}
