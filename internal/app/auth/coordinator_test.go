package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	memgateway "github.com/travessias-ma/balsa-client/internal/adapters/memory/gateway"
	memsessionstore "github.com/travessias-ma/balsa-client/internal/adapters/memory/sessionstore"
	"github.com/travessias-ma/balsa-client/internal/domain"
	gatewayport "github.com/travessias-ma/balsa-client/internal/ports/out/gateway"
	sessionstoreport "github.com/travessias-ma/balsa-client/internal/ports/out/sessionstore"
)

// clearFailingStore wraps the memory store with a Clear that always
// fails, to exercise best-effort logout.
type clearFailingStore struct {
	sessionstoreport.Store
}

var errDisk = errors.New("disk full")

func (s clearFailingStore) Clear(ctx context.Context) error { return errDisk }

func TestCoordinator_StartsUnknownUntilFirstRefresh(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := memsessionstore.NewStore()
	c := NewCoordinator(NewService(memgateway.NewGateway(), store, zerolog.Nop()))

	if got := c.State(); got != StateUnknown {
		t.Fatalf("initial state=%q, want UNKNOWN", got)
	}
	if _, ok := c.User(); ok {
		t.Fatalf("User() available while UNKNOWN")
	}

	if got := c.Refresh(ctx); got != StateUnauthenticated {
		t.Fatalf("Refresh on empty store=%q, want UNAUTHENTICATED", got)
	}
}

func TestCoordinator_ResolvesStoredSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := memsessionstore.NewStore()
	sess := domain.Session{Token: "tok", User: domain.User{ID: "1", Email: "a@b.com", Name: "A"}}
	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	c := NewCoordinator(NewService(memgateway.NewGateway(), store, zerolog.Nop()))
	if got := c.Refresh(ctx); got != StateAuthenticated {
		t.Fatalf("Refresh=%q, want AUTHENTICATED", got)
	}
	if user, ok := c.User(); !ok || user != sess.User {
		t.Fatalf("User()=%+v, %v", user, ok)
	}
}

func TestCoordinator_LoginTransitions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	gw := memgateway.NewGateway()
	gw.Respond = func(c memgateway.Call) (any, error) {
		return map[string]any{
			"token":   "tok",
			"userDto": map[string]any{"id": "1", "email": "a@b.com", "name": "A"},
		}, nil
	}
	store := memsessionstore.NewStore()
	c := NewCoordinator(NewService(gw, store, zerolog.Nop()))

	if _, err := c.Login(ctx, domain.Credentials{Email: "a@b.com", Password: "secret1"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got := c.State(); got != StateAuthenticated {
		t.Fatalf("state after login=%q", got)
	}

	// Failed login settles on Unauthenticated and propagates the mapped
	// message unchanged.
	gw.Respond = func(memgateway.Call) (any, error) {
		return nil, &gatewayport.Error{Kind: gatewayport.KindServer, Status: 400, Message: "invalid credentials"}
	}
	_, err := c.Login(ctx, domain.Credentials{Email: "a@b.com", Password: "wrongpw"})
	if err == nil || err.Error() != "invalid credentials" {
		t.Fatalf("err=%v, want the server message unchanged", err)
	}
	if got := c.State(); got != StateUnauthenticated {
		t.Fatalf("state after failed login=%q", got)
	}
}

func TestCoordinator_LogoutIsBestEffort(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	mem := memsessionstore.NewStore()
	if err := mem.Save(ctx, domain.Session{Token: "tok", User: domain.User{ID: "1", Email: "a@b.com"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	c := NewCoordinator(NewService(memgateway.NewGateway(), clearFailingStore{mem}, zerolog.Nop()))
	if got := c.Refresh(ctx); got != StateAuthenticated {
		t.Fatalf("Refresh=%q", got)
	}

	// Clearing the store fails: the error propagates, but the in-memory
	// state still flips. Local state is authoritative for navigation.
	err := c.Logout(ctx)
	if !errors.Is(err, errDisk) {
		t.Fatalf("Logout err=%v, want the store failure", err)
	}
	if got := c.State(); got != StateUnauthenticated {
		t.Fatalf("state after failed logout=%q, want UNAUTHENTICATED", got)
	}
}

func TestCoordinator_Observes401Invalidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := memsessionstore.NewStore()
	if err := store.Save(ctx, domain.Session{Token: "tok", User: domain.User{ID: "1", Email: "a@b.com"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	c := NewCoordinator(NewService(memgateway.NewGateway(), store, zerolog.Nop()))
	if !c.IsAuthenticated(ctx) {
		t.Fatalf("expected authenticated before invalidation")
	}

	// The gateway's 401 hook clears the store out of band. The
	// coordinator picks it up on the next poll, without any push.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if c.IsAuthenticated(ctx) {
		t.Fatalf("coordinator missed the out-of-band invalidation")
	}
	if got := c.State(); got != StateUnauthenticated {
		t.Fatalf("state=%q", got)
	}
}
