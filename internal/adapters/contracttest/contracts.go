package contracttest

import (
	"context"
	"errors"
	"testing"

	"github.com/travessias-ma/balsa-client/internal/domain"
	sessionstoreport "github.com/travessias-ma/balsa-client/internal/ports/out/sessionstore"
)

type CleanupFunc = func()

type SessionStoreFactory func(t *testing.T) (sessionstoreport.Store, CleanupFunc)

// RunSessionStore exercises the behavior every session store adapter
// must provide, in particular that the token and the authenticated flag
// move together through Save and Clear.
func RunSessionStore(t *testing.T, newStore SessionStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	// Empty store: no session, no token, not authenticated.
	if _, err := store.Load(ctx); !errors.Is(err, sessionstoreport.ErrNoSession) {
		t.Fatalf("Load on empty store: err=%v, want ErrNoSession", err)
	}
	if tok, err := store.Token(ctx); err != nil || tok != "" {
		t.Fatalf("Token on empty store: %q, %v", tok, err)
	}
	if ok, err := store.Authenticated(ctx); err != nil || ok {
		t.Fatalf("Authenticated on empty store: %v, %v", ok, err)
	}

	// Clearing an empty store is a no-op.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear on empty store: %v", err)
	}

	sess := domain.Session{
		Token: "tok-1",
		User:  domain.User{ID: "u-1", Email: "a@b.com", Name: "A"},
	}
	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != sess {
		t.Fatalf("Load=%+v, want %+v", got, sess)
	}
	if tok, err := store.Token(ctx); err != nil || tok != "tok-1" {
		t.Fatalf("Token: %q, %v", tok, err)
	}
	if ok, err := store.Authenticated(ctx); err != nil || !ok {
		t.Fatalf("Authenticated after Save: %v, %v", ok, err)
	}

	// Save overwrites the whole session.
	sess2 := domain.Session{
		Token: "tok-2",
		User:  domain.User{ID: "u-2", Email: "c@d.com", Name: "C"},
	}
	if err := store.Save(ctx, sess2); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}
	if got, err := store.Load(ctx); err != nil || got != sess2 {
		t.Fatalf("Load after overwrite=%+v, %v", got, err)
	}

	// Clear removes token, flag and profile together.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, sessionstoreport.ErrNoSession) {
		t.Fatalf("Load after Clear: err=%v, want ErrNoSession", err)
	}
	if tok, err := store.Token(ctx); err != nil || tok != "" {
		t.Fatalf("Token after Clear: %q, %v", tok, err)
	}
	if ok, err := store.Authenticated(ctx); err != nil || ok {
		t.Fatalf("Authenticated after Clear: %v, %v", ok, err)
	}
}
