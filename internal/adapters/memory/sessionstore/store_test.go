package sessionstore_test

import (
	"context"
	"sync"
	"testing"

	memsessionstore "github.com/travessias-ma/balsa-client/internal/adapters/memory/sessionstore"
	"github.com/travessias-ma/balsa-client/internal/domain"
)

func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := memsessionstore.NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, domain.Session{Token: "tok", User: domain.User{ID: "1", Email: "a@b.com"}})
			_, _ = store.Token(ctx)
			_, _ = store.Authenticated(ctx)
			_ = store.Clear(ctx)
		}()
	}
	wg.Wait()

	// Whatever interleaving happened, the co-invariant holds: either a
	// full session or nothing.
	ok, err := store.Authenticated(ctx)
	if err != nil {
		t.Fatalf("Authenticated: %v", err)
	}
	tok, err := store.Token(ctx)
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	if ok != (tok != "") {
		t.Fatalf("authenticated=%v but token=%q", ok, tok)
	}
}
