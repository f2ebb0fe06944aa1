package sessionstore_test

import (
	"testing"

	"github.com/travessias-ma/balsa-client/internal/adapters/contracttest"
	memsessionstore "github.com/travessias-ma/balsa-client/internal/adapters/memory/sessionstore"
	sessionstoreport "github.com/travessias-ma/balsa-client/internal/ports/out/sessionstore"
)

func TestSessionStoreContract(t *testing.T) {
	t.Parallel()
	contracttest.RunSessionStore(t, func(t *testing.T) (sessionstoreport.Store, contracttest.CleanupFunc) {
		return memsessionstore.NewStore(), nil
	})
}
