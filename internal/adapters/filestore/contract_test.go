package filestore_test

import (
	"path/filepath"
	"testing"

	"github.com/travessias-ma/balsa-client/internal/adapters/contracttest"
	"github.com/travessias-ma/balsa-client/internal/adapters/filestore"
	sessionstoreport "github.com/travessias-ma/balsa-client/internal/ports/out/sessionstore"
)

func TestSessionStoreContract(t *testing.T) {
	t.Parallel()
	contracttest.RunSessionStore(t, func(t *testing.T) (sessionstoreport.Store, contracttest.CleanupFunc) {
		return filestore.New(filepath.Join(t.TempDir(), "session.json")), nil
	})
}
