package itest

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/travessias-ma/balsa-client/internal/adapters/filestore"
	"github.com/travessias-ma/balsa-client/internal/adapters/httpgateway"
	memclock "github.com/travessias-ma/balsa-client/internal/adapters/memory/clock"
	"github.com/travessias-ma/balsa-client/internal/adapters/stubapi"
	"github.com/travessias-ma/balsa-client/internal/app/auth"
	"github.com/travessias-ma/balsa-client/internal/app/cartypes"
	"github.com/travessias-ma/balsa-client/internal/app/tickets"
	"github.com/travessias-ma/balsa-client/internal/app/trips"
)

// harness wires the full client stack against an in-process stub
// backend: file session store, HTTP gateway with auth hooks, services
// and the session coordinator. Exactly the graph the CLI builds.
type harness struct {
	server *stubapi.Server
	clk    *memclock.ManualClock
	store  *filestore.Store

	auth     *auth.Coordinator
	trips    *trips.Service
	carTypes *cartypes.Service
	tickets  *tickets.Service
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	clk := memclock.NewManualClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	server := stubapi.NewServer(clk, zerolog.Nop())

	srv := httptest.NewServer(server.Router())
	t.Cleanup(srv.Close)

	store := filestore.New(filepath.Join(t.TempDir(), "session.json"))

	gw, err := httpgateway.New(srv.URL, httpgateway.Options{
		RequestHooks:  []httpgateway.RequestHook{httpgateway.BearerAuth(store, zerolog.Nop())},
		ResponseHooks: []httpgateway.ResponseHook{httpgateway.InvalidateOn401(store, zerolog.Nop())},
	})
	if err != nil {
		t.Fatalf("gateway: %v", err)
	}

	authSvc := auth.NewService(gw, store, zerolog.Nop())
	carTypeSvc := cartypes.NewService(gw, zerolog.Nop())

	return &harness{
		server:   server,
		clk:      clk,
		store:    store,
		auth:     auth.NewCoordinator(authSvc),
		trips:    trips.NewService(gw, zerolog.Nop()),
		carTypes: carTypeSvc,
		tickets:  tickets.NewService(gw, carTypeSvc, zerolog.Nop()),
	}
}
