package trips

import (
	"context"
	"testing"
	"time"

	"github.com/oapi-codegen/runtime/types"
	"github.com/rs/zerolog"

	memgateway "github.com/travessias-ma/balsa-client/internal/adapters/memory/gateway"
	"github.com/travessias-ma/balsa-client/internal/app/apperr"
	"github.com/travessias-ma/balsa-client/internal/domain"
	gatewayport "github.com/travessias-ma/balsa-client/internal/ports/out/gateway"
)

func date(y int, m time.Month, d int) types.Date {
	return types.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func tripJSON(id string, humanCount, vehicleCount int) map[string]any {
	return map[string]any{
		"id":                   id,
		"from":                 "Ponta da Espera",
		"to":                   "Cujupe",
		"tripDate":             "2026-03-14T07:30:00Z",
		"humanCapacity":        100,
		"vehicleCapacity":      30,
		"humanCapacityCount":   humanCount,
		"vehicleCapacityCount": vehicleCount,
		"tripStatus":           "SCHEDULED",
		"price":                20.0,
	}
}

func TestService_TripsByDate_FiltersSoldOut(t *testing.T) {
	t.Parallel()

	gw := memgateway.NewGateway()
	gw.Respond = func(c memgateway.Call) (any, error) {
		if c.Method != "GET" || c.Path != "/trip/date" {
			t.Fatalf("unexpected call %s %s", c.Method, c.Path)
		}
		if got := c.Query.Get("date"); got != "2026-03-14" {
			t.Fatalf("date=%q", got)
		}
		if c.Query.Has("from") {
			t.Fatalf("from sent without a terminal filter")
		}
		return []any{
			tripJSON("open", 40, 10),
			tripJSON("humans-full", 100, 10),
			tripJSON("vehicles-full", 40, 30),
		}, nil
	}

	svc := NewService(gw, zerolog.Nop())
	got, err := svc.TripsByDate(context.Background(), date(2026, 3, 14), nil)
	if err != nil {
		t.Fatalf("TripsByDate: %v", err)
	}
	if len(got) != 1 || got[0].ID != "open" {
		t.Fatalf("trips=%+v, want only the open one", got)
	}
	for _, tr := range got {
		if !tr.Available() {
			t.Fatalf("sold-out trip %q returned", tr.ID)
		}
	}
}

func TestService_TripsByDate_UsesFromEndpointWhenFiltered(t *testing.T) {
	t.Parallel()

	gw := memgateway.NewGateway()
	gw.Respond = func(c memgateway.Call) (any, error) {
		if c.Path != "/trip/date/from" {
			t.Fatalf("path=%q, want /trip/date/from", c.Path)
		}
		if got := c.Query.Get("from"); got != "Cujupe" {
			t.Fatalf("from=%q", got)
		}
		return []any{}, nil
	}

	svc := NewService(gw, zerolog.Nop())
	from := domain.TerminalCujupe
	if _, err := svc.TripsByDate(context.Background(), date(2026, 3, 14), &from); err != nil {
		t.Fatalf("TripsByDate: %v", err)
	}
}

func TestService_TripsByDate_RejectsUnknownTerminal(t *testing.T) {
	t.Parallel()

	gw := memgateway.NewGateway()
	svc := NewService(gw, zerolog.Nop())

	bogus := domain.Terminal("Itaqui")
	if _, err := svc.TripsByDate(context.Background(), date(2026, 3, 14), &bogus); !apperr.IsCode(err, apperr.CodeValidation) {
		t.Fatalf("err=%v, want validation error", err)
	}
	if calls := gw.Calls(); len(calls) != 0 {
		t.Fatalf("invalid terminal still hit the network")
	}
}

func TestService_ReturnTrips_QueriesOppositeTerminal(t *testing.T) {
	t.Parallel()

	for _, outbound := range domain.Terminals() {
		gw := memgateway.NewGateway()
		gw.Respond = func(c memgateway.Call) (any, error) {
			if got := c.Query.Get("from"); got != string(outbound.Opposite()) {
				t.Fatalf("outbound %q: return queried from=%q, want %q", outbound, got, outbound.Opposite())
			}
			return []any{}, nil
		}
		svc := NewService(gw, zerolog.Nop())
		if _, err := svc.ReturnTrips(context.Background(), date(2026, 3, 15), outbound); err != nil {
			t.Fatalf("ReturnTrips: %v", err)
		}
	}
}

func TestService_TripsByDate_MapsGatewayFailures(t *testing.T) {
	t.Parallel()

	gw := memgateway.NewGateway()
	gw.Respond = func(memgateway.Call) (any, error) {
		return nil, &gatewayport.Error{Kind: gatewayport.KindNetwork}
	}
	svc := NewService(gw, zerolog.Nop())

	_, err := svc.TripsByDate(context.Background(), date(2026, 3, 14), nil)
	if !apperr.IsCode(err, apperr.CodeNetwork) || err.Error() != apperr.MsgConnection {
		t.Fatalf("err=%v, want the fixed connection message", err)
	}
}
