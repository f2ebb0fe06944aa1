package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	gatewayport "github.com/travessias-ma/balsa-client/internal/ports/out/gateway"
)

// Call records one request issued through the fake gateway.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Gateway is a scripted in-memory implementation of gateway.Gateway for
// service tests. Respond receives each call and returns the value to be
// marshaled into the caller's out parameter, or an error to surface.
type Gateway struct {
	mu      sync.Mutex
	calls   []Call
	Respond func(c Call) (any, error)
}

func NewGateway() *Gateway {
	return &Gateway{}
}

func (g *Gateway) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	_ = ctx
	call := Call{Method: method, Path: path, Query: query, Body: body}

	g.mu.Lock()
	g.calls = append(g.calls, call)
	respond := g.Respond
	g.mu.Unlock()

	if respond == nil {
		return nil
	}
	v, err := respond(call)
	if err != nil {
		return err
	}
	if out == nil || v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("scripted response is not marshalable: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return &gatewayport.Error{Kind: gatewayport.KindRequest, Message: "response body did not match the expected shape", Err: err}
	}
	return nil
}

// Calls returns the calls recorded so far.
func (g *Gateway) Calls() []Call {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Call, len(g.calls))
	copy(out, g.calls)
	return out
}

// LastCall returns the most recent call, or false when none were made.
func (g *Gateway) LastCall() (Call, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.calls) == 0 {
		return Call{}, false
	}
	return g.calls[len(g.calls)-1], true
}
