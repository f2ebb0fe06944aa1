package httpgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	gatewayport "github.com/travessias-ma/balsa-client/internal/ports/out/gateway"
)

const defaultTimeout = 10 * time.Second

// Gateway is the net/http implementation of the gateway port: one
// configured transport with composable request/response hooks for token
// injection and 401 session invalidation.
type Gateway struct {
	base   *url.URL
	client *http.Client

	requestHooks  []RequestHook
	responseHooks []ResponseHook

	log zerolog.Logger
}

// Options configures the gateway. The zero value is usable for tests
// against a plain httptest server.
type Options struct {
	// Timeout bounds each request end to end. Defaults to 10s.
	Timeout time.Duration

	RequestHooks  []RequestHook
	ResponseHooks []ResponseHook

	Logger zerolog.Logger

	// HTTPClient overrides the built client (and Timeout) when set.
	HTTPClient *http.Client
}

func New(baseURL string, opts Options) (*Gateway, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", baseURL)
	}

	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &Gateway{
		base:          base,
		client:        client,
		requestHooks:  opts.RequestHooks,
		responseHooks: opts.ResponseHooks,
		log:           opts.Logger,
	}, nil
}

func (g *Gateway) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := g.base.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &gatewayport.Error{Kind: gatewayport.KindRequest, Message: "request body could not be encoded", Err: err}
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return &gatewayport.Error{Kind: gatewayport.KindRequest, Message: "request could not be built", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, hook := range g.requestHooks {
		if err := hook(ctx, req); err != nil {
			return &gatewayport.Error{Kind: gatewayport.KindRequest, Message: "request could not be prepared", Err: err}
		}
	}

	start := time.Now()
	res, err := g.client.Do(req)
	if err != nil {
		g.log.Debug().Str("method", method).Str("path", path).Err(err).Msg("request failed without a response")
		return &gatewayport.Error{Kind: gatewayport.KindNetwork, Err: err}
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return &gatewayport.Error{Kind: gatewayport.KindNetwork, Message: "response could not be read", Err: err}
	}

	// Response hooks run before classification so side effects (the 401
	// session clear) happen even though the failure is still returned.
	for _, hook := range g.responseHooks {
		hook(ctx, res)
	}

	g.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", res.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &gatewayport.Error{
			Kind:    gatewayport.KindServer,
			Status:  res.StatusCode,
			Message: serverMessage(resBody),
		}
	}

	if out != nil && len(resBody) > 0 {
		if err := json.Unmarshal(resBody, out); err != nil {
			return &gatewayport.Error{Kind: gatewayport.KindRequest, Message: "response body did not match the expected shape", Err: err}
		}
	}
	return nil
}

// serverMessage pulls the human-readable message out of an error body
// when the server supplied one. Both flat {"message": ...} bodies and
// enveloped {"error": {"message": ...}} bodies are probed; anything
// else yields "" and the caller's per-operation fallback applies.
func serverMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	if m := gjson.GetBytes(body, "message"); m.Type == gjson.String {
		return m.String()
	}
	if m := gjson.GetBytes(body, "error.message"); m.Type == gjson.String {
		return m.String()
	}
	return ""
}
