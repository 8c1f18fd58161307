// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package api is the client's session and request pipeline. Every call to
// the araçtakip REST API goes through Client: it attaches the bearer
// credential, enforces the request deadline, retries idempotent reads once,
// classifies failures into the FailureKind taxonomy and observes session
// expiry. Screens never see a raw *http.Response.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/aractakip/aractakip/internal/i18n"
	"github.com/aractakip/aractakip/internal/logging"
)

// DefaultBaseURL is the local development endpoint.
const DefaultBaseURL = "http://localhost:8000/api/v1"

// requestTimeout is the fixed deadline after which a call counts as
// unreachable.
const requestTimeout = 10 * time.Second

// Client issues typed requests against the REST API.
type Client struct {
	baseURL    string
	http       *http.Client
	session    SessionStore
	retryReads bool

	// expired debounces the auth-expired side effect: it is armed once per
	// authenticated session and re-armed by the next successful login, so
	// concurrent 401s trigger the callback exactly once.
	expired       atomic.Bool
	onAuthExpired func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithoutReadRetry disables the single built-in retry of idempotent reads.
func WithoutReadRetry() Option {
	return func(c *Client) { c.retryReads = false }
}

// New creates a Client for baseURL. Session state is read from and written
// to store; store is the pipeline's only side channel.
func New(baseURL string, store SessionStore, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       &http.Client{Timeout: requestTimeout},
		session:    store,
		retryReads: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnAuthExpired registers the callback fired when a call observes session
// expiry. The host subscribes once and performs navigation; the pipeline
// itself knows nothing about screens.
func (c *Client) OnAuthExpired(fn func()) {
	c.onAuthExpired = fn
}

// IsAuthenticated reports whether a credential is present in storage. No
// local expiry check is made; expiry is discovered by a failing call.
func (c *Client) IsAuthenticated() bool {
	return c.session.Token() != ""
}

// Role returns the stored role tag ("admin" or "user"), or "".
func (c *Client) Role() string {
	return c.session.Role()
}

// attachCredential sets the bearer header when a token is stored and leaves
// the request untouched otherwise.
func (c *Client) attachCredential(req *http.Request) {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, payload []byte) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.attachCredential(req)
	return req, nil
}

// do runs one API call end to end: encode, send, classify, decode. On any
// failure the returned error is an *Error with a localized message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			logging.Errorf("unencodable request body for %s: %v", path, err)
			return &Error{Kind: FailureUnknown, Message: i18n.T("err.generic")}
		}
	}

	attempts := 1
	if method == http.MethodGet && c.retryReads {
		attempts = 2
	}

	var resp *http.Response
	var transportErr error
	for i := 0; i < attempts; i++ {
		req, err := c.newRequest(ctx, method, path, query, payload)
		if err != nil {
			return &Error{Kind: FailureUnknown, Message: i18n.T("err.generic")}
		}
		resp, transportErr = c.http.Do(req)
		if transportErr == nil {
			break
		}
		// Don't burn the retry on a context the caller already gave up on.
		if ctx.Err() != nil {
			break
		}
	}
	if transportErr != nil {
		return classifyTransport(transportErr)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyTransport(err)
	}

	if resp.StatusCode >= 400 {
		apiErr := classifyStatus(resp.StatusCode, data)
		logging.Debugf("%s %s -> %d (%s)", method, path, resp.StatusCode, apiErr.Kind)
		if apiErr.Kind == FailureAuthExpired {
			c.expireSession()
		}
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			logging.Warnf("undecodable response for %s %s: %v", method, path, err)
			return &Error{Kind: FailureUnknown, Message: i18n.T("err.generic"), Status: resp.StatusCode}
		}
	}
	return nil
}

// expireSession clears the stored credential and role and fires the
// subscribed callback at most once until the next successful login.
func (c *Client) expireSession() {
	c.session.Clear()
	if c.expired.CompareAndSwap(false, true) {
		if c.onAuthExpired != nil {
			c.onAuthExpired()
		}
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, in, out)
}

func (c *Client) put(ctx context.Context, path string, in, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, in, out)
}

func (c *Client) patch(ctx context.Context, path string, in, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, in, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
