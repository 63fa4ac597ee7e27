// Package supabase provides a client for the Supabase identity (GoTrue) and
// table (PostgREST) APIs. It is the service's only gateway to user
// identity and book persistence.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	authBasePath = "/auth/v1"
	restBasePath = "/rest/v1"

	defaultTimeout = 30 * time.Second
)

// Client is a Supabase API client. Safe for concurrent use; all state is
// read-only after construction.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	logger  *slog.Logger
}

// New creates a new Supabase client for the given project URL and API key.
func New(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		logger:  logger,
	}
}

// requestOptions carries the per-request variations of doRequest.
type requestOptions struct {
	// bearer overrides the Authorization token; the API key is used when empty.
	bearer string
	// payload is JSON-encoded as the request body when non-nil.
	payload any
	// prefer is sent as the PostgREST Prefer header when non-empty.
	prefer string
}

// doRequest executes an HTTP request against the Supabase project and maps
// upstream failure statuses to sentinel errors.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, opts requestOptions) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if opts.payload != nil {
		encoded, err := json.Marshal(opts.payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.apiKey)
	bearer := opts.bearer
	if bearer == "" {
		bearer = c.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	if opts.payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts.prefer != "" {
		req.Header.Set("Prefer", opts.prefer)
	}

	c.logger.Debug("supabase request",
		"method", method,
		"path", path,
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBody, nil
	}

	msg := upstreamMessage(respBody)
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNotAcceptable:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: %s", ErrServer, msg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, msg)
	}
}

// upstreamMessage extracts a human-readable message from a Supabase error
// body. GoTrue and PostgREST use different field names.
func upstreamMessage(body []byte) string {
	var payload struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}

	for _, m := range []string{payload.ErrorDescription, payload.Msg, payload.Message, payload.Error} {
		if m != "" {
			return m
		}
	}
	return strings.TrimSpace(string(body))
}
