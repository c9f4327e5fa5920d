// Package api implements the client for the HR Investimentos REST API.
//
// All endpoints live under a configurable base path (typically "/api") and
// speak JSON. Authenticated calls carry a bearer token; registration, login
// and the public dashboard do not. Failures surface as *Error carrying the
// numeric HTTP status and the server's error message, so callers can tell an
// expired session (401) apart from everything else.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBase is used when no base URL is configured.
const DefaultBase = "http://localhost:3000/api"

// Client calls the HR Investimentos REST API.
type Client struct {
	base    string
	token   string
	hc      *http.Client
	limiter *rate.Limiter
}

// New returns a client for the API served at base. The client throttles its
// requests so that bulk admin operations do not hammer the backend.
func New(base string) *Client {
	if base == "" {
		base = DefaultBase
	}
	return &Client{
		base:    strings.TrimRight(base, "/"),
		hc:      &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 30),
	}
}

// WithToken returns a copy of the client that authenticates with the given
// bearer token.
func (c *Client) WithToken(token string) *Client {
	c2 := *c
	c2.token = token
	return &c2
}

// Error is a structured API failure.
type Error struct {
	Status  int    // HTTP status code
	Message string // server's error field, or the HTTP status text
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// IsUnauthorized reports whether err is an API failure with status 401,
// which callers must answer with a forced logout.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// do executes one API call. A nil out discards the response body; a non-nil
// out receives the decoded JSON payload.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	addr := c.base + path
	if len(query) > 0 {
		addr += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("cannot encode request for %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, addr, body)
	if err != nil {
		return fmt.Errorf("cannot create http request %q: %w", addr, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("cannot execute http request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	// reading in a buffer to be able to log the json in verbose mode
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return fmt.Errorf("cannot read http body for %s %s: %w", method, path, err)
	}
	if Verbose {
		log.Printf("%s %s %s", method, path, resp.Status)
	}

	if resp.StatusCode >= 300 {
		return decodeError(resp, buf.Bytes())
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(buf.Bytes(), out); err != nil {
		return fmt.Errorf("cannot decode response of %s %s: %w", method, path, err)
	}
	return nil
}

// Verbose enables request logging on the standard logger.
var Verbose bool

// decodeError extracts the server's error field from a failed response,
// falling back to the HTTP status text.
func decodeError(resp *http.Response, body []byte) *Error {
	var payload struct {
		Error string `json:"error"`
	}
	msg := http.StatusText(resp.StatusCode)
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	return &Error{Status: resp.StatusCode, Message: msg}
}
