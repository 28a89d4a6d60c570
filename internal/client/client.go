// Package client is a Go consumer of the attendance API. It mirrors what the
// web consoles do over the wire: cookie-based sessions, JSON envelopes, and
// an {"error": "..."} body on every failure.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// APIError is the normalized failure shape. Every client method that fails
// returns one, so callers never branch on transport vs. server errors.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Failure messages for requests that never produced a server response.
const (
	msgNetworkError  = "Network error occurred"
	msgRequestFailed = "Request failed"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

// New builds a client against baseURL. The cookie jar holds the HTTP-only
// session cookie; the token is never exposed to callers.
func New(baseURL string, session *Session) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: defaultTimeout,
		},
		session: session,
	}, nil
}

// Session returns the client's session store.
func (c *Client) Session() *Session {
	return c.session
}

// doJSON sends a request with an optional JSON body and decodes a JSON
// response into out. Failures are normalized: a server {"error"} body wins,
// transport errors become "Network error occurred", anything else becomes
// "Request failed".
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: msgRequestFailed}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Message: msgRequestFailed}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: msgNetworkError}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: msgRequestFailed}
		}
	}
	return nil
}

// decodeAPIError reads a non-2xx response body back into an APIError. The
// server contract is {"error": string}; bodies that do not parse fall back
// to a generic message with the status attached.
func decodeAPIError(resp *http.Response) *APIError {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil {
		var apiErr APIError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			apiErr.StatusCode = resp.StatusCode
			return &apiErr
		}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("Request failed with status %d", resp.StatusCode),
	}
}
