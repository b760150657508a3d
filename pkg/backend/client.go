// Package backend is the REST client for the external commerce API. All
// business logic (pricing, inventory, order persistence, authentication)
// lives behind it; this side only shuttles JSON.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/vitrine-store/gateway/pkg/global"
)

// StatusError reports a non-success HTTP status from the backend.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.Code)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client against the given base URL. A nil httpClient falls back
// to http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// NewFromEnv builds a client from BACKEND_API_URL.
func NewFromEnv() *Client {
	return New(global.GetBackendURL(), nil)
}

// do issues a JSON request. A non-empty bearer is attached as the
// Authorization header. Non-2xx statuses become *StatusError and the body is
// not decoded; out may be nil when no response body is expected.
func (c *Client) do(ctx context.Context, method, path, bearer string, body interface{}, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, bearer, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend response decode failed: %w", err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path, bearer string, body interface{}) (*http.Request, error) {
	var buf *bytes.Buffer
	if body != nil {
		buf = &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, fmt.Errorf("backend request encode failed: %w", err)
		}
	}

	var req *http.Request
	var err error
	if buf != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	return req, nil
}
