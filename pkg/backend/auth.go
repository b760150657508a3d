package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vitrine-store/gateway/pkg/models"
)

// Login exchanges credentials for a user and token. The backend signals
// failures both through the status code and through success=false bodies, so
// the payload is decoded whenever the body is JSON, letting callers surface
// the backend's own message.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", "", models.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	var lr models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		lr.Success = false
	}
	return &lr, nil
}

// Register creates an account. Validation messages come back in the body.
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.RegisterResponse, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/accounts/create", "", models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	var rr models.RegisterResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rr.Success = false
	}
	return &rr, nil
}
