// Package backend implements the gateway client for the marketplace REST
// backend. Every call is one request, one response: no caching, no retry,
// no batching. The bearer token is attached whenever the caller holds one,
// and error payloads are normalized to their {"message": ...} shape with a
// generic fallback.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sokoyetu/storefront/internal/api/metrics"
	"github.com/sokoyetu/storefront/internal/core/domain"
	"github.com/sokoyetu/storefront/internal/core/ports"
)

// fallbackMessage is used when an error response carries no message field.
const fallbackMessage = "An error occurred"

// ErrUnreachable marks transport-level failures: the request never produced
// an HTTP response.
var ErrUnreachable = errors.New("backend unreachable")

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx backend response normalized to status plus message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// StatusCode satisfies ports.GatewayError.
func (e *APIError) StatusCode() int { return e.Status }

// Client calls the marketplace backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

var _ ports.Gateway = (*Client)(nil)

// NewClient constructs a backend client. A non-positive timeout falls back to
// the default.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type authResponse struct {
	User  domain.UserSummary `json:"user"`
	Token string             `json:"token"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	payload := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", payload, &resp); err != nil {
		return nil, err
	}
	return &ports.AuthResult{User: resp.User, Token: resp.Token}, nil
}

func (c *Client) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	payload := map[string]string{
		"email":     input.Email,
		"password":  input.Password,
		"firstName": input.FirstName,
		"lastName":  input.LastName,
		"role":      string(input.Role),
		"country":   string(input.Country),
	}
	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/signup", "", payload, &resp); err != nil {
		return nil, err
	}
	return &ports.AuthResult{User: resp.User, Token: resp.Token}, nil
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/request-password-reset", "", payload, nil)
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	payload := map[string]string{"token": token, "newPassword": newPassword}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/reset-password", "", payload, nil)
}

func (c *Client) FetchProfile(ctx context.Context, token string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/profile", token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, patch ports.ProfilePatch) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := c.doJSON(ctx, http.MethodPatch, "/api/user/profile", token, patch, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.doJSON(ctx, http.MethodGet, "/api/products/featured", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) SubmitFeedback(ctx context.Context, fb domain.Feedback) error {
	return c.doJSON(ctx, http.MethodPost, "/api/feedback", "", fb, nil)
}

// Ping reports whether the backend is reachable at the transport level.
// Used by the readiness probe; any HTTP response counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products/featured", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.BackendRequestDuration.WithLabelValues(path, "error").Observe(time.Since(start).Seconds())
		c.logger.Error().Err(err).Str("path", path).Msg("backend request failed")
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()
	metrics.BackendRequestDuration.WithLabelValues(path, outcomeLabel(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		msg := errResp.Message
		if msg == "" {
			msg = fallbackMessage
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}

func outcomeLabel(status int) string {
	if status >= http.StatusBadRequest {
		return "failure"
	}
	return "success"
}
