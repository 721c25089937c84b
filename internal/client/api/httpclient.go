package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"healthchat/internal/client/models"
)

// HTTPClient talks to the health assistant API over REST/JSON. It performs
// no retries and sets no timeout of its own; cancellation comes only from
// the caller's context. It implements both AuthAPI and ChatAPI.
type HTTPClient struct {
	baseURL string
	creds   Credentials
	http    *http.Client
}

func NewHTTPClient(baseURL string, creds Credentials) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		http:    &http.Client{},
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// doAuth issues one request against an /auth endpoint and decodes the
// success shape into out. When bearer is set, a missing stored token
// short-circuits with ErrNoToken before anything goes on the wire.
// Non-2xx responses carry a JSON {detail} body; the detail becomes the
// AuthError message, with fallback standing in when it is missing.
func (c *HTTPClient) doAuth(ctx context.Context, method, path string, body, out any, bearer bool, fallback string) error {
	var token string
	if bearer {
		token = c.creds.GetToken(ctx)
		if token == "" {
			return ErrNoToken
		}
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if bearer {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAuthError(resp.Body, fallback)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAuthError(r io.Reader, fallback string) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err == nil && payload.Detail != "" {
		return &AuthError{Message: payload.Detail}
	}
	return &AuthError{Message: fallback}
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.doAuth(ctx, http.MethodPost, "/auth/login", req, &out, false, "Login failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.doAuth(ctx, http.MethodPost, "/auth/register", req, &out, false, "Registration failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.doAuth(ctx, http.MethodGet, "/auth/profile", nil, &out, true, "Failed to get profile"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	var out models.User
	if err := c.doAuth(ctx, http.MethodPatch, "/auth/profile", update, &out, true, "Failed to update profile"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout clears the stored token and cached user. Local only; the server
// is never contacted and the credential store absorbs any storage fault.
func (c *HTTPClient) Logout(ctx context.Context) error {
	c.creds.RemoveToken(ctx)
	c.creds.RemoveUser(ctx)
	return nil
}

// IsAuthenticated reports whether a token is currently stored. It does not
// validate the token against the server.
func (c *HTTPClient) IsAuthenticated(ctx context.Context) bool {
	return c.creds.GetToken(ctx) != ""
}
