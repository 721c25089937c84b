package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"healthchat/internal/client/models"
)

// DefaultSessionLimit is the page size used when the caller does not ask
// for a specific one.
const DefaultSessionLimit = 20

// doChat issues one request against a /chat endpoint. The bearer token is
// attached when present but its absence is not an error here; the server
// answers 401 and that is surfaced like any other failure. Non-2xx
// responses become a ChatError carrying the raw body text.
func (c *HTTPClient) doChat(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if token := c.creds.GetToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return &ChatError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// SendMessage posts text to the assistant. With a nil sessionID the
// session_id field is left out of the body and the server opens a new
// session, returned in the response.
func (c *HTTPClient) SendMessage(ctx context.Context, text string, sessionID *int64) (*models.ChatResponse, error) {
	body := models.ChatRequest{Message: text, SessionID: sessionID}
	var out models.ChatResponse
	if err := c.doChat(ctx, http.MethodPost, "/chat/message", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Sessions lists the caller's chat sessions with offset/limit pagination.
// Non-positive limit falls back to DefaultSessionLimit; negative skip is
// clamped to zero.
func (c *HTTPClient) Sessions(ctx context.Context, skip, limit int) (*models.SessionList, error) {
	if limit <= 0 {
		limit = DefaultSessionLimit
	}
	if skip < 0 {
		skip = 0
	}
	var out models.SessionList
	path := fmt.Sprintf("/chat/sessions?skip=%d&limit=%d", skip, limit)
	if err := c.doChat(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SessionHistory(ctx context.Context, sessionID int64) (*models.SessionHistory, error) {
	var out models.SessionHistory
	if err := c.doChat(ctx, http.MethodGet, fmt.Sprintf("/chat/sessions/%d", sessionID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateSession(ctx context.Context, title *string) (*models.ChatSession, error) {
	body := models.CreateSessionRequest{Title: title}
	var out models.ChatSession
	if err := c.doChat(ctx, http.MethodPost, "/chat/sessions", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteSession(ctx context.Context, sessionID int64) (*models.Acknowledgement, error) {
	var out models.Acknowledgement
	if err := c.doChat(ctx, http.MethodDelete, fmt.Sprintf("/chat/sessions/%d", sessionID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
