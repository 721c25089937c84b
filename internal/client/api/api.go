// Package api implements the request/response wrappers around the health
// assistant REST endpoints: authentication under /auth and chat under
// /chat. The wrappers are stateless; the only shared state is the
// credential store supplying the bearer token.
package api

import (
	"context"

	"healthchat/internal/client/models"
)

// Credentials is the slice of the credential store the API clients need.
// All methods are fail-soft; see the credentials package.
type Credentials interface {
	GetToken(ctx context.Context) string
	SetToken(ctx context.Context, token string)
	RemoveToken(ctx context.Context)
	GetUser(ctx context.Context) *models.User
	SetUser(ctx context.Context, user *models.User)
	RemoveUser(ctx context.Context)
}

// AuthAPI covers the authentication operations. Each remote call is a
// single round trip with no retries and no caching. Logout is purely
// local: it clears the credential store and issues no network call.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
}

// ChatAPI covers the chat endpoints. Every call reads the token directly
// from the credential store and issues exactly one request; nothing is
// cached locally and the server's ordering of returned sequences is
// authoritative.
type ChatAPI interface {
	SendMessage(ctx context.Context, text string, sessionID *int64) (*models.ChatResponse, error)
	Sessions(ctx context.Context, skip, limit int) (*models.SessionList, error)
	SessionHistory(ctx context.Context, sessionID int64) (*models.SessionHistory, error)
	CreateSession(ctx context.Context, title *string) (*models.ChatSession, error)
	DeleteSession(ctx context.Context, sessionID int64) (*models.Acknowledgement, error)
}
