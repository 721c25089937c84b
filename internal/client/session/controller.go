// Package session owns the in-memory authentication state of the client
// and its transitions: startup restore, login, register, logout and
// profile updates.
package session

import (
	"context"
	"sync"

	"healthchat/internal/client/api"
	"healthchat/internal/client/credentials"
	"healthchat/internal/client/models"
	"healthchat/internal/logging"
)

// State is a point-in-time snapshot of the session.
//
// Authenticated implies User != nil. While Loading is true an in-flight
// operation may still change the outcome, so UI decisions based on
// Authenticated must wait for Loading to clear.
type State struct {
	User          *models.User
	Authenticated bool
	Loading       bool
}

// Controller reconciles the in-memory session with the credential store
// and the auth API. One instance is owned by the application root and
// handed to whatever consumes it; there is no process-wide singleton.
// Mutating operations are serialized, so at most one of them executes at
// a time.
type Controller struct {
	api   api.AuthAPI
	creds *credentials.Store
	log   logging.Logger

	opMu sync.Mutex // at most one mutating operation in flight

	mu            sync.RWMutex
	user          *models.User
	authenticated bool
	loading       bool
	restored      bool
}

// NewController returns a Controller in the unresolved startup state: no
// user, unauthenticated, loading until Restore completes.
func NewController(authAPI api.AuthAPI, creds *credentials.Store, log logging.Logger) *Controller {
	return &Controller{api: authAPI, creds: creds, log: log, loading: true}
}

// State returns a snapshot safe for concurrent readers.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return State{User: c.user, Authenticated: c.authenticated, Loading: c.loading}
}

func (c *Controller) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

func (c *Controller) setSession(user *models.User, authenticated bool) {
	c.mu.Lock()
	c.user = user
	c.authenticated = authenticated
	c.mu.Unlock()
}

// Restore runs the startup reconciliation. It executes once per process;
// later calls return immediately.
//
// A stored token plus a cached user authenticates directly from cache; the
// token is verified against the server only when the cache is missing.
// That asymmetry keeps cold starts off the network at the cost of a
// stale-token window: a remotely revoked token surfaces on the first
// authenticated call instead of here.
func (c *Controller) Restore(ctx context.Context) {
	c.opMu.Lock()
	defer c.opMu.Unlock()
	if c.restored {
		return
	}
	c.restored = true
	defer c.setLoading(false)

	token := c.creds.GetToken(ctx)
	if token == "" {
		c.setSession(nil, false)
		return
	}

	if user := c.creds.GetUser(ctx); user != nil {
		c.log.Debug(ctx, "session restored from cache", "email", user.Email)
		c.setSession(user, true)
		return
	}

	user, err := c.api.Profile(ctx)
	if err != nil {
		c.log.Warn(ctx, "stored token rejected, clearing credentials", "error", err)
		if err := c.api.Logout(ctx); err != nil {
			c.log.Error(ctx, "logout failed", "error", err)
		}
		c.setSession(nil, false)
		return
	}
	c.creds.SetUser(ctx, user)
	c.setSession(user, true)
}

// Login authenticates against the server. On success the returned token
// and user are written through to the credential store before the
// in-memory state flips to authenticated. On failure the state is left
// unauthenticated and the error propagates to the caller.
func (c *Controller) Login(ctx context.Context, req models.LoginRequest) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()
	c.setLoading(true)
	defer c.setLoading(false)

	resp, err := c.api.Login(ctx, req)
	if err != nil {
		return err
	}
	c.creds.SetToken(ctx, resp.AccessToken)
	c.creds.SetUser(ctx, &resp.User)
	c.setSession(&resp.User, true)
	return nil
}

// Register creates an account and signs in with it. Symmetric to Login.
func (c *Controller) Register(ctx context.Context, req models.RegisterRequest) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()
	c.setLoading(true)
	defer c.setLoading(false)

	resp, err := c.api.Register(ctx, req)
	if err != nil {
		return err
	}
	c.creds.SetToken(ctx, resp.AccessToken)
	c.creds.SetUser(ctx, &resp.User)
	c.setSession(&resp.User, true)
	return nil
}

// Logout always ends unauthenticated: clearing the store is fail-soft and
// the in-memory session is dropped even when the delegate reports an
// error, which is still returned for the caller to surface.
func (c *Controller) Logout(ctx context.Context) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()
	c.setLoading(true)
	defer c.setLoading(false)

	err := c.api.Logout(ctx)
	c.setSession(nil, false)
	return err
}

// UpdateProfile applies a partial profile change. The server returns the
// full updated record, which becomes both the cached and the current user.
// On failure the current state is left untouched and the error propagates.
func (c *Controller) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	c.opMu.Lock()
	defer c.opMu.Unlock()
	c.setLoading(true)
	defer c.setLoading(false)

	user, err := c.api.UpdateProfile(ctx, update)
	if err != nil {
		return err
	}
	c.creds.SetUser(ctx, user)
	c.mu.Lock()
	c.user = user
	c.mu.Unlock()
	return nil
}
