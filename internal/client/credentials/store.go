package credentials

import (
	"context"
	"encoding/json"

	"healthchat/internal/client/models"
	"healthchat/internal/logging"
)

// Fixed storage keys, scoped to the installation's database.
const (
	tokenKey = "auth_token"
	userKey  = "user_data"
)

// Store persists the opaque bearer token and the cached user profile.
//
// Every operation fails soft: a backend fault is logged and surfaced as
// absence on reads, and dropped on writes. Callers cannot distinguish "not
// present" from "storage unavailable" and must not assume writes succeeded;
// the session is re-derived from the token plus a profile fetch at next
// startup, so a lost write heals itself.
type Store struct {
	backend Backend
	log     logging.Logger
}

func NewStore(backend Backend, log logging.Logger) *Store {
	return &Store{backend: backend, log: log}
}

// GetToken returns the stored bearer token, or "" when absent.
func (s *Store) GetToken(ctx context.Context) string {
	value, err := s.backend.Get(ctx, tokenKey)
	if err != nil {
		s.log.Error(ctx, "failed to read token", "error", err)
		return ""
	}
	return string(value)
}

func (s *Store) SetToken(ctx context.Context, token string) {
	if err := s.backend.Set(ctx, tokenKey, []byte(token)); err != nil {
		s.log.Error(ctx, "failed to store token", "error", err)
	}
}

func (s *Store) RemoveToken(ctx context.Context) {
	if err := s.backend.Delete(ctx, tokenKey); err != nil {
		s.log.Error(ctx, "failed to remove token", "error", err)
	}
}

// GetUser returns the cached user profile, or nil when absent. A stored
// value that no longer decodes is erased and reported as absent, so a
// single corrupted write cannot wedge the client permanently.
func (s *Store) GetUser(ctx context.Context) *models.User {
	value, err := s.backend.Get(ctx, userKey)
	if err != nil {
		s.log.Error(ctx, "failed to read cached user", "error", err)
		return nil
	}
	if value == nil {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(value, &user); err != nil {
		s.log.Warn(ctx, "cached user is corrupted, erasing", "error", err)
		s.RemoveUser(ctx)
		return nil
	}
	return &user
}

func (s *Store) SetUser(ctx context.Context, user *models.User) {
	value, err := json.Marshal(user)
	if err != nil {
		s.log.Error(ctx, "failed to encode user", "error", err)
		return
	}
	if err := s.backend.Set(ctx, userKey, value); err != nil {
		s.log.Error(ctx, "failed to store user", "error", err)
	}
}

func (s *Store) RemoveUser(ctx context.Context) {
	if err := s.backend.Delete(ctx, userKey); err != nil {
		s.log.Error(ctx, "failed to remove cached user", "error", err)
	}
}
