package api

import "fmt"

// AuthError reports a failed auth endpoint call. Message carries the
// server-supplied detail when present, otherwise a fixed per-operation
// fallback such as "Login failed".
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// ErrNoToken is returned by token-required operations when no bearer token
// is stored. No network call is made in that case.
var ErrNoToken = &AuthError{Message: "No token found"}

// ChatError reports a failed chat endpoint call. The body text is passed
// through as-is; when the body is empty the HTTP status stands in.
type ChatError struct {
	Status int
	Body   string
}

func (e *ChatError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}
