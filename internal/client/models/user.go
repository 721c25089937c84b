// Package models defines the records exchanged with the health assistant
// API: the user identity and the chat session/message entities. Field names
// on the wire are snake_case, matching the server's JSON contract.
package models

import "time"

// User is the identity record issued by the remote service. ID, Email and
// Username are immutable once issued; the profile fields change only
// through explicit profile updates.
type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	FullName   string    `json:"full_name,omitempty"`
	Age        int       `json:"age,omitempty"`
	Gender     string    `json:"gender,omitempty"`
	BloodType  string    `json:"blood_type,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the success shape of the login and register endpoints.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// ProfileUpdate describes a partial profile change for PATCH /auth/profile.
// Nil fields are left out of the request body and stay untouched server-side.
type ProfileUpdate struct {
	FullName  *string `json:"full_name,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	BloodType *string `json:"blood_type,omitempty"`
}
