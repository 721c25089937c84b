package models

import "time"

// ChatSession groups an ordered message exchange between the user and the
// assistant. Sessions live on the remote service; the client requests
// creation, retrieval and deletion but never holds an authoritative copy.
type ChatSession struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Title        string    `json:"title,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	IsActive     bool      `json:"is_active"`
	MessageCount int       `json:"message_count,omitempty"`
}

// ChatMessage is one message inside a session, written either by the user
// or by the assistant.
type ChatMessage struct {
	ID             int64     `json:"id"`
	SessionID      int64     `json:"session_id"`
	Content        string    `json:"content"`
	IsUserMessage  bool      `json:"is_user_message"`
	CreatedAt      time.Time `json:"created_at"`
	AIModel        string    `json:"ai_model,omitempty"`
	ProcessingTime float64   `json:"processing_time,omitempty"`
}

// ChatRequest is the body of POST /chat/message. SessionID is omitted when
// nil, which tells the server to open a fresh session for the message.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID *int64 `json:"session_id,omitempty"`
}

// ChatResponse pairs the stored user message with the assistant reply and
// the session both belong to.
type ChatResponse struct {
	UserMessage ChatMessage `json:"user_message"`
	AIMessage   ChatMessage `json:"ai_message"`
	Session     ChatSession `json:"session"`
}

// CreateSessionRequest is the body of POST /chat/sessions.
type CreateSessionRequest struct {
	Title *string `json:"title,omitempty"`
}

// SessionList is one page of the session listing plus the overall total.
type SessionList struct {
	Sessions []ChatSession `json:"sessions"`
	Total    int           `json:"total"`
}

// SessionHistory is a session together with its message log, in the order
// the server returned it.
type SessionHistory struct {
	Session  ChatSession   `json:"session"`
	Messages []ChatMessage `json:"messages"`
}

// Acknowledgement is the generic {message} confirmation returned by
// endpoints such as session deletion.
type Acknowledgement struct {
	Message string `json:"message"`
}
