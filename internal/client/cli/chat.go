package cli

import (
	"context"
	"os"
	"strconv"
	"strings"
)

// Say sends one message to the assistant. The first message opens a new
// session on the server; replies stay in that session until the user
// switches with new/history or signs out.
func (a *App) Say(ctx context.Context, text string) error {
	resp, err := a.chat.SendMessage(ctx, text, a.activeSession)
	if err != nil {
		printlnFn("Message failed:", err.Error())
		return err
	}

	id := resp.Session.ID
	a.activeSession = &id
	printlnFn(renderMessage(resp.AIMessage))
	return nil
}

// Compose reads a multi-line message and sends it like Say.
func (a *App) Compose(ctx context.Context) error {
	text, err := GetMultiline(a.reader, "Enter message", os.Stdout)
	if err != nil {
		return err
	}
	if text == "" {
		printlnFn("Nothing to send.")
		return nil
	}
	return a.Say(ctx, text)
}

// Sessions prints the first page of the session listing.
func (a *App) Sessions(ctx context.Context) error {
	list, err := a.chat.Sessions(ctx, 0, 0)
	if err != nil {
		printlnFn("Failed to list sessions:", err.Error())
		return err
	}
	printlnFn(renderSessionList(list))
	return nil
}

// History fetches and renders the transcript of one session, and makes it
// the active session for follow-up messages.
func (a *App) History(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: history <session-id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Session id must be a number.")
		return nil
	}

	history, err := a.chat.SessionHistory(ctx, id)
	if err != nil {
		printlnFn("Failed to fetch history:", err.Error())
		return err
	}

	a.activeSession = &id
	printlnFn(renderHistory(history))
	return nil
}

// NewSession creates an empty session, optionally titled, and switches to
// it.
func (a *App) NewSession(ctx context.Context, args []string) error {
	var title *string
	if len(args) > 0 {
		t := strings.Join(args, " ")
		title = &t
	}

	session, err := a.chat.CreateSession(ctx, title)
	if err != nil {
		printlnFn("Failed to create session:", err.Error())
		return err
	}

	id := session.ID
	a.activeSession = &id
	printlnFn(renderSessionLine(*session))
	return nil
}

// DeleteSession removes a session on the server. Deleting the active
// session resets it so the next message starts fresh.
func (a *App) DeleteSession(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: delete <session-id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Session id must be a number.")
		return nil
	}

	ack, err := a.chat.DeleteSession(ctx, id)
	if err != nil {
		printlnFn("Failed to delete session:", err.Error())
		return err
	}

	if a.activeSession != nil && *a.activeSession == id {
		a.activeSession = nil
	}
	printlnFn(ack.Message)
	return nil
}
