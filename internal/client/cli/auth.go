package cli

import (
	"context"
	"os"

	"healthchat/internal/client/models"
	"healthchat/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to the interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates through the session
// controller. The failure message shown to the user is whatever the server
// supplied (or the fixed fallback); the password is wiped before return.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := models.LoginRequest{Email: email, Password: string(password)}
	if err := a.session.Login(ctx, req); err != nil {
		printlnFn("Login failed:", err.Error())
		return err
	}

	st := a.session.State()
	printlnFn("Welcome back,", st.User.Username)
	return nil
}

// Register prompts for email, username and password and creates an
// account. A successful registration signs the user in immediately.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := models.RegisterRequest{Email: email, Username: username, Password: string(password)}
	if err := a.session.Register(ctx, req); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Account created. You are signed in.")
	return nil
}

// Logout drops the local session. There is no remote call to fail, but an
// error from the delegate is still reported.
func (a *App) Logout(ctx context.Context) error {
	a.activeSession = nil
	if err := a.session.Logout(ctx); err != nil {
		printlnFn("Logout reported an error:", err.Error())
		return err
	}
	printlnFn("Signed out.")
	return nil
}
