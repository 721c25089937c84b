package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. Tests replace it with a
// capturing stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The real
// App type satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Say(ctx context.Context, text string) error
	Compose(ctx context.Context) error
	Sessions(ctx context.Context) error
	History(ctx context.Context, args []string) error
	NewSession(ctx context.Context, args []string) error
	DeleteSession(ctx context.Context, args []string) error
}

// runREPL is a simple read–eval–print loop: read a line, take the first
// token as the command, dispatch to a. Unknown commands are reported back.
// The loop exits on scanner EOF or on "exit"/"quit".
//
// Handler errors are ignored here; handlers print their own diagnostics so
// a failed command never tears down the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("hc (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: say <text>, compose, sessions, history <id>, new [title], delete <id>, whoami, update, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "update":
			_ = a.UpdateProfile(ctx)

		case "say":
			if len(args) == 0 {
				printlnFn("Usage: say <message>")
				continue
			}
			_ = a.Say(ctx, strings.Join(args, " "))

		case "compose":
			_ = a.Compose(ctx)

		case "l", "sessions":
			_ = a.Sessions(ctx)

		case "history":
			_ = a.History(ctx, args)

		case "new":
			_ = a.NewSession(ctx, args)

		case "delete":
			_ = a.DeleteSession(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
