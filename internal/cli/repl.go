package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Open(ctx context.Context, kind string) error
	Switch(ctx context.Context) error
	Close(ctx context.Context) error
	Logout(ctx context.Context) error
	Publish(ctx context.Context) error
	List(ctx context.Context) error
	Like(ctx context.Context) error
	Comment(ctx context.Context) error
	Share(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the foo-rum CLI.
//
// It reads a line from the provided reader, parses the first token as
// the command, and dispatches to methods on 'a'. The same reader is
// shared with the prompt helpers so no input is lost between the loop
// and a prompt. Unknown commands are reported back to the user. The
// loop exits on EOF or when the user types "exit" or "quit".
//
// The prompt shows the current status (from statusFn) and accepts:
//
//	Signed out:
//	  - help           — show available commands
//	  - login          — open the sign-in dialog and authenticate
//	  - signup         — open the sign-up dialog and create an account
//	  - open [kind]    — show the signin or signup dialog
//	  - switch         — flip the open dialog between sign-in/sign-up
//	  - close          — close the open dialog
//	  - list           — browse the feed
//	  - exit | quit    — leave the program
//
//	Signed in additionally:
//	  - post           — publish a post
//	  - like | comment | share — feed interactions (not implemented yet)
//	  - logout         — sign out
//
// Any errors returned by command handlers are ignored here; handlers
// should log their own errors. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("foorum> %s > ", statusFn()))
		line, readErr := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, post, like, comment, share, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, login, signup, open, switch, close, exit")
			}

		case "login", "signin":
			_ = a.Login(ctx)

		case "signup", "register":
			_ = a.Signup(ctx)

		case "open":
			kind := ""
			if len(parts) > 1 {
				kind = parts[1]
			}
			_ = a.Open(ctx, kind)

		case "switch":
			_ = a.Switch(ctx)

		case "close":
			_ = a.Close(ctx)

		case "post":
			_ = a.Publish(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "like":
			_ = a.Like(ctx)

		case "comment":
			_ = a.Comment(ctx)

		case "share":
			_ = a.Share(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if readErr != nil {
			return
		}
	}
}
