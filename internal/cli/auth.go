package cli

import (
	"context"
	"os"

	"github.com/AlistairHeus/feed-assignment/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login opens the sign-in dialog, prompts for credentials, and submits
// them to the coordinator. On a miss the inline error is shown and the
// dialog stays open for another try; on success the coordinator closes
// it.
func (a *App) Login(ctx context.Context) error {
	coordinator := session.FromContext(ctx)
	coordinator.OpenModal(session.ModalSignIn)

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	if coordinator.Login(ctx, email, password) {
		printlnFn("Signed in as " + email)
		return nil
	}
	if msg := coordinator.Auth().Error; msg != "" {
		printlnFn(msg)
	}
	return nil
}

// Signup opens the sign-up dialog, prompts for a new account, and
// submits it. Confirmation matching happens here, before the
// coordinator is involved.
func (a *App) Signup(ctx context.Context) error {
	coordinator := session.FromContext(ctx)
	coordinator.OpenModal(session.ModalSignUp)

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}

	if password != confirm {
		printlnFn("Passwords do not match")
		return nil
	}

	if coordinator.Signup(ctx, email, password, confirm) {
		printlnFn("Welcome, " + email + "!")
		return nil
	}
	if msg := coordinator.Auth().Error; msg != "" {
		printlnFn(msg)
	}
	return nil
}

// Open shows the requested auth dialog without submitting anything.
// An empty kind opens sign-in.
func (a *App) Open(ctx context.Context, kind string) error {
	coordinator := session.FromContext(ctx)

	switch kind {
	case "", "signin":
		coordinator.OpenModal(session.ModalSignIn)
	case "signup":
		coordinator.OpenModal(session.ModalSignUp)
	default:
		printlnFn("Usage: open signin|signup")
		return nil
	}

	printlnFn("Dialog: " + string(coordinator.Modal().Kind))
	return nil
}

// Switch flips the open dialog between sign-in and sign-up.
func (a *App) Switch(ctx context.Context) error {
	coordinator := session.FromContext(ctx)
	coordinator.SwitchModal()

	modal := coordinator.Modal()
	if modal.IsOpen {
		printlnFn("Dialog: " + string(modal.Kind))
	}
	return nil
}

// Close dismisses the open dialog.
func (a *App) Close(ctx context.Context) error {
	session.FromContext(ctx).CloseModal()
	return nil
}

// Logout signs the current user out.
func (a *App) Logout(ctx context.Context) error {
	session.FromContext(ctx).Logout(ctx)
	printlnFn("Signed out")
	return nil
}
