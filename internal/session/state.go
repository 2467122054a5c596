// Package session owns the client's session and auth-modal state: who
// is signed in, whether an authentication attempt is in flight, the
// last inline error, and which of the two auth dialogs is showing.
// Presentation code receives read-only snapshots and drives mutations
// through the Coordinator.
package session

import "github.com/AlistairHeus/feed-assignment/internal/models"

// ModalKind selects which auth dialog the modal shows when open.
type ModalKind string

const (
	ModalSignIn ModalKind = "signin"
	ModalSignUp ModalKind = "signup"
)

// AuthState is the current session. Error holds the last inline
// validation message ("Invalid email or password", "Email already
// exists"); it is cleared by any modal transition and at the start of
// the next attempt.
type AuthState struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// ModalState is the auth-dialog visibility state. Initial state is
// closed with Kind = ModalSignIn; closing always resets Kind to
// ModalSignIn.
type ModalState struct {
	IsOpen bool
	Kind   ModalKind
}

// Snapshot is a read-only copy of both state records, handed to
// subscribers after every completed transition.
type Snapshot struct {
	Auth  AuthState
	Modal ModalState
}
