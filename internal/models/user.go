// Package models defines the core data types of the foo-rum client:
// users, credential records, posts, and the versioned shapes in which
// they are persisted to the local key-value store.
package models

// User is the account identity attached to the running session.
// Username and Avatar are optional display fields.
type User struct {
	Id       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// Credential pairs a login email/password with the user identity it
// resolves to. Passwords are stored in plaintext: the whole credential
// store is a demo fixture, not a security boundary.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	User     User   `json:"user"`
}
