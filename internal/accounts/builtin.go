// Package accounts is the credential store behind the mock sign-in and
// sign-up flows. It answers lookups against two record sets: a fixed
// list of built-in demo accounts compiled into the binary, and the
// registered accounts appended by sign-up and persisted to the local
// key-value store.
package accounts

import "github.com/AlistairHeus/feed-assignment/internal/models"

// builtinAccounts are the always-available demo logins. They are never
// persisted and never mutated.
var builtinAccounts = []models.Credential{
	{
		Email:    "demo@example.com",
		Password: "password123",
		User: models.User{
			Id:       "demo-user",
			Email:    "demo@example.com",
			Username: "Demo User",
		},
	},
	{
		Email:    "test@user.com",
		Password: "testpass",
		User: models.User{
			Id:       "test-user",
			Email:    "test@user.com",
			Username: "Test User",
		},
	},
}

// BuiltinAccounts returns a copy of the built-in demo credentials.
func BuiltinAccounts() []models.Credential {
	out := make([]models.Credential, len(builtinAccounts))
	copy(out, builtinAccounts)
	return out
}
