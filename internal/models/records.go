package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SchemaVersion is the current version stamped into every persisted
// record. Decoders reject any other value so that a record written by a
// different build is treated as corrupt rather than half-understood.
const SchemaVersion = 1

var (
	ErrSchemaMismatch = errors.New("schema version mismatch")
	ErrInvalidRecord  = errors.New("invalid record")
)

// SessionRecord is the persisted shape of the active session
// (the "auth_user" key).
type SessionRecord struct {
	Version int  `json:"version"`
	User    User `json:"user"`
}

// RegisteredRecord is the persisted shape of the registered-accounts
// sequence (the "registered_users" key). Order is append order.
type RegisteredRecord struct {
	Version  int          `json:"version"`
	Accounts []Credential `json:"accounts"`
}

// PostsRecord is the persisted shape of a per-user post cache.
type PostsRecord struct {
	Version int    `json:"version"`
	Posts   []Post `json:"posts"`
}

// EncodeSessionRecord serializes u as the current session record.
func EncodeSessionRecord(u User) ([]byte, error) {
	return json.Marshal(SessionRecord{Version: SchemaVersion, User: u})
}

// DecodeSessionRecord parses a persisted session record, validating the
// schema version and the fields a usable session cannot do without.
func DecodeSessionRecord(data []byte) (User, error) {
	var rec SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return User{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if rec.Version != SchemaVersion {
		return User{}, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, rec.Version, SchemaVersion)
	}
	if rec.User.Id == "" || rec.User.Email == "" {
		return User{}, fmt.Errorf("%w: session user missing id or email", ErrInvalidRecord)
	}
	return rec.User, nil
}

// EncodeRegisteredRecord serializes the registered-accounts sequence.
func EncodeRegisteredRecord(accounts []Credential) ([]byte, error) {
	return json.Marshal(RegisteredRecord{Version: SchemaVersion, Accounts: accounts})
}

// DecodeRegisteredRecord parses the registered-accounts sequence. Every
// element must carry an email; otherwise the whole record is rejected.
func DecodeRegisteredRecord(data []byte) ([]Credential, error) {
	var rec RegisteredRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if rec.Version != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, rec.Version, SchemaVersion)
	}
	for i, acc := range rec.Accounts {
		if acc.Email == "" {
			return nil, fmt.Errorf("%w: account %d missing email", ErrInvalidRecord, i)
		}
	}
	return rec.Accounts, nil
}

// EncodePostsRecord serializes a post cache.
func EncodePostsRecord(posts []Post) ([]byte, error) {
	return json.Marshal(PostsRecord{Version: SchemaVersion, Posts: posts})
}

// DecodePostsRecord parses a post cache.
func DecodePostsRecord(data []byte) ([]Post, error) {
	var rec PostsRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if rec.Version != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, rec.Version, SchemaVersion)
	}
	return rec.Posts, nil
}
