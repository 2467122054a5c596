package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionRecord_RoundTrip(t *testing.T) {
	u := User{Id: "demo-user", Email: "demo@example.com", Username: "Demo User"}

	data, err := EncodeSessionRecord(u)
	require.NoError(t, err)

	got, err := DecodeSessionRecord(data)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestDecodeSessionRecord_RejectsGarbage(t *testing.T) {
	_, err := DecodeSessionRecord([]byte(`{not json`))
	require.ErrorIs(t, err, ErrInvalidRecord)
}

func TestDecodeSessionRecord_RejectsWrongVersion(t *testing.T) {
	_, err := DecodeSessionRecord([]byte(`{"version":99,"user":{"id":"x","email":"x@y.z"}}`))
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestDecodeSessionRecord_RejectsMissingFields(t *testing.T) {
	_, err := DecodeSessionRecord([]byte(`{"version":1,"user":{"id":"","email":"x@y.z"}}`))
	require.ErrorIs(t, err, ErrInvalidRecord)

	_, err = DecodeSessionRecord([]byte(`{"version":1,"user":{"id":"x","email":""}}`))
	require.ErrorIs(t, err, ErrInvalidRecord)
}

func TestRegisteredRecord_RoundTrip_PreservesOrder(t *testing.T) {
	accounts := []Credential{
		{Email: "a@x.com", Password: "one", User: User{Id: "u1", Email: "a@x.com"}},
		{Email: "b@x.com", Password: "two", User: User{Id: "u2", Email: "b@x.com"}},
	}

	data, err := EncodeRegisteredRecord(accounts)
	require.NoError(t, err)

	got, err := DecodeRegisteredRecord(data)
	require.NoError(t, err)
	require.Equal(t, accounts, got)
}

func TestDecodeRegisteredRecord_RejectsAccountWithoutEmail(t *testing.T) {
	_, err := DecodeRegisteredRecord([]byte(`{"version":1,"accounts":[{"email":"","password":"p"}]}`))
	require.ErrorIs(t, err, ErrInvalidRecord)
}

func TestPostsRecord_RoundTrip(t *testing.T) {
	posts := []Post{
		{Id: "p1", Author: "Demo User", Content: "hello", Timestamp: "Just now", CreatedAt: 1234},
	}

	data, err := EncodePostsRecord(posts)
	require.NoError(t, err)

	got, err := DecodePostsRecord(data)
	require.NoError(t, err)
	require.Equal(t, posts, got)
}
