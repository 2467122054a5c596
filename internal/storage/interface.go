package storage

import (
	"context"
)

// Well-known keys. Post caches are namespaced per user id; sessions and
// registered accounts live under fixed keys.
const (
	SessionKey         = "auth_user"
	RegisteredUsersKey = "registered_users"
	PostsKeyPrefix     = "user_posts_"
	GuestPostsKey      = PostsKeyPrefix + "guest"
)

// Repository is the key-value surface backing all persisted client
// state. Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
