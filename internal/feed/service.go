// Package feed manages the post feed: listing, publishing, and the
// per-user post cache in the local key-value store.
package feed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlistairHeus/feed-assignment/internal/dbx"
	"github.com/AlistairHeus/feed-assignment/internal/logging"
	"github.com/AlistairHeus/feed-assignment/internal/models"
	"github.com/AlistairHeus/feed-assignment/internal/storage"
	"github.com/google/uuid"
)

var (
	// ErrNotImplemented marks interactions the prototype deliberately
	// does not support (like, comment, share).
	ErrNotImplemented = errors.New("not implemented")

	// ErrEmptyPost is returned when a publish has no content after
	// trimming whitespace.
	ErrEmptyPost = errors.New("post content is empty")
)

// seedPosts populate an empty feed so the page never renders blank.
var seedPosts = []models.Post{
	{Author: "Sample User 1", Content: "This is a sample post content.", Timestamp: "2 hours ago", IsDemoPost: true},
	{Author: "Sample User 2", Content: "This is a sample post content.", Timestamp: "2 hours ago", IsDemoPost: true},
	{Author: "Sample User 3", Content: "This is a sample post content.", Timestamp: "2 hours ago", IsDemoPost: true},
}

// Service loads and mutates the post cache for a user. Each user's
// posts live under their own key; anonymous browsing uses a shared
// guest key.
type Service struct {
	db  *sql.DB
	log logging.Logger
	now func() time.Time
}

// NewService constructs a feed Service over the given database handle.
func NewService(db *sql.DB, log logging.Logger) *Service {
	return &Service{db: db, log: log.With("component", "feed"), now: time.Now}
}

// List returns the posts cached for user, newest first. An empty or
// corrupt cache is (re)seeded with the sample posts and persisted.
func (s *Service) List(ctx context.Context, user *models.User) ([]models.Post, error) {
	repo := storage.NewSQLiteRepository(s.db)
	key := s.postsKey(user)

	data, err := repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if data != nil {
		posts, err := models.DecodePostsRecord(data)
		if err == nil {
			return posts, nil
		}
		s.log.Warn(ctx, "discarding corrupt post cache", "key", key, "error", err)
	}

	return s.seed(ctx, repo, key)
}

// Publish prepends a post authored by user to their cache. The content
// is trimmed; publishing nothing is an error. Whether the caller is
// allowed to publish (i.e. signed in) is the presentation layer's
// concern.
func (s *Service) Publish(ctx context.Context, user *models.User, content string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyPost
	}

	post := models.Post{
		Id:        uuid.NewString(),
		Author:    authorName(user),
		Content:   content,
		Timestamp: "Just now",
		CreatedAt: s.now().UnixMilli(),
	}
	if user != nil {
		post.UserId = user.Id
		post.Avatar = user.Avatar
	}

	key := s.postsKey(user)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)

		posts, err := s.load(ctx, repo, key)
		if err != nil {
			return err
		}

		posts = append([]models.Post{post}, posts...)
		data, err := models.EncodePostsRecord(posts)
		if err != nil {
			return fmt.Errorf("failed to encode post cache: %w", err)
		}
		return repo.Set(ctx, key, data)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Like is a placeholder for a future interaction.
func (s *Service) Like(ctx context.Context, postId string) error {
	return ErrNotImplemented
}

// Comment is a placeholder for a future interaction.
func (s *Service) Comment(ctx context.Context, postId string) error {
	return ErrNotImplemented
}

// Share is a placeholder for a future interaction.
func (s *Service) Share(ctx context.Context, postId string) error {
	return ErrNotImplemented
}

// load reads the cache under key, treating a missing value as empty and
// a corrupt one as empty after logging.
func (s *Service) load(ctx context.Context, repo storage.Repository, key string) ([]models.Post, error) {
	data, err := repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	posts, err := models.DecodePostsRecord(data)
	if err != nil {
		s.log.Warn(ctx, "discarding corrupt post cache", "key", key, "error", err)
		return nil, nil
	}
	return posts, nil
}

// seed writes the sample posts under key and returns them.
func (s *Service) seed(ctx context.Context, repo storage.Repository, key string) ([]models.Post, error) {
	base := s.now().UnixMilli()
	posts := make([]models.Post, len(seedPosts))
	for i, p := range seedPosts {
		p.Id = uuid.NewString()
		p.CreatedAt = base - int64(i+1)
		posts[i] = p
	}

	data, err := models.EncodePostsRecord(posts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode post cache: %w", err)
	}
	if err := repo.Set(ctx, key, data); err != nil {
		return nil, err
	}
	return posts, nil
}

// postsKey namespaces the cache per user id with a guest fallback.
func (s *Service) postsKey(user *models.User) string {
	if user == nil || user.Id == "" {
		return storage.GuestPostsKey
	}
	return storage.PostsKeyPrefix + user.Id
}

func authorName(user *models.User) string {
	switch {
	case user == nil:
		return "Anonymous"
	case user.Username != "":
		return user.Username
	case user.Email != "":
		return user.Email
	default:
		return "Anonymous"
	}
}
