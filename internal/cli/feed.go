package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlistairHeus/feed-assignment/internal/feed"
	"github.com/AlistairHeus/feed-assignment/internal/session"
)

// List prints the feed for the current user (or the guest feed when
// signed out), newest first.
func (a *App) List(ctx context.Context) error {
	coordinator := session.FromContext(ctx)

	posts, err := a.feedService.List(ctx, coordinator.Auth().User)
	if err != nil {
		a.log.Error(ctx, "failed to load feed", "error", err)
		return err
	}

	for _, p := range posts {
		printlnFn(fmt.Sprintf("%s · %s", p.Author, p.Timestamp))
		printlnFn(p.Content)
		printlnFn("")
	}
	return nil
}

// Publish prompts for post content and publishes it. Signed-out users
// are sent to the sign-in dialog instead, mirroring the original page.
func (a *App) Publish(ctx context.Context) error {
	coordinator := session.FromContext(ctx)

	auth := coordinator.Auth()
	if !auth.IsAuthenticated {
		coordinator.OpenModal(session.ModalSignIn)
		printlnFn("Sign in to publish a post")
		return nil
	}

	content, err := GetMultiline(a.reader, "What's on your mind?", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.feedService.Publish(ctx, auth.User, content); err != nil {
		if errors.Is(err, feed.ErrEmptyPost) {
			printlnFn("Nothing to publish")
			return nil
		}
		a.log.Error(ctx, "failed to publish post", "error", err)
		return err
	}

	printlnFn("Published!")
	return nil
}

// Like reacts to a post. Not implemented yet.
func (a *App) Like(ctx context.Context) error {
	return a.interact(ctx, "Like", a.feedService.Like)
}

// Comment comments on a post. Not implemented yet.
func (a *App) Comment(ctx context.Context) error {
	return a.interact(ctx, "Comment", a.feedService.Comment)
}

// Share shares a post. Not implemented yet.
func (a *App) Share(ctx context.Context) error {
	return a.interact(ctx, "Share", a.feedService.Share)
}

// interact gates a feed interaction on being signed in, then reports
// the stubbed outcome.
func (a *App) interact(ctx context.Context, action string, fn func(context.Context, string) error) error {
	coordinator := session.FromContext(ctx)

	if !coordinator.Auth().IsAuthenticated {
		coordinator.OpenModal(session.ModalSignIn)
		printlnFn("Sign in to " + action + " posts")
		return nil
	}

	if err := fn(ctx, ""); err != nil {
		if errors.Is(err, feed.ErrNotImplemented) {
			printlnFn(action + " functionality not implemented yet")
			return nil
		}
		return err
	}
	return nil
}
