// Package service implements the client-side business logic over the server
// adapter: authentication and session persistence, story feed management,
// favorite toggling, and the background feed refresh job.
//
// The services own the one real invariant of the client: the three
// in-memory containers over stories (the feed StoryList, User.OwnStories,
// User.Favorites) must stay coherent. Every mutating operation performs the
// network round trip first and touches local state only after the server has
// confirmed, so a failed call leaves all three containers untouched.
package service

import (
	"context"
	"time"

	"github.com/hacksnooze/snooze-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientAuthService defines signup, login, and session lifecycle. Successful
// signup/login persists the session locally so the next run can restore it.
type ClientAuthService interface {
	// Signup registers a new account and returns the authenticated User with
	// OwnStories/Favorites populated from the response. Returns a wrapped
	// adapter.ErrConflict on a duplicate username.
	Signup(ctx context.Context, username, password, name string) (*models.User, error)

	// Login authenticates existing credentials. Returns a wrapped
	// adapter.ErrUnauthorized on bad credentials.
	Login(ctx context.Context, username, password string) (*models.User, error)

	// RestoreSession re-authenticates with the locally persisted token. It
	// soft-fails by design: any failure (no saved session, expired token,
	// network error, unknown user) is logged and reported as (nil, false) so
	// startup is never blocked.
	RestoreSession(ctx context.Context) (*models.User, bool)

	// Logout discards the persisted session.
	Logout(ctx context.Context) error
}

// StoryService defines feed reads and story mutations.
type StoryService interface {
	// FetchAll fetches the full feed, writes it through to the local story
	// cache, and returns a fresh StoryList in server response order.
	// Failures propagate; no stale list is substituted.
	FetchAll(ctx context.Context) (*models.StoryList, error)

	// FetchCached returns the last successfully fetched feed from the local
	// cache. Used as an offline fallback after FetchAll fails.
	FetchCached(ctx context.Context) (*models.StoryList, error)

	// Add submits draft on behalf of user and, on success, prepends the
	// server-populated story to both list and user.OwnStories. On failure no
	// local state changes.
	Add(ctx context.Context, user *models.User, list *models.StoryList, draft models.StoryDraft) (models.Story, error)

	// Remove deletes the story server-side first and only then prunes it
	// from list, user.OwnStories, and user.Favorites together. Removing an
	// already-removed story returns the server's wrapped adapter.ErrNotFound
	// and leaves local state untouched.
	Remove(ctx context.Context, user *models.User, list *models.StoryList, storyID string) error
}

// FavoriteService defines the favorite marking relation. Both operations
// share one remote update parameterized by HTTP verb, mirroring the
// server contract. Local Favorites are only mutated after server
// confirmation, and errors are returned to the caller rather than swallowed,
// so the presentation layer decides how to surface them.
type FavoriteService interface {
	// Add marks story as a favorite of user. Idempotent locally: duplicate
	// confirmations cannot produce a double entry.
	Add(ctx context.Context, user *models.User, story models.Story) error

	// Remove clears the favorite mark of user on story.
	Remove(ctx context.Context, user *models.User, story models.Story) error
}

// FeedRefreshJob is a background worker that keeps the offline story cache
// fresh by refetching the feed on a ticker.
type FeedRefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
