// Package adapter provides the transport layer for communicating with the
// hosted Hacker or Snooze REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/hacksnooze/snooze-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Hacker or
// Snooze API. The session token is passed explicitly on every authenticated
// call rather than held in adapter state, so a single adapter can serve any
// session. Implementations are responsible for serialisation, token
// placement (request body for mutations, query parameter for user fetch, as
// the upstream contract demands), and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// ListStories fetches the full story feed. No authentication required.
	// The returned slice preserves server response order. Every record is
	// schema-validated; a malformed record fails the whole call.
	ListStories(ctx context.Context) ([]models.Story, error)

	// CreateStory submits a new story draft. The server assigns StoryID,
	// Username and CreatedAt; the fully populated story is returned.
	CreateStory(ctx context.Context, token string, draft models.StoryDraft) (models.Story, error)

	// DeleteStory removes the story with the given ID. Returns ErrNotFound
	// (wrapped) if the server no longer knows the story.
	DeleteStory(ctx context.Context, token, storyID string) error

	// Signup registers a new account and returns the created user record
	// together with the issued session token. Returns ErrConflict (wrapped)
	// on a duplicate username.
	Signup(ctx context.Context, creds models.Credentials) (models.UserRecord, string, error)

	// Login authenticates existing credentials and returns the user record
	// plus a fresh session token. Returns ErrUnauthorized (wrapped) on bad
	// credentials.
	Login(ctx context.Context, creds models.Credentials) (models.UserRecord, string, error)

	// FetchUser re-fetches the user record for a previously issued token.
	// Used by session restore; the token travels as a query parameter.
	FetchUser(ctx context.Context, token, username string) (models.UserRecord, error)

	// AddFavorite marks the story as a favorite of username.
	AddFavorite(ctx context.Context, token, username, storyID string) error

	// RemoveFavorite clears the favorite mark of username on the story.
	RemoveFavorite(ctx context.Context, token, username, storyID string) error
}
