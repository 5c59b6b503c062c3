// Package store provides the client's local SQLite persistence: the saved
// session (token + username, the localStorage analogue) and an offline cache
// of the story feed.
package store

import (
	"context"

	"github.com/hacksnooze/snooze-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists the single current session. The table holds at
// most one row; saving replaces whatever was there.
type SessionRepository interface {
	// SaveSession upserts the current session row.
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession returns the persisted session, or ErrSessionNotFound
	// (wrapped) when no session has been saved.
	GetSession(ctx context.Context) (models.Session, error)

	// DeleteSession removes the persisted session. Deleting an absent
	// session is a no-op.
	DeleteSession(ctx context.Context) error
}

// StoryCacheRepository mirrors the last successfully fetched feed so the
// client can show something when the API is unreachable. Feed order is
// preserved via an explicit position column.
type StoryCacheRepository interface {
	// ReplaceAll atomically swaps the cached feed for stories.
	ReplaceAll(ctx context.Context, stories []models.Story) error

	// GetAll returns the cached feed in its original order.
	GetAll(ctx context.Context) ([]models.Story, error)
}
