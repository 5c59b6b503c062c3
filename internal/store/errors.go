package store

import "errors"

var (
	// ErrSessionNotFound means no session row has been persisted yet.
	ErrSessionNotFound = errors.New("local session not found")
)
