package tui

import (
	"errors"
	"strings"

	"github.com/hacksnooze/snooze-client/internal/adapter"
	"github.com/hacksnooze/snooze-client/internal/service"
)

// humanizeError turns service and transport errors into a short message fit
// for a status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Log in to do that"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Invalid credentials or expired session"
	case errors.Is(err, adapter.ErrConflict):
		return "That username is already taken"
	case errors.Is(err, adapter.ErrNotFound):
		return "Story no longer exists on the server"
	case errors.Is(err, adapter.ErrBadRequest):
		return "The server rejected the request"
	case errors.Is(err, adapter.ErrInvalidResponse):
		return "The server sent an unexpected response"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network unavailable or server unreachable"
	}

	return err.Error()
}
