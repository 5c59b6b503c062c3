package models

import "time"

// Session is the locally persisted credential pair that lets the client
// re-authenticate on startup without prompting for a password, the terminal
// analogue of the browser's localStorage token.
type Session struct {
	// Username is the login the token was issued for.
	Username string

	// Token is the opaque session credential issued at signup/login.
	Token string

	// SavedAt is when the session was last persisted.
	SavedAt time.Time
}
