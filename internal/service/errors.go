package service

import "errors"

var (
	// ErrNotAuthenticated is returned by mutating operations invoked with a
	// user that carries no session token.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSignupOnServer wraps signup failures from the transport layer.
	ErrSignupOnServer = errors.New("signup on server failed")

	// ErrLoginOnServer wraps login failures from the transport layer.
	ErrLoginOnServer = errors.New("login on server failed")
)
