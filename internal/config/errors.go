package config

import "errors"

var (
	// ErrInvalidBaseURL marks a configured API endpoint that is empty or not
	// a parseable absolute URL.
	ErrInvalidBaseURL = errors.New("invalid api base url")
)
