package models

import "errors"

var (
	// ErrInvalidURL marks a story URL that cannot be parsed as an absolute URL.
	ErrInvalidURL = errors.New("invalid story url")

	// ErrMissingField marks an API record that arrived without a required field.
	ErrMissingField = errors.New("missing required field")
)
