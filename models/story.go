package models

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Story is a single submitted item as returned by the Hacker or Snooze API.
// A Story is immutable after construction; identity between stories is
// defined by StoryID equality, never field-wise comparison.
type Story struct {
	// StoryID is the opaque server-assigned unique identifier.
	StoryID string `json:"storyId"`

	// Title is the headline shown in the feed.
	Title string `json:"title"`

	// Author is the free-text author attribution entered on submit.
	Author string `json:"author"`

	// URL is the absolute link the story points at.
	URL string `json:"url"`

	// Username is the login of the user who submitted the story.
	Username string `json:"username"`

	// CreatedAt is the server-assigned submission timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks that every required field is present. It is called at the
// transport boundary so that a malformed API record fails fast instead of
// producing a story with zero-valued fields.
func (s Story) Validate() error {
	switch {
	case s.StoryID == "":
		return fmt.Errorf("%w: storyId", ErrMissingField)
	case s.Title == "":
		return fmt.Errorf("%w: title", ErrMissingField)
	case s.Author == "":
		return fmt.Errorf("%w: author", ErrMissingField)
	case s.URL == "":
		return fmt.Errorf("%w: url", ErrMissingField)
	case s.Username == "":
		return fmt.Errorf("%w: username", ErrMissingField)
	}
	return nil
}

// HostName parses URL as an absolute URL and returns its host component,
// e.g. "x.com" for "http://x.com/article". Returns ErrInvalidURL (wrapped)
// if the URL cannot be parsed or has no host.
func (s Story) HostName() (string, error) {
	u, err := url.Parse(strings.TrimSpace(s.URL))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidURL, s.URL, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidURL, s.URL)
	}
	return u.Host, nil
}

// StoryDraft carries the three user-supplied fields of a story submission.
// The server assigns StoryID, Username and CreatedAt.
type StoryDraft struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

// Validate checks that all submission fields are filled in before the draft
// is sent to the server.
func (d StoryDraft) Validate() error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return fmt.Errorf("%w: title", ErrMissingField)
	case strings.TrimSpace(d.Author) == "":
		return fmt.Errorf("%w: author", ErrMissingField)
	case strings.TrimSpace(d.URL) == "":
		return fmt.Errorf("%w: url", ErrMissingField)
	}
	if _, err := url.Parse(d.URL); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidURL, d.URL, err)
	}
	return nil
}
