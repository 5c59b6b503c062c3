package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStory() Story {
	return Story{
		StoryID:   "s1",
		Title:     "A",
		Author:    "B",
		URL:       "http://x.com",
		Username:  "alice",
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStoryValidate_Success(t *testing.T) {
	require.NoError(t, validStory().Validate())
}

func TestStoryValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Story)
	}{
		{"no storyId", func(s *Story) { s.StoryID = "" }},
		{"no title", func(s *Story) { s.Title = "" }},
		{"no author", func(s *Story) { s.Author = "" }},
		{"no url", func(s *Story) { s.URL = "" }},
		{"no username", func(s *Story) { s.Username = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validStory()
			tt.mutate(&s)

			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestStoryHostName(t *testing.T) {
	s := validStory()

	host, err := s.HostName()
	require.NoError(t, err)
	assert.Equal(t, "x.com", host)
}

func TestStoryHostName_WithPathAndPort(t *testing.T) {
	s := validStory()
	s.URL = "https://news.example.org:8443/item?id=42"

	host, err := s.HostName()
	require.NoError(t, err)
	assert.Equal(t, "news.example.org:8443", host)
}

func TestStoryHostName_InvalidURL(t *testing.T) {
	s := validStory()
	s.URL = "not a url"

	_, err := s.HostName()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestStoryDraftValidate(t *testing.T) {
	draft := StoryDraft{Title: "A", Author: "B", URL: "http://x.com"}
	require.NoError(t, draft.Validate())

	draft.Title = "  "
	err := draft.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)
}
