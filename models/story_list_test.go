package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func story(id string) Story {
	s := validStory()
	s.StoryID = id
	return s
}

func TestStoryListPrepend(t *testing.T) {
	l := NewStoryList([]Story{story("s1"), story("s2")})

	l.Prepend(story("s3"))

	require.Equal(t, 3, l.Len())
	assert.Equal(t, "s3", l.Stories[0].StoryID)
	assert.Equal(t, "s1", l.Stories[1].StoryID)
}

func TestStoryListRemove(t *testing.T) {
	l := NewStoryList([]Story{story("s1"), story("s2"), story("s3")})

	assert.True(t, l.Remove("s2"))
	require.Equal(t, 2, l.Len())
	assert.False(t, l.Contains("s2"))
	assert.Equal(t, "s1", l.Stories[0].StoryID)
	assert.Equal(t, "s3", l.Stories[1].StoryID)
}

func TestStoryListRemove_Absent(t *testing.T) {
	l := NewStoryList([]Story{story("s1")})

	assert.False(t, l.Remove("nope"))
	assert.Equal(t, 1, l.Len())
}

func TestStoryListByID(t *testing.T) {
	l := NewStoryList([]Story{story("s1"), story("s2")})

	got, ok := l.ByID("s2")
	require.True(t, ok)
	assert.Equal(t, "s2", got.StoryID)

	_, ok = l.ByID("missing")
	assert.False(t, ok)
}
