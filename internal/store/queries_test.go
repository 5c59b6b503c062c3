package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hacksnooze/snooze-client/models"
)

func Test_buildUpsertSessionQuery(t *testing.T) {
	session := models.Session{
		Username: "alice",
		Token:    "tok-1",
		SavedAt:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	query, args, err := buildUpsertSessionQuery(session)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into session")
	require.Contains(t, q, "on conflict")
	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")

	require.Len(t, args, 4)
	assert.Equal(t, sessionRowID, args[0])
	assert.Equal(t, "alice", args[1])
	assert.Equal(t, "tok-1", args[2])
}

func Test_buildSelectSessionQuery(t *testing.T) {
	query, args, err := buildSelectSessionQuery()
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from session")
	require.Contains(t, q, "where")

	for _, col := range []string{"username", "token", "saved_at"} {
		require.Contains(t, q, col)
	}

	require.Len(t, args, 1)
	assert.Equal(t, sessionRowID, args[0])
}

func Test_buildInsertStoryQuery(t *testing.T) {
	story := models.Story{
		StoryID:  "s1",
		Title:    "T",
		Author:   "A",
		URL:      "http://x.com",
		Username: "alice",
	}

	query, args, err := buildInsertStoryQuery(story, 3)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into story_cache")
	for _, col := range storyCacheColumns {
		require.Contains(t, q, col)
	}

	require.Len(t, args, 7)
	assert.Equal(t, "s1", args[0])
	assert.Equal(t, 3, args[6])
}

func Test_buildSelectStoriesQuery_OrderedByPosition(t *testing.T) {
	query, args, err := buildSelectStoriesQuery()
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from story_cache")
	require.Contains(t, q, "order by position asc")
	assert.Empty(t, args)
}

func Test_buildClearStoriesQuery(t *testing.T) {
	query, args, err := buildClearStoriesQuery()
	require.NoError(t, err)

	assert.Contains(t, strings.ToLower(query), "delete from story_cache")
	assert.Empty(t, args)
}
