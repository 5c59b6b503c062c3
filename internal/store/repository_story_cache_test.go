package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hacksnooze/snooze-client/internal/logger"
	"github.com/hacksnooze/snooze-client/models"
)

func newStoryCacheRepo(t *testing.T) (StoryCacheRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewStoryCacheRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop())
	return repo, mock
}

func cachedStory(id string, createdAt time.Time) models.Story {
	return models.Story{
		StoryID:   id,
		Title:     "Title " + id,
		Author:    "Author",
		URL:       "http://x.com/" + id,
		Username:  "alice",
		CreatedAt: createdAt,
	}
}

func TestStoryCacheRepository_ReplaceAll(t *testing.T) {
	repo, mock := newStoryCacheRepo(t)

	createdAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	stories := []models.Story{cachedStory("s1", createdAt), cachedStory("s2", createdAt)}

	clearQuery, _, err := buildClearStoriesQuery()
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(clearQuery)).WillReturnResult(sqlmock.NewResult(0, 0))
	for position, story := range stories {
		insertQuery, _, qerr := buildInsertStoryQuery(story, position)
		require.NoError(t, qerr)
		mock.ExpectExec(regexp.QuoteMeta(insertQuery)).
			WithArgs(story.StoryID, story.Title, story.Author, story.URL, story.Username, story.CreatedAt, position).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceAll(context.Background(), stories))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoryCacheRepository_ReplaceAll_RollsBackOnFailure(t *testing.T) {
	repo, mock := newStoryCacheRepo(t)

	createdAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	stories := []models.Story{cachedStory("s1", createdAt)}

	clearQuery, _, err := buildClearStoriesQuery()
	require.NoError(t, err)
	insertQuery, _, err := buildInsertStoryQuery(stories[0], 0)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(clearQuery)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(insertQuery)).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = repo.ReplaceAll(context.Background(), stories)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoryCacheRepository_GetAll_PreservesOrder(t *testing.T) {
	repo, mock := newStoryCacheRepo(t)

	createdAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	query, _, err := buildSelectStoriesQuery()
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(sqlmock.NewRows([]string{"story_id", "title", "author", "url", "username", "created_at"}).
			AddRow("s1", "Title s1", "Author", "http://x.com/s1", "alice", createdAt).
			AddRow("s2", "Title s2", "Author", "http://x.com/s2", "alice", createdAt))

	stories, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, "s1", stories[0].StoryID)
	assert.Equal(t, "s2", stories[1].StoryID)
}

func TestStoryCacheRepository_GetAll_Empty(t *testing.T) {
	repo, mock := newStoryCacheRepo(t)

	query, _, err := buildSelectStoriesQuery()
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WillReturnRows(sqlmock.NewRows([]string{"story_id", "title", "author", "url", "username", "created_at"}))

	stories, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stories)
}
