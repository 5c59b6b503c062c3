package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hacksnooze/snooze-client/internal/logger"
	"github.com/hacksnooze/snooze-client/models"
)

func newSessionRepo(t *testing.T) (SessionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewSessionRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop())
	return repo, mock
}

func TestSessionRepository_SaveSession(t *testing.T) {
	repo, mock := newSessionRepo(t)

	session := models.Session{
		Username: "alice",
		Token:    "tok-1",
		SavedAt:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	query, _, err := buildUpsertSessionQuery(session)
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(sessionRowID, "alice", "tok-1", session.SavedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveSession(context.Background(), session))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_GetSession(t *testing.T) {
	repo, mock := newSessionRepo(t)

	savedAt := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	query, _, err := buildSelectSessionQuery()
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(sessionRowID).
		WillReturnRows(sqlmock.NewRows([]string{"username", "token", "saved_at"}).
			AddRow("alice", "tok-1", savedAt))

	session, err := repo.GetSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, "tok-1", session.Token)
	assert.Equal(t, savedAt, session.SavedAt)
}

func TestSessionRepository_GetSession_NotFound(t *testing.T) {
	repo, mock := newSessionRepo(t)

	query, _, err := buildSelectSessionQuery()
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(sessionRowID).
		WillReturnRows(sqlmock.NewRows([]string{"username", "token", "saved_at"}))

	_, err = repo.GetSession(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepository_DeleteSession(t *testing.T) {
	repo, mock := newSessionRepo(t)

	query, _, err := buildDeleteSessionQuery()
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs(sessionRowID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteSession(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
