package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hacksnooze/snooze-client/internal/logger"
	"github.com/hacksnooze/snooze-client/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	query, args, err := buildUpsertSessionQuery(session)
	if err != nil {
		return fmt.Errorf("build upsert session query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.SaveSession").
			Str("username", session.Username).
			Msg("failed to persist session")
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return nil
}

func (r *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	query, args, err := buildSelectSessionQuery()
	if err != nil {
		return models.Session{}, fmt.Errorf("build select session query: %w", err)
	}

	var session models.Session
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&session.Username, &session.Token, &session.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		r.logger.Err(err).
			Str("func", "sessionRepository.GetSession").
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("failed to scan session row: %w", err)
	}

	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	query, args, err := buildDeleteSessionQuery()
	if err != nil {
		return fmt.Errorf("build delete session query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.DeleteSession").
			Msg("failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
