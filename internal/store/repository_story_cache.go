package store

import (
	"context"
	"fmt"

	"github.com/hacksnooze/snooze-client/internal/logger"
	"github.com/hacksnooze/snooze-client/models"
)

type storyCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewStoryCacheRepository(db *DB, logger *logger.Logger) StoryCacheRepository {
	return &storyCacheRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceAll swaps the cached feed inside a transaction so readers never see
// a half-written cache.
func (r *storyCacheRepository) ReplaceAll(ctx context.Context, stories []models.Story) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin story cache tx: %w", err)
	}
	defer tx.Rollback()

	query, args, err := buildClearStoriesQuery()
	if err != nil {
		return fmt.Errorf("build clear stories query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "storyCacheRepository.ReplaceAll").
			Msg("failed to clear story cache")
		return fmt.Errorf("failed to clear story cache: %w", err)
	}

	for position, story := range stories {
		query, args, err = buildInsertStoryQuery(story, position)
		if err != nil {
			return fmt.Errorf("build insert story query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "storyCacheRepository.ReplaceAll").
				Str("story_id", story.StoryID).
				Msg("failed to cache story")
			return fmt.Errorf("failed to cache story %s: %w", story.StoryID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit story cache tx: %w", err)
	}

	return nil
}

func (r *storyCacheRepository) GetAll(ctx context.Context) ([]models.Story, error) {
	query, args, err := buildSelectStoriesQuery()
	if err != nil {
		return nil, fmt.Errorf("build select stories query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "storyCacheRepository.GetAll").
			Msg("failed to query story cache")
		return nil, fmt.Errorf("failed to query story cache: %w", err)
	}
	defer rows.Close()

	var stories []models.Story
	for rows.Next() {
		var s models.Story
		if err = rows.Scan(&s.StoryID, &s.Title, &s.Author, &s.URL, &s.Username, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cached story: %w", err)
		}
		stories = append(stories, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("story cache rows: %w", err)
	}

	return stories, nil
}
