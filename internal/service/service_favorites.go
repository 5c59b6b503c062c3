package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hacksnooze/snooze-client/internal/adapter"
	"github.com/hacksnooze/snooze-client/internal/logger"
	"github.com/hacksnooze/snooze-client/models"
)

type favoriteService struct {
	adapter adapter.ServerAdapter
	locks   *storyLocks
	logger  *logger.Logger
}

func NewFavoriteService(serverAdapter adapter.ServerAdapter, locks *storyLocks, logger *logger.Logger) FavoriteService {
	return &favoriteService{adapter: serverAdapter, locks: locks, logger: logger}
}

// Add implements [FavoriteService]. The local Favorites view is mutated only
// after the server confirmed, and User.AddFavorite deduplicates by StoryID,
// so even two racing adds end with exactly one entry.
func (f *favoriteService) Add(ctx context.Context, user *models.User, story models.Story) error {
	if !user.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	unlock := f.locks.Lock(story.StoryID)
	defer unlock()

	if err := f.updateRemoteFavorite(ctx, http.MethodPost, user, story.StoryID); err != nil {
		f.logger.Warn().Err(err).Str("story_id", story.StoryID).Msg("add favorite failed")
		return err
	}

	user.AddFavorite(story)
	return nil
}

// Remove implements [FavoriteService].
func (f *favoriteService) Remove(ctx context.Context, user *models.User, story models.Story) error {
	if !user.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	unlock := f.locks.Lock(story.StoryID)
	defer unlock()

	if err := f.updateRemoteFavorite(ctx, http.MethodDelete, user, story.StoryID); err != nil {
		f.logger.Warn().Err(err).Str("story_id", story.StoryID).Msg("remove favorite failed")
		return err
	}

	user.RemoveFavorite(story.StoryID)
	return nil
}

// updateRemoteFavorite is the single remote update both operations share,
// parameterized by HTTP verb the way the server contract is.
func (f *favoriteService) updateRemoteFavorite(ctx context.Context, verb string, user *models.User, storyID string) error {
	switch verb {
	case http.MethodPost:
		return f.adapter.AddFavorite(ctx, user.LoginToken, user.Username, storyID)
	case http.MethodDelete:
		return f.adapter.RemoveFavorite(ctx, user.LoginToken, user.Username, storyID)
	default:
		return fmt.Errorf("unsupported favorite verb %q", verb)
	}
}
