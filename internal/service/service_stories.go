package service

import (
	"context"
	"fmt"

	"github.com/hacksnooze/snooze-client/internal/adapter"
	"github.com/hacksnooze/snooze-client/internal/logger"
	"github.com/hacksnooze/snooze-client/internal/store"
	"github.com/hacksnooze/snooze-client/models"
)

type storyService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	locks      *storyLocks
	logger     *logger.Logger
}

func NewStoryService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, locks *storyLocks, logger *logger.Logger) StoryService {
	return &storyService{localStore: localStore, adapter: serverAdapter, locks: locks, logger: logger}
}

// FetchAll implements [StoryService]. The fetched feed is written through to
// the local cache; a cache write failure is logged but does not fail the
// fetch, since the fresh list is already in hand.
func (s *storyService) FetchAll(ctx context.Context) (*models.StoryList, error) {
	stories, err := s.adapter.ListStories(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch stories: %w", err)
	}

	if cacheErr := s.localStore.StoryCacheRepository.ReplaceAll(ctx, stories); cacheErr != nil {
		s.logger.Warn().Err(cacheErr).Msg("failed to refresh story cache")
	}

	return models.NewStoryList(stories), nil
}

// FetchCached implements [StoryService].
func (s *storyService) FetchCached(ctx context.Context) (*models.StoryList, error) {
	stories, err := s.localStore.StoryCacheRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read story cache: %w", err)
	}

	return models.NewStoryList(stories), nil
}

// Add implements [StoryService]. The server assigns StoryID, Username and
// CreatedAt; local mirrors are updated only after the create succeeded, so a
// failed call changes nothing.
func (s *storyService) Add(ctx context.Context, user *models.User, list *models.StoryList, draft models.StoryDraft) (models.Story, error) {
	if !user.IsAuthenticated() {
		return models.Story{}, ErrNotAuthenticated
	}
	if err := draft.Validate(); err != nil {
		return models.Story{}, fmt.Errorf("validate story draft: %w", err)
	}

	story, err := s.adapter.CreateStory(ctx, user.LoginToken, draft)
	if err != nil {
		return models.Story{}, fmt.Errorf("create story: %w", err)
	}

	list.Prepend(story)
	user.PrependOwnStory(story)

	s.logger.Info().Str("story_id", story.StoryID).Msg("story submitted")
	return story, nil
}

// Remove implements [StoryService]. The delete request is sent first; the
// three local containers are pruned together only on success, so partial
// pruning cannot occur. A second remove of the same ID propagates the
// server's not-found error with local state already clean.
func (s *storyService) Remove(ctx context.Context, user *models.User, list *models.StoryList, storyID string) error {
	if !user.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	unlock := s.locks.Lock(storyID)
	defer unlock()

	if err := s.adapter.DeleteStory(ctx, user.LoginToken, storyID); err != nil {
		return fmt.Errorf("delete story: %w", err)
	}

	list.Remove(storyID)
	user.RemoveStory(storyID)

	s.logger.Info().Str("story_id", storyID).Msg("story removed")
	return nil
}
