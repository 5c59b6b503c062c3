package service

import (
	"github.com/hacksnooze/snooze-client/internal/adapter"
	"github.com/hacksnooze/snooze-client/internal/logger"
	"github.com/hacksnooze/snooze-client/internal/store"
)

// ClientServices bundles every service the client application uses.
type ClientServices struct {
	AuthService     ClientAuthService
	StoryService    StoryService
	FavoriteService FavoriteService
	RefreshJob      FeedRefreshJob
}

// NewClientServices wires all services together. Story and favorite services
// share one lock registry so a delete and a favorite toggle of the same story
// never race each other.
func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	locks := newStoryLocks()
	storyService := NewStoryService(localStore, serverAdapter, locks, log)

	return &ClientServices{
		AuthService:     NewClientAuthService(localStore, serverAdapter, log),
		StoryService:    storyService,
		FavoriteService: NewFavoriteService(serverAdapter, locks, log),
		RefreshJob:      NewFeedRefreshJob(storyService, log),
	}
}
