package service

import (
	"context"
	"testing"
	"time"

	"github.com/hacksnooze/snooze-client/internal/logger"
	"github.com/hacksnooze/snooze-client/internal/mock"
	"github.com/hacksnooze/snooze-client/models"
	"go.uber.org/mock/gomock"
)

func TestFeedRefreshJob_RefreshesOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStories := mock.NewMockStoryService(ctrl)
	job := NewFeedRefreshJob(mockStories, logger.Nop())

	ticked := make(chan struct{})
	mockStories.EXPECT().
		FetchAll(gomock.Any()).
		DoAndReturn(func(context.Context) (*models.StoryList, error) {
			select {
			case ticked <- struct{}{}:
			default:
			}
			return models.NewStoryList(nil), nil
		}).
		MinTimes(1)

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh job never ticked")
	}
}

func TestFeedRefreshJob_StopTerminatesGoroutine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStories := mock.NewMockStoryService(ctrl)
	mockStories.EXPECT().
		FetchAll(gomock.Any()).
		Return(models.NewStoryList(nil), nil).
		AnyTimes()

	job := NewFeedRefreshJob(mockStories, logger.Nop())
	job.Start(context.Background(), 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	// Stop blocks until the goroutine exits, so a second Stop must be a
	// harmless no-op.
	job.Stop()
}

func TestFeedRefreshJob_RestartReplacesPreviousJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStories := mock.NewMockStoryService(ctrl)
	mockStories.EXPECT().
		FetchAll(gomock.Any()).
		Return(models.NewStoryList(nil), nil).
		AnyTimes()

	job := NewFeedRefreshJob(mockStories, logger.Nop())
	job.Start(context.Background(), 5*time.Millisecond)
	job.Start(context.Background(), 5*time.Millisecond)
	job.Stop()
}
