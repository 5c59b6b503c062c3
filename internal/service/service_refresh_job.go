package service

import (
	"context"
	"sync"
	"time"

	"github.com/hacksnooze/snooze-client/internal/logger"
)

type feedRefreshJob struct {
	storyService StoryService
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFeedRefreshJob creates a feedRefreshJob that calls
// storyService.FetchAll on a ticker, keeping the offline cache warm. The job
// is idle until Start is called.
func NewFeedRefreshJob(storyService StoryService, logger *logger.Logger) FeedRefreshJob {
	return &feedRefreshJob{storyService: storyService, logger: logger}
}

// Start implements [FeedRefreshJob]. It stops any previously running job,
// then launches a background goroutine that refetches the feed every
// interval. If interval is zero or negative it defaults to 5 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *feedRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.storyService.FetchAll(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("background feed refresh failed")
				}
			}
		}
	}()
}

// Stop implements [FeedRefreshJob]. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *feedRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
