package service

import "sync"

// storyLocks serializes mutations per story. The upstream API gives no
// ordering guarantee between overlapping requests for the same story (a
// rapid double-toggle of a favorite could resolve in either order), so
// delete and favorite operations take the story's lock for the full
// request-then-mutate span.
//
// Entries are created on demand and never evicted; the map is bounded by
// the number of distinct stories mutated during one session.
type storyLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newStoryLocks() *storyLocks {
	return &storyLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for storyID and returns its unlock function.
func (l *storyLocks) Lock(storyID string) func() {
	l.mu.Lock()
	m, ok := l.locks[storyID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[storyID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
