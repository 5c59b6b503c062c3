package models

// StoryList is the ordered in-memory mirror of the feed. Insertion order is
// display order: the server's response order after a fetch, most-recent-first
// after local inserts.
//
// StoryList never talks to the network itself. The service layer performs the
// remote call and mutates the list only after the server has confirmed the
// operation, so the mirror can never claim state the server rejected.
type StoryList struct {
	Stories []Story
}

// NewStoryList wraps stories in a StoryList, preserving their order.
func NewStoryList(stories []Story) *StoryList {
	return &StoryList{Stories: stories}
}

// Prepend inserts story at the front of the list.
func (l *StoryList) Prepend(story Story) {
	l.Stories = append([]Story{story}, l.Stories...)
}

// Remove deletes every story whose StoryID equals storyID and reports whether
// anything was removed. Relative order of the remaining stories is preserved.
func (l *StoryList) Remove(storyID string) bool {
	kept := l.Stories[:0]
	removed := false
	for _, s := range l.Stories {
		if s.StoryID == storyID {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	l.Stories = kept
	return removed
}

// ByID returns the story with the given StoryID, if present.
func (l *StoryList) ByID(storyID string) (Story, bool) {
	for _, s := range l.Stories {
		if s.StoryID == storyID {
			return s, true
		}
	}
	return Story{}, false
}

// Contains reports whether a story with the given StoryID is in the list.
func (l *StoryList) Contains(storyID string) bool {
	_, ok := l.ByID(storyID)
	return ok
}

// Len returns the number of stories in the list.
func (l *StoryList) Len() int {
	return len(l.Stories)
}
