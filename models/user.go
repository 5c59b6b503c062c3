package models

import "time"

// User is an authenticated session: identity fields, the credential token
// required on every mutating API call, and the two derived story views the
// server embeds in auth responses.
//
// OwnStories and Favorites are independent membership sets over Story values.
// A story may simultaneously be in both and in the global StoryList; the
// service layer keeps the three containers coherent. The mutators below are
// purely local and must only be called after the corresponding remote
// operation has succeeded.
type User struct {
	// Username is the unique login identifier.
	Username string `json:"username"`

	// Name is the display name, non-sensitive.
	Name string `json:"name"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"createdAt"`

	// LoginToken is the opaque session credential issued at signup/login.
	// An empty token means "not authenticated".
	LoginToken string `json:"-"`

	// OwnStories are the stories submitted by this user, newest first.
	OwnStories []Story `json:"-"`

	// Favorites are the stories this user has marked favorite.
	Favorites []Story `json:"-"`
}

// IsAuthenticated reports whether the user carries a session token.
func (u *User) IsAuthenticated() bool {
	return u != nil && u.LoginToken != ""
}

// IsFavorite reports whether story is in the user's favorites, keyed by
// StoryID equality.
func (u *User) IsFavorite(story Story) bool {
	return containsID(u.Favorites, story.StoryID)
}

// IsOwnStory reports whether story was submitted by this user, keyed by
// StoryID equality against OwnStories.
func (u *User) IsOwnStory(story Story) bool {
	return containsID(u.OwnStories, story.StoryID)
}

// AddFavorite appends story to Favorites unless a story with the same
// StoryID is already present, so duplicate confirmations from racing
// requests cannot produce a double entry.
func (u *User) AddFavorite(story Story) {
	if containsID(u.Favorites, story.StoryID) {
		return
	}
	u.Favorites = append(u.Favorites, story)
}

// RemoveFavorite deletes every favorite with the given StoryID.
func (u *User) RemoveFavorite(storyID string) {
	u.Favorites = removeID(u.Favorites, storyID)
}

// PrependOwnStory inserts story at the front of OwnStories.
func (u *User) PrependOwnStory(story Story) {
	u.OwnStories = append([]Story{story}, u.OwnStories...)
}

// RemoveStory deletes the story with the given StoryID from both OwnStories
// and Favorites. A deleted story cannot legally remain owned or favorited.
func (u *User) RemoveStory(storyID string) {
	u.OwnStories = removeID(u.OwnStories, storyID)
	u.Favorites = removeID(u.Favorites, storyID)
}

func containsID(stories []Story, storyID string) bool {
	for _, s := range stories {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}

func removeID(stories []Story, storyID string) []Story {
	kept := stories[:0]
	for _, s := range stories {
		if s.StoryID != storyID {
			kept = append(kept, s)
		}
	}
	return kept
}
