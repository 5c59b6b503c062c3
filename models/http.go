package models

import "time"

// Wire types for the Hacker or Snooze REST API. The contract is fixed and
// server-owned: mutating requests carry the session token in the JSON body,
// session restore passes it as a query parameter.

// StoriesResponse is the envelope of GET /stories.
type StoriesResponse struct {
	Stories []Story `json:"stories"`
}

// StoryResponse is the envelope of POST /stories.
type StoryResponse struct {
	Story Story `json:"story"`
}

// CreateStoryRequest is the body of POST /stories.
type CreateStoryRequest struct {
	Token string     `json:"token"`
	Story StoryDraft `json:"story"`
}

// TokenRequest is the body of requests whose only payload is the session
// token: DELETE /stories/:id and both favorite endpoints.
type TokenRequest struct {
	Token string `json:"token"`
}

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	User Credentials `json:"user"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	User Credentials `json:"user"`
}

// Credentials carries the auth fields of signup and login. Name is only set
// on signup.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// UserRecord is the user object embedded in auth responses. The API returns
// the user's submissions under the key "stories"; the client exposes them as
// User.OwnStories.
type UserRecord struct {
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Favorites []Story   `json:"favorites"`
	Stories   []Story   `json:"stories"`
}

// AuthResponse is the envelope of POST /signup and POST /login.
type AuthResponse struct {
	User  UserRecord `json:"user"`
	Token string     `json:"token"`
}

// UserResponse is the envelope of GET /users/:username.
type UserResponse struct {
	User UserRecord `json:"user"`
}

// NewUser builds a User from an API user record and the session token that
// accompanies it.
func NewUser(record UserRecord, token string) *User {
	return &User{
		Username:   record.Username,
		Name:       record.Name,
		CreatedAt:  record.CreatedAt,
		LoginToken: token,
		OwnStories: append([]Story(nil), record.Stories...),
		Favorites:  append([]Story(nil), record.Favorites...),
	}
}
