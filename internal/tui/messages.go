package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hacksnooze/snooze-client/models"
)

// NavigateTo switches the active page of [RootModel]. An optional Payload is
// re-delivered to the target page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult finishes the login/signup flow. A nil Err with a nil User means
// the user chose to browse as a guest.
type AuthResult struct {
	User *models.User
	Err  error
}

type feedLoadedMsg struct {
	list      *models.StoryList
	fromCache bool
	err       error
}

type storySubmittedMsg struct {
	story models.Story
	err   error
}

type storyDeletedMsg struct {
	storyID string
	err     error
}

type favoriteToggledMsg struct {
	story models.Story
	added bool
	err   error
}

type clearStatusMsg struct{}
