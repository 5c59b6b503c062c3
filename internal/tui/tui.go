package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hacksnooze/snooze-client/internal/logger"
	"github.com/hacksnooze/snooze-client/internal/service"
	"github.com/hacksnooze/snooze-client/models"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// LoginFlow runs the menu/login/signup pages until the user either
// authenticates, chooses to browse as a guest (nil user), or quits.
func (t *TUI) LoginFlow(ctx context.Context) (*models.User, error) {
	pages := map[string]tea.Model{
		"menu":   NewMenuModel(),
		"login":  NewLoginModel(ctx, t.services.AuthService),
		"signup": NewSignupModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return nil, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return nil, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoop runs the story browser until the user quits or logs out. A nil
// user browses the feed read-only.
func (t *TUI) MainLoop(ctx context.Context, user *models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
