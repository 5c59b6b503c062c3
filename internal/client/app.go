package client

import (
	"context"
	"errors"

	"github.com/hacksnooze/snooze-client/internal/config"
	"github.com/hacksnooze/snooze-client/internal/logger"
	"github.com/hacksnooze/snooze-client/internal/service"
	"github.com/hacksnooze/snooze-client/internal/tui"
)

// App ties the service layer, the terminal UI, and the background feed
// refresh job into one process lifecycle.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and a ui")
	}
	return &App{services: services, tui: ui, workers: workers, logger: log}, nil
}

// Run starts the client. A persisted session is restored silently when
// possible; otherwise the login flow decides between authenticating and guest
// browsing. Logging out from the main loop discards the session and returns
// to the login flow.
func (a *App) Run() error {
	ctx := context.Background()

	user, restored := a.services.AuthService.RestoreSession(ctx)
	if restored {
		a.logger.Info().Str("username", user.Username).Msg("session restored")
	} else {
		var err error
		user, err = a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	a.services.RefreshJob.Start(ctx, a.workers.RefreshInterval)
	defer a.services.RefreshJob.Stop()

	logout, err := a.tui.MainLoop(ctx, user)
	if err != nil {
		return err
	}
	if logout {
		if err = a.services.AuthService.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("logout failed")
		}
		a.services.RefreshJob.Stop()
		return a.Run()
	}

	return nil
}
