package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hacksnooze/snooze-client/internal/adapter"
	"github.com/hacksnooze/snooze-client/internal/logger"
	"github.com/hacksnooze/snooze-client/internal/store"
	"github.com/hacksnooze/snooze-client/internal/utils"
	"github.com/hacksnooze/snooze-client/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Signup(ctx context.Context, username, password, name string) (*models.User, error) {
	record, token, err := a.adapter.Signup(ctx, models.Credentials{
		Username: username,
		Password: password,
		Name:     name,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSignupOnServer, err)
	}

	user := models.NewUser(record, token)
	a.persistSession(ctx, user)

	return user, nil
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	record, token, err := a.adapter.Login(ctx, models.Credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	user := models.NewUser(record, token)
	a.persistSession(ctx, user)

	return user, nil
}

// RestoreSession implements [ClientAuthService]. Every failure path logs and
// returns (nil, false): restore runs unconditionally on startup and must
// never block the UI. A token whose expiry claim is already in the past is
// discarded without a round trip.
func (a *clientAuthService) RestoreSession(ctx context.Context) (*models.User, bool) {
	session, err := a.localStore.SessionRepository.GetSession(ctx)
	if err != nil {
		a.logger.Debug().Err(err).Msg("no restorable session")
		return nil, false
	}

	if utils.TokenExpired(session.Token, time.Now()) {
		a.logger.Info().Str("username", session.Username).Msg("stored token expired, discarding session")
		if err = a.localStore.SessionRepository.DeleteSession(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("failed to discard expired session")
		}
		return nil, false
	}

	record, err := a.adapter.FetchUser(ctx, session.Token, session.Username)
	if err != nil {
		a.logger.Warn().Err(err).Str("username", session.Username).Msg("session restore failed")
		return nil, false
	}

	return models.NewUser(record, session.Token), true
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.localStore.SessionRepository.DeleteSession(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	return nil
}

// persistSession saves the credential pair for the next run. Persistence
// failure is logged but does not fail the login: the in-memory session is
// already valid.
func (a *clientAuthService) persistSession(ctx context.Context, user *models.User) {
	err := a.localStore.SessionRepository.SaveSession(ctx, models.Session{
		Username: user.Username,
		Token:    user.LoginToken,
		SavedAt:  time.Now(),
	})
	if err != nil {
		a.logger.Warn().Err(err).Str("username", user.Username).Msg("failed to persist session")
	}
}
