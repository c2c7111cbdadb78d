package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dealer-desk/internal/adapter"
	"github.com/MKhiriev/dealer-desk/internal/logger"
	"github.com/MKhiriev/dealer-desk/internal/store"
	"github.com/MKhiriev/dealer-desk/models"
)

type clientAuthService struct {
	sessions store.SessionStore
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
}

func NewClientAuthService(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, logger: log}
}

// Login implements [ClientAuthService]. On success the token and identity
// are persisted together; a persistence failure is logged but does not fail
// the login, since the adapter already holds the token for this run.
func (a *clientAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	resp, err := a.adapter.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	user := models.User{Username: resp.Username, Role: resp.Role}
	if err = a.sessions.Save(models.Session{Token: resp.Token, User: user}); err != nil {
		a.logger.Error().Err(err).Msg("persist session after login")
	}

	return user, nil
}

// Logout implements [ClientAuthService]. The backend notification is best
// effort; clearing runs even when it fails.
func (a *clientAuthService) Logout(ctx context.Context) {
	if a.sessions.Token() != "" {
		if err := a.adapter.Logout(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("logout notification failed")
		}
	}

	if err := a.sessions.Clear(); err != nil {
		a.logger.Error().Err(err).Msg("clear session")
	}
	a.adapter.SetToken("")
}

// Restore implements [ClientAuthService].
func (a *clientAuthService) Restore() *models.User {
	token := a.sessions.Token()
	if token == "" {
		return nil
	}

	user := a.sessions.User()
	if user == nil {
		return nil
	}

	a.adapter.SetToken(token)
	return user
}

// User implements [ClientAuthService].
func (a *clientAuthService) User() *models.User {
	return a.sessions.User()
}

// IsLoggedIn implements [ClientAuthService].
func (a *clientAuthService) IsLoggedIn() bool {
	return a.sessions.IsLoggedIn()
}
