package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/dealer-desk/internal/bus"
	"github.com/MKhiriev/dealer-desk/internal/logger"
	"github.com/MKhiriev/dealer-desk/internal/service"
	"github.com/MKhiriev/dealer-desk/internal/tui"
)

// App ties the session restore, the interactive UI and the background
// uploads into one run loop.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	eventBus *bus.Bus
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, eventBus *bus.Bus, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil || eventBus == nil {
		return nil, fmt.Errorf("client app: missing dependencies")
	}
	return &App{
		services: services,
		ui:       ui,
		eventBus: eventBus,
		logger:   log,
	}, nil
}

// Run blocks until the user quits. A logout restarts the UI from the login
// screen; on exit every in-flight upload batch is drained before the bus is
// shut down.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	defer func() {
		a.services.UploadService.Wait()
		a.eventBus.Close()
	}()

	user := a.services.AuthService.Restore()
	if user != nil {
		a.logger.Info().Str("username", user.Username).Msg("session restored")
	}

	for {
		logout, err := a.ui.Run(ctx, user)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("run ui: %w", err)
		}
		if !logout {
			return nil
		}
		a.logger.Info().Msg("logged out")
		user = nil
	}
}

var _ Client = (*App)(nil)
