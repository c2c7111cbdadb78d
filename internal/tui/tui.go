// Package tui is the terminal front end of the dealership client: an Elm
// style application model routing between the login, inventory list, vehicle
// detail and vehicle form screens, with background upload progress fed in
// from the event bus.
package tui

import (
	"context"

	"github.com/MKhiriev/dealer-desk/internal/bus"
	"github.com/MKhiriev/dealer-desk/internal/config"
	"github.com/MKhiriev/dealer-desk/internal/logger"
	"github.com/MKhiriev/dealer-desk/internal/service"
	"github.com/MKhiriev/dealer-desk/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	eventBus  *bus.Bus
	maxStaged int
	logger    *logger.Logger
}

func New(services *service.ClientServices, eventBus *bus.Bus, cfg *config.ClientConfig, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		eventBus:  eventBus,
		maxStaged: cfg.Uploads.MaxStagedImages,
		logger:    log,
	}
}

// Run drives the whole interactive session: the login screen when user is
// nil, then the inventory. It returns logout=true when the user signed out,
// in which case the caller restarts the session from the login screen.
func (t *TUI) Run(ctx context.Context, user *models.User) (logout bool, err error) {
	events, cancel := t.eventBus.Subscribe()
	defer cancel()

	model := newAppModel(ctx, t.services, events, t.maxStaged, user, t.logger)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.err != nil {
		return false, result.err
	}
	return result.logout, nil
}
