package service

import (
	"github.com/MKhiriev/dealer-desk/internal/adapter"
	"github.com/MKhiriev/dealer-desk/internal/bus"
	"github.com/MKhiriev/dealer-desk/internal/config"
	"github.com/MKhiriev/dealer-desk/internal/logger"
	"github.com/MKhiriev/dealer-desk/internal/store"
)

// ClientServices bundles every client-side service behind one handle for
// wiring into the TUI and the app shell.
type ClientServices struct {
	AuthService   ClientAuthService
	CarsService   ClientCarsService
	UploadService ClientUploadService
}

func NewClientServices(sessions store.SessionStore, serverAdapter adapter.ServerAdapter, eventBus *bus.Bus, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:   NewClientAuthService(sessions, serverAdapter, log),
		CarsService:   NewClientCarsService(serverAdapter, eventBus, log),
		UploadService: NewClientUploadService(serverAdapter, eventBus, cfg.Uploads, log),
	}
}
