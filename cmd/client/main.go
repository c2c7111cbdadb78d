package main

import (
	"fmt"

	"github.com/MKhiriev/dealer-desk/internal/adapter"
	"github.com/MKhiriev/dealer-desk/internal/bus"
	"github.com/MKhiriev/dealer-desk/internal/client"
	"github.com/MKhiriev/dealer-desk/internal/config"
	"github.com/MKhiriev/dealer-desk/internal/logger"
	"github.com/MKhiriev/dealer-desk/internal/service"
	"github.com/MKhiriev/dealer-desk/internal/store"
	"github.com/MKhiriev/dealer-desk/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("dealer-desk-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	sessions, err := store.NewFileSessionStore(cfg.Session.FilePath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session store")
	}

	eventBus := bus.New()
	services := service.NewClientServices(sessions, serverAdapter, eventBus, cfg, log)
	ui := tui.New(services, eventBus, cfg, log)

	app, err := client.NewApp(services, ui, eventBus, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
