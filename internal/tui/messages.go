package tui

import (
	"github.com/MKhiriev/dealer-desk/internal/bus"
	"github.com/MKhiriev/dealer-desk/models"
)

type loginDoneMsg struct {
	user models.User
	err  error
}

type logoutDoneMsg struct{}

type carsLoadedMsg struct {
	cars []models.Car
	err  error
	// background marks a refetch the user did not initiate; its failure is
	// logged instead of raising the error overlay.
	background bool
}

type suggestionsLoadedMsg struct {
	brands    []string
	fuelTypes []string
}

type carSavedMsg struct {
	car    models.Car
	staged int
	err    error
}

type carDeletedMsg struct {
	carID int64
	err   error
}

type imageRemovedMsg struct {
	err error
}

type busEventMsg struct {
	event bus.Event
}

type busClosedMsg struct{}

type copiedMsg struct{}

type clearStatusMsg struct{}
