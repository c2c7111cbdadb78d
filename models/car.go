package models

import "time"

// Car represents a single vehicle in the dealership inventory as served by
// the backend REST API.
//
// A Car with ID == 0 is an unsaved draft; the backend assigns the identifier
// on create. CreatedAt and UpdatedAt are set by the backend and are nil until
// the record has been persisted at least once.
type Car struct {
	// ID is the backend-assigned numeric identifier.
	// Zero means the record has never been persisted.
	ID int64 `json:"id,omitempty"`

	// Brand is the manufacturer name (e.g. "Toyota"). Required.
	Brand string `json:"brand"`

	// Model is the model name within the brand (e.g. "Corolla"). Required.
	Model string `json:"model"`

	// ProductionYear is the year the vehicle was manufactured. Required.
	ProductionYear int `json:"productionYear"`

	// Price is the asking price in the dealership's currency. Required.
	Price float64 `json:"price"`

	// FuelType is the fuel kind (e.g. "Petrol", "Diesel", "Electric"). Required.
	FuelType string `json:"fuelType"`

	// Mileage is the odometer reading in kilometres. Required.
	Mileage int `json:"mileage"`

	// EngineCapacity is the engine displacement in litres. Required.
	EngineCapacity float64 `json:"engineCapacity"`

	// Transmission is the gearbox kind (e.g. "Manual", "Automatic"). Required.
	Transmission string `json:"transmission"`

	// Description is optional free text shown on the detail screen.
	Description string `json:"description,omitempty"`

	// CreatedAt is the backend creation timestamp, parsed on receipt.
	CreatedAt *time.Time `json:"createdAt,omitempty"`

	// UpdatedAt is the backend last-update timestamp, parsed on receipt.
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`

	// ImageGallery is the ordered list of image URLs already persisted for
	// this vehicle. May be empty.
	ImageGallery []string `json:"imageGallery,omitempty"`
}

// Persisted reports whether the record has been stored by the backend at
// least once.
func (c Car) Persisted() bool {
	return c.ID != 0
}
