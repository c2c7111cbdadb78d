package models

// CarPayload is the wire representation of a vehicle as returned by the
// backend. Timestamps arrive as strings and are parsed into time values by
// the cars service when mapped into [Car]; everything else maps one-to-one.
type CarPayload struct {
	ID             int64    `json:"id"`
	Brand          string   `json:"brand"`
	Model          string   `json:"model"`
	ProductionYear int      `json:"productionYear"`
	Price          float64  `json:"price"`
	FuelType       string   `json:"fuelType"`
	Mileage        int      `json:"mileage"`
	EngineCapacity float64  `json:"engineCapacity"`
	Transmission   string   `json:"transmission"`
	Description    string   `json:"description"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
	ImageGallery   []string `json:"imageGallery"`
}
