package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/dealer-desk/models"
)

type detailModel struct {
	car     models.Car
	gallery galleryModel
	status  string
}

func newDetailModel(car models.Car) detailModel {
	return detailModel{
		car:     car,
		gallery: newGalleryModel(car.ImageGallery),
	}
}

// refresh replaces the car while keeping the gallery cursor in bounds.
func (m detailModel) refresh(car models.Car) detailModel {
	m.car = car
	m.gallery = m.gallery.withImages(car.ImageGallery)
	return m
}

// clipboardSummary is the single-line form copied with 'c'.
func (m detailModel) clipboardSummary() string {
	return fmt.Sprintf("%s %s (%d) — %.2f", m.car.Brand, m.car.Model, m.car.ProductionYear, m.car.Price)
}

// clipboardFull is the multi-line form copied with 'u'.
func (m detailModel) clipboardFull() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Brand: %s\n", m.car.Brand)
	fmt.Fprintf(&b, "Model: %s\n", m.car.Model)
	fmt.Fprintf(&b, "Year: %d\n", m.car.ProductionYear)
	fmt.Fprintf(&b, "Price: %.2f\n", m.car.Price)
	fmt.Fprintf(&b, "Fuel: %s\n", m.car.FuelType)
	fmt.Fprintf(&b, "Mileage: %d\n", m.car.Mileage)
	fmt.Fprintf(&b, "Engine: %.1f\n", m.car.EngineCapacity)
	fmt.Fprintf(&b, "Transmission: %s\n", m.car.Transmission)
	if m.car.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", m.car.Description)
	}
	return b.String()
}

func (m detailModel) View(uploading bool, loggedIn bool) string {
	out := titleStyle.Render(fmt.Sprintf("%s %s", m.car.Brand, m.car.Model)) + "\n\n"

	out += fmt.Sprintf("Year:          %d\n", m.car.ProductionYear)
	out += fmt.Sprintf("Price:         %.2f\n", m.car.Price)
	out += fmt.Sprintf("Fuel:          %s\n", m.car.FuelType)
	out += fmt.Sprintf("Mileage:       %d\n", m.car.Mileage)
	out += fmt.Sprintf("Engine:        %.1f\n", m.car.EngineCapacity)
	out += fmt.Sprintf("Transmission:  %s\n", m.car.Transmission)
	if m.car.Description != "" {
		out += fmt.Sprintf("Description:   %s\n", m.car.Description)
	}
	if m.car.CreatedAt != nil {
		out += fmt.Sprintf("Created:       %s\n", m.car.CreatedAt.Format("2006-01-02 15:04"))
	}
	if m.car.UpdatedAt != nil {
		out += fmt.Sprintf("Updated:       %s\n", m.car.UpdatedAt.Format("2006-01-02 15:04"))
	}

	out += "\n" + m.gallery.View()
	if uploading {
		out += "\nUploading images...\n"
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	help := "←/→ images  z zoom  c copy  u copy all  esc back"
	if loggedIn {
		help = "←/→ images  z zoom  x remove image  e edit  d delete  c copy  u copy all  esc back"
	}
	out += "\n" + helpStyle.Render(help)
	return out
}
