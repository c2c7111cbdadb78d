package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/dealer-desk/internal/service"
	"github.com/MKhiriev/dealer-desk/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	fieldBrand = iota
	fieldModel
	fieldYear
	fieldPrice
	fieldFuel
	fieldMileage
	fieldEngine
	fieldTransmission
	fieldDescription
	fieldImagePath
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Brand", "Model", "Year", "Price", "Fuel type", "Mileage",
	"Engine capacity", "Transmission", "Description", "Add image (path)",
}

// carFormModel edits one vehicle. In edit mode existing is the persisted
// record, gallery the persisted image URLs still kept, staged the local
// files queued for upload after a successful save.
type carFormModel struct {
	inputs     [fieldCount]textinput.Model
	focus      int
	existing   *models.Car
	gallery    []string
	galleryIdx int
	staged     *service.Staging
	submitting bool
	errMsg     string
}

func newCarFormModel(existing *models.Car, maxStaged int) carFormModel {
	m := carFormModel{
		existing: existing,
		staged:   service.NewStaging(maxStaged),
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = fieldLabels[i]
		in.Width = 40
		m.inputs[i] = in
	}
	m.inputs[fieldBrand].CharLimit = 64
	m.inputs[fieldModel].CharLimit = 64
	m.inputs[fieldYear].CharLimit = 4
	m.inputs[fieldBrand].ShowSuggestions = true
	m.inputs[fieldFuel].ShowSuggestions = true
	m.inputs[fieldImagePath].Placeholder = "/path/to/image.jpg"

	if existing != nil {
		m.inputs[fieldBrand].SetValue(existing.Brand)
		m.inputs[fieldModel].SetValue(existing.Model)
		m.inputs[fieldYear].SetValue(strconv.Itoa(existing.ProductionYear))
		m.inputs[fieldPrice].SetValue(strconv.FormatFloat(existing.Price, 'f', -1, 64))
		m.inputs[fieldFuel].SetValue(existing.FuelType)
		m.inputs[fieldMileage].SetValue(strconv.Itoa(existing.Mileage))
		m.inputs[fieldEngine].SetValue(strconv.FormatFloat(existing.EngineCapacity, 'f', -1, 64))
		m.inputs[fieldTransmission].SetValue(existing.Transmission)
		m.inputs[fieldDescription].SetValue(existing.Description)
		m.gallery = append([]string(nil), existing.ImageGallery...)
	}

	m.inputs[0].Focus()
	return m
}

// setSuggestions feeds the brand and fuel type autocomplete lists.
func (m *carFormModel) setSuggestions(brands, fuelTypes []string) {
	m.inputs[fieldBrand].SetSuggestions(brands)
	m.inputs[fieldFuel].SetSuggestions(fuelTypes)
}

func (m carFormModel) editMode() bool {
	return m.existing != nil && m.existing.Persisted()
}

func (m carFormModel) focusNext() carFormModel {
	return m.setFocus((m.focus + 1) % fieldCount)
}

func (m carFormModel) focusPrev() carFormModel {
	return m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
}

func (m carFormModel) setFocus(i int) carFormModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

// stageImage validates and stages the file named in the image-path input.
func (m carFormModel) stageImage() carFormModel {
	path := strings.TrimSpace(m.inputs[fieldImagePath].Value())
	if path == "" {
		return m
	}
	if err := m.staged.Add(path); err != nil {
		m.errMsg = stagingErrorMessage(err)
		return m
	}
	m.errMsg = ""
	m.inputs[fieldImagePath].SetValue("")
	return m
}

func stagingErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrTooManyStagedImages):
		return "Too many images staged"
	case errors.Is(err, service.ErrUnsupportedImageType):
		return "Unsupported image type"
	case errors.Is(err, service.ErrImageTooLarge):
		return "Image is too large"
	default:
		return "Cannot read image file"
	}
}

func (m carFormModel) dropStaged() carFormModel {
	m.staged.RemoveAt(len(m.staged.Files()) - 1)
	return m
}

func (m carFormModel) galleryNext() carFormModel {
	if len(m.gallery) > 1 {
		m.galleryIdx = (m.galleryIdx + 1) % len(m.gallery)
	}
	return m
}

func (m carFormModel) galleryPrev() carFormModel {
	if len(m.gallery) > 1 {
		m.galleryIdx = (m.galleryIdx - 1 + len(m.gallery)) % len(m.gallery)
	}
	return m
}

func (m carFormModel) dropGalleryAtCursor() carFormModel {
	if m.galleryIdx >= 0 && m.galleryIdx < len(m.gallery) {
		return m.removeGalleryURL(m.gallery[m.galleryIdx])
	}
	return m
}

// removeGalleryURL drops a persisted image locally; the server copy is
// untouched until the record is saved.
func (m carFormModel) removeGalleryURL(url string) carFormModel {
	kept := m.gallery[:0]
	for _, u := range m.gallery {
		if u != url {
			kept = append(kept, u)
		}
	}
	m.gallery = kept
	if m.galleryIdx >= len(m.gallery) {
		m.galleryIdx = len(m.gallery) - 1
	}
	if m.galleryIdx < 0 {
		m.galleryIdx = 0
	}
	return m
}

// validate checks the form and builds the car to persist. Numeric fields
// must parse; year, price, mileage and engine capacity must be positive.
func (m carFormModel) validate() (models.Car, string) {
	var car models.Car

	car.Brand = strings.TrimSpace(m.inputs[fieldBrand].Value())
	car.Model = strings.TrimSpace(m.inputs[fieldModel].Value())
	if car.Brand == "" || car.Model == "" {
		return car, "Brand and model are required"
	}

	year, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldYear].Value()))
	if err != nil || year <= 0 {
		return car, "Year must be a positive number"
	}
	car.ProductionYear = year

	price, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldPrice].Value()), 64)
	if err != nil || price <= 0 {
		return car, "Price must be a positive number"
	}
	car.Price = price

	mileageRaw := strings.TrimSpace(m.inputs[fieldMileage].Value())
	if mileageRaw != "" {
		mileage, err := strconv.Atoi(mileageRaw)
		if err != nil || mileage < 0 {
			return car, "Mileage must be a non-negative number"
		}
		car.Mileage = mileage
	}

	engineRaw := strings.TrimSpace(m.inputs[fieldEngine].Value())
	if engineRaw != "" {
		engine, err := strconv.ParseFloat(engineRaw, 64)
		if err != nil || engine <= 0 {
			return car, "Engine capacity must be a positive number"
		}
		car.EngineCapacity = engine
	}

	car.FuelType = strings.TrimSpace(m.inputs[fieldFuel].Value())
	car.Transmission = strings.TrimSpace(m.inputs[fieldTransmission].Value())
	car.Description = strings.TrimSpace(m.inputs[fieldDescription].Value())

	if m.editMode() {
		car.ID = m.existing.ID
		car.CreatedAt = m.existing.CreatedAt
		car.ImageGallery = append([]string(nil), m.gallery...)
	}

	return car, ""
}

func (m carFormModel) View() string {
	title := "New vehicle"
	if m.editMode() {
		title = fmt.Sprintf("Edit: %s %s", m.existing.Brand, m.existing.Model)
	}
	out := titleStyle.Render(title) + "\n\n"

	for i := range m.inputs {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		out += fmt.Sprintf("%s%-18s %s\n", cursor, fieldLabels[i]+":", m.inputs[i].View())
	}

	if m.editMode() && len(m.gallery) > 0 {
		out += "\nImages kept:\n"
		for i, url := range m.gallery {
			cursor := "  "
			if i == m.galleryIdx {
				cursor = "> "
			}
			out += cursor + url + "\n"
		}
	}

	if staged := m.staged.Files(); len(staged) > 0 {
		out += "\nStaged uploads:\n"
		for _, f := range staged {
			out += "  + " + f.Name + "\n"
		}
	}

	if m.errMsg != "" {
		out += "\n" + errorStyle.Render(m.errMsg) + "\n"
	}
	if m.submitting {
		out += "\nSaving...\n"
	}

	out += "\n" + helpStyle.Render("tab next field  ctrl+o stage image  ctrl+d drop staged  ctrl+n/ctrl+p kept image  ctrl+x drop kept  enter save  esc cancel")
	return out
}
