package tui

import (
	"testing"

	"github.com/MKhiriev/dealer-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledForm() carFormModel {
	m := newCarFormModel(nil, 12)
	m.inputs[fieldBrand].SetValue("Toyota")
	m.inputs[fieldModel].SetValue("Corolla")
	m.inputs[fieldYear].SetValue("2020")
	m.inputs[fieldPrice].SetValue("18500")
	m.inputs[fieldFuel].SetValue("Petrol")
	m.inputs[fieldMileage].SetValue("42000")
	m.inputs[fieldEngine].SetValue("1.8")
	m.inputs[fieldTransmission].SetValue("Automatic")
	return m
}

func TestCarFormModel_Validate_Success(t *testing.T) {
	m := filledForm()

	car, problem := m.validate()

	require.Empty(t, problem)
	assert.Equal(t, "Toyota", car.Brand)
	assert.Equal(t, 2020, car.ProductionYear)
	assert.Equal(t, 18500.0, car.Price)
	assert.Equal(t, 1.8, car.EngineCapacity)
	assert.False(t, car.Persisted())
}

func TestCarFormModel_Validate_NumericFields(t *testing.T) {
	tests := []struct {
		name  string
		field int
		value string
	}{
		{name: "year not a number", field: fieldYear, value: "20xx"},
		{name: "year zero", field: fieldYear, value: "0"},
		{name: "price not a number", field: fieldPrice, value: "cheap"},
		{name: "price negative", field: fieldPrice, value: "-5"},
		{name: "mileage negative", field: fieldMileage, value: "-1"},
		{name: "engine not a number", field: fieldEngine, value: "big"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := filledForm()
			m.inputs[tt.field].SetValue(tt.value)

			_, problem := m.validate()
			assert.NotEmpty(t, problem)
		})
	}
}

func TestCarFormModel_Validate_RequiredText(t *testing.T) {
	m := filledForm()
	m.inputs[fieldBrand].SetValue("   ")

	_, problem := m.validate()
	assert.NotEmpty(t, problem)
}

func TestCarFormModel_EditSeedsFromExisting(t *testing.T) {
	existing := models.Car{
		ID:             7,
		Brand:          "Honda",
		Model:          "Civic",
		ProductionYear: 2018,
		Price:          21000,
		ImageGallery:   []string{"/a.jpg", "/b.jpg"},
	}

	m := newCarFormModel(&existing, 12)

	require.True(t, m.editMode())
	assert.Equal(t, "Honda", m.inputs[fieldBrand].Value())
	assert.Equal(t, "2018", m.inputs[fieldYear].Value())
	assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, m.gallery)
}

func TestCarFormModel_Validate_EditKeepsIdentityAndGallery(t *testing.T) {
	existing := models.Car{ID: 7, Brand: "Honda", Model: "Civic", ProductionYear: 2018, Price: 21000}
	m := newCarFormModel(&existing, 12)
	m.gallery = []string{"/kept.jpg"}

	car, problem := m.validate()

	require.Empty(t, problem)
	assert.Equal(t, int64(7), car.ID)
	assert.Equal(t, []string{"/kept.jpg"}, car.ImageGallery)
}

func TestCarFormModel_RemoveGalleryURL(t *testing.T) {
	existing := models.Car{ID: 7, Brand: "Honda", Model: "Civic", ProductionYear: 2018, Price: 21000,
		ImageGallery: []string{"/a.jpg", "/b.jpg", "/c.jpg"}}
	m := newCarFormModel(&existing, 12)
	m.galleryIdx = 2

	m = m.removeGalleryURL("/c.jpg")

	assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, m.gallery)
	assert.Equal(t, 1, m.galleryIdx, "cursor clamps after removal")

	m = m.removeGalleryURL("/missing.jpg")
	assert.Len(t, m.gallery, 2)
}

func TestCarFormModel_FocusCycles(t *testing.T) {
	m := newCarFormModel(nil, 12)

	for i := 0; i < fieldCount; i++ {
		assert.Equal(t, i, m.focus)
		m = m.focusNext()
	}
	assert.Equal(t, 0, m.focus, "focus wraps back to the first field")

	m = m.focusPrev()
	assert.Equal(t, fieldCount-1, m.focus)
}
