package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/dealer-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCar() models.Car {
	return models.Car{
		Brand:          "Toyota",
		Model:          "Corolla",
		ProductionYear: 2020,
		Price:          18500,
		Mileage:        42000,
		EngineCapacity: 1.8,
	}
}

func TestCarValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Car)
		wantErr error
	}{
		{name: "valid car passes", mutate: func(*models.Car) {}},
		{name: "blank brand", mutate: func(c *models.Car) { c.Brand = "  " }, wantErr: ErrEmptyBrand},
		{name: "blank model", mutate: func(c *models.Car) { c.Model = "" }, wantErr: ErrEmptyModel},
		{name: "zero year", mutate: func(c *models.Car) { c.ProductionYear = 0 }, wantErr: ErrInvalidProductionYear},
		{name: "negative price", mutate: func(c *models.Car) { c.Price = -1 }, wantErr: ErrInvalidPrice},
		{name: "negative mileage", mutate: func(c *models.Car) { c.Mileage = -1 }, wantErr: ErrInvalidMileage},
		{name: "negative engine", mutate: func(c *models.Car) { c.EngineCapacity = -0.1 }, wantErr: ErrInvalidEngineCapacity},
		{name: "zero mileage allowed", mutate: func(c *models.Car) { c.Mileage = 0 }},
		{name: "empty gallery url", mutate: func(c *models.Car) { c.ImageGallery = []string{"/a.jpg", " "} }, wantErr: ErrInvalidImageGalleryURL},
	}

	v := NewCarValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			car := validCar()
			tt.mutate(&car)

			err := v.Validate(context.Background(), car)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCarValidator_Validate_PointerAndScoping(t *testing.T) {
	v := NewCarValidator()
	car := validCar()
	car.Price = 0

	require.NoError(t, v.Validate(context.Background(), &car, FieldBrand, FieldModel),
		"scoped validation skips unnamed fields")
	assert.ErrorIs(t, v.Validate(context.Background(), &car, FieldPrice), ErrInvalidPrice)
	assert.ErrorIs(t, v.Validate(context.Background(), car, "unknown"), ErrUnknownField)
}

func TestCarValidator_Validate_UnsupportedType(t *testing.T) {
	v := NewCarValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
