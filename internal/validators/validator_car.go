package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/dealer-desk/models"
)

const (
	FieldBrand          = "brand"
	FieldModel          = "model"
	FieldProductionYear = "production_year"
	FieldPrice          = "price"
	FieldMileage        = "mileage"
	FieldEngineCapacity = "engine_capacity"
	FieldImageGallery   = "image_gallery"
)

type CarValidator struct {
}

func NewCarValidator() Validator {
	return &CarValidator{}
}

func (v *CarValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Car:
		return v.validateCar(ctx, value, fields...)
	case *models.Car:
		return v.validateCar(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CarValidator) validateCar(_ context.Context, car models.Car, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldBrand, FieldModel, FieldProductionYear, FieldPrice,
			FieldMileage, FieldEngineCapacity, FieldImageGallery,
		}
	}

	for _, field := range fields {
		switch field {
		case FieldBrand:
			if strings.TrimSpace(car.Brand) == "" {
				return ErrEmptyBrand
			}
		case FieldModel:
			if strings.TrimSpace(car.Model) == "" {
				return ErrEmptyModel
			}
		case FieldProductionYear:
			if car.ProductionYear <= 0 {
				return ErrInvalidProductionYear
			}
		case FieldPrice:
			if car.Price <= 0 {
				return ErrInvalidPrice
			}
		case FieldMileage:
			if car.Mileage < 0 {
				return ErrInvalidMileage
			}
		case FieldEngineCapacity:
			if car.EngineCapacity < 0 {
				return ErrInvalidEngineCapacity
			}
		case FieldImageGallery:
			for _, url := range car.ImageGallery {
				if strings.TrimSpace(url) == "" {
					return ErrInvalidImageGalleryURL
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
