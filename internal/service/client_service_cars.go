package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/dealer-desk/internal/adapter"
	"github.com/MKhiriev/dealer-desk/internal/bus"
	"github.com/MKhiriev/dealer-desk/internal/logger"
	"github.com/MKhiriev/dealer-desk/internal/validators"
	"github.com/MKhiriev/dealer-desk/models"
)

// timestampLayouts are tried in order when parsing backend timestamps.
// The backend serializes LocalDateTime without a zone, but RFC3339 is
// accepted first in case the deployment ever switches to zoned values.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

type clientCarsService struct {
	adapter   adapter.ServerAdapter
	bus       *bus.Bus
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientCarsService(serverAdapter adapter.ServerAdapter, eventBus *bus.Bus, log *logger.Logger) ClientCarsService {
	return &clientCarsService{
		adapter:   serverAdapter,
		bus:       eventBus,
		validator: validators.NewCarValidator(),
		logger:    log,
	}
}

// List implements [ClientCarsService].
func (c *clientCarsService) List(ctx context.Context) ([]models.Car, error) {
	payloads, err := c.adapter.ListCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}

	cars := make([]models.Car, 0, len(payloads))
	for _, p := range payloads {
		cars = append(cars, c.mapCar(p))
	}
	return cars, nil
}

// Get implements [ClientCarsService].
func (c *clientCarsService) Get(ctx context.Context, id int64) (models.Car, error) {
	payload, err := c.adapter.GetCar(ctx, id)
	if err != nil {
		return models.Car{}, fmt.Errorf("get car: %w", err)
	}
	return c.mapCar(payload), nil
}

// Save implements [ClientCarsService]. Exactly one of create or update is
// issued, decided by whether the record already has an id. A successful
// mutation is announced as [bus.CarsChanged] so subscribed views refetch.
func (c *clientCarsService) Save(ctx context.Context, car models.Car) (models.Car, error) {
	if err := c.validator.Validate(ctx, car); err != nil {
		return models.Car{}, fmt.Errorf("save car: %w", err)
	}

	var (
		payload models.CarPayload
		err     error
	)
	if car.Persisted() {
		payload, err = c.adapter.UpdateCar(ctx, car.ID, car)
	} else {
		payload, err = c.adapter.CreateCar(ctx, car)
	}
	if err != nil {
		return models.Car{}, fmt.Errorf("save car: %w", err)
	}

	c.bus.Publish(bus.CarsChanged{})
	return c.mapCar(payload), nil
}

// Delete implements [ClientCarsService].
func (c *clientCarsService) Delete(ctx context.Context, id int64) error {
	if err := c.adapter.DeleteCar(ctx, id); err != nil {
		return fmt.Errorf("delete car: %w", err)
	}

	c.bus.Publish(bus.CarsChanged{})
	return nil
}

// RemoveImage implements [ClientCarsService]. The displayed gallery is
// resynced by refetch regardless of outcome, so the event fires even when
// the call failed.
func (c *clientCarsService) RemoveImage(ctx context.Context, carID int64, imageURL string) error {
	err := c.adapter.RemoveImage(ctx, carID, imageURL)

	c.bus.Publish(bus.CarsChanged{})
	if err != nil {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

// Brands implements [ClientCarsService].
func (c *clientCarsService) Brands(ctx context.Context) ([]string, error) {
	brands, err := c.adapter.Brands(ctx)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return brands, nil
}

// FuelTypes implements [ClientCarsService].
func (c *clientCarsService) FuelTypes(ctx context.Context) ([]string, error) {
	fuelTypes, err := c.adapter.FuelTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fuel types: %w", err)
	}
	return fuelTypes, nil
}

func (c *clientCarsService) mapCar(p models.CarPayload) models.Car {
	return models.Car{
		ID:             p.ID,
		Brand:          p.Brand,
		Model:          p.Model,
		ProductionYear: p.ProductionYear,
		Price:          p.Price,
		FuelType:       p.FuelType,
		Mileage:        p.Mileage,
		EngineCapacity: p.EngineCapacity,
		Transmission:   p.Transmission,
		Description:    p.Description,
		CreatedAt:      c.parseTimestamp(p.CreatedAt),
		UpdatedAt:      c.parseTimestamp(p.UpdatedAt),
		ImageGallery:   p.ImageGallery,
	}
}

// parseTimestamp maps a raw backend timestamp into a date value. An empty or
// unparseable value yields nil rather than an error; a malformed timestamp
// only costs the detail screen a date line.
func (c *clientCarsService) parseTimestamp(raw string) *time.Time {
	if raw == "" {
		return nil
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return &ts
		}
	}

	c.logger.Debug().Str("value", raw).Msg("unparseable backend timestamp")
	return nil
}
