package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/dealer-desk/internal/bus"
	"github.com/MKhiriev/dealer-desk/internal/logger"
	"github.com/MKhiriev/dealer-desk/internal/validators"
	"github.com/MKhiriev/dealer-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCarsSvc(t *testing.T) (*clientCarsService, *fakeServerAdapter, <-chan bus.Event) {
	t.Helper()
	fakeAdapter := &fakeServerAdapter{}
	eventBus := bus.New()
	t.Cleanup(eventBus.Close)

	events, cancel := eventBus.Subscribe()
	t.Cleanup(cancel)

	svc := NewClientCarsService(fakeAdapter, eventBus, logger.Nop()).(*clientCarsService)
	return svc, fakeAdapter, events
}

func requireEvent(t *testing.T, events <-chan bus.Event) bus.Event {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(time.Second):
		t.Fatal("expected a bus event")
		return nil
	}
}

func requireNoEvent(t *testing.T, events <-chan bus.Event) {
	t.Helper()
	select {
	case ev := <-events:
		t.Fatalf("unexpected bus event %T", ev)
	default:
	}
}

func validCar() models.Car {
	return models.Car{
		Brand:          "Toyota",
		Model:          "Corolla",
		ProductionYear: 2020,
		Price:          18500,
		FuelType:       "Petrol",
		Mileage:        42000,
		EngineCapacity: 1.8,
		Transmission:   "Automatic",
	}
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestClientCarsService_Save_CreatesWhenNoID(t *testing.T) {
	svc, fakeAdapter, events := newTestCarsSvc(t)

	fakeAdapter.createCarFn = func(_ context.Context, car models.Car) (models.CarPayload, error) {
		return models.CarPayload{ID: 7, Brand: car.Brand, Model: car.Model}, nil
	}

	saved, err := svc.Save(context.Background(), validCar())

	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.Equal(t, 1, fakeAdapter.createCalls)
	assert.Zero(t, fakeAdapter.updateCalls, "create must never also update")
	assert.IsType(t, bus.CarsChanged{}, requireEvent(t, events))
}

func TestClientCarsService_Save_UpdatesWhenPersisted(t *testing.T) {
	svc, fakeAdapter, events := newTestCarsSvc(t)

	fakeAdapter.updateCarFn = func(_ context.Context, id int64, car models.Car) (models.CarPayload, error) {
		assert.Equal(t, int64(7), id)
		return models.CarPayload{ID: id, Brand: car.Brand, Model: car.Model}, nil
	}

	car := validCar()
	car.ID = 7
	_, err := svc.Save(context.Background(), car)

	require.NoError(t, err)
	assert.Equal(t, 1, fakeAdapter.updateCalls)
	assert.Zero(t, fakeAdapter.createCalls, "update must never also create")
	assert.IsType(t, bus.CarsChanged{}, requireEvent(t, events))
}

func TestClientCarsService_Save_InvalidRecordNeverReachesBackend(t *testing.T) {
	svc, fakeAdapter, events := newTestCarsSvc(t)

	car := validCar()
	car.Price = 0
	_, err := svc.Save(context.Background(), car)

	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrInvalidPrice)
	assert.Zero(t, fakeAdapter.createCalls)
	assert.Zero(t, fakeAdapter.updateCalls)
	requireNoEvent(t, events)
}

func TestClientCarsService_Save_BackendFailurePublishesNothing(t *testing.T) {
	svc, fakeAdapter, events := newTestCarsSvc(t)

	fakeAdapter.createCarFn = func(_ context.Context, _ models.Car) (models.CarPayload, error) {
		return models.CarPayload{}, errors.New("boom")
	}

	_, err := svc.Save(context.Background(), validCar())

	require.Error(t, err)
	requireNoEvent(t, events)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestClientCarsService_Delete_PublishesOnSuccess(t *testing.T) {
	svc, _, events := newTestCarsSvc(t)

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.IsType(t, bus.CarsChanged{}, requireEvent(t, events))
}

func TestClientCarsService_Delete_FailurePublishesNothing(t *testing.T) {
	svc, fakeAdapter, events := newTestCarsSvc(t)

	fakeAdapter.deleteCarFn = func(_ context.Context, _ int64) error {
		return errors.New("boom")
	}

	require.Error(t, svc.Delete(context.Background(), 7))
	requireNoEvent(t, events)
}

// ── RemoveImage ──────────────────────────────────────────────────────────────

func TestClientCarsService_RemoveImage_PublishesEvenOnFailure(t *testing.T) {
	svc, fakeAdapter, events := newTestCarsSvc(t)

	fakeAdapter.removeImageFn = func(_ context.Context, carID int64, imageURL string) error {
		assert.Equal(t, int64(7), carID)
		assert.Equal(t, "/uploads/cars/7/front.jpg", imageURL)
		return errors.New("boom")
	}

	err := svc.RemoveImage(context.Background(), 7, "/uploads/cars/7/front.jpg")

	require.Error(t, err)
	assert.IsType(t, bus.CarsChanged{}, requireEvent(t, events), "gallery resyncs by refetch regardless of outcome")
}

// ── List / timestamps ────────────────────────────────────────────────────────

func TestClientCarsService_List_ParsesZonelessTimestamps(t *testing.T) {
	svc, fakeAdapter, _ := newTestCarsSvc(t)

	fakeAdapter.listCarsFn = func(_ context.Context) ([]models.CarPayload, error) {
		return []models.CarPayload{
			{ID: 1, Brand: "Toyota", CreatedAt: "2024-05-01T10:30:00", UpdatedAt: "garbage"},
			{ID: 2, Brand: "Honda", CreatedAt: "2024-05-02T08:00:00.123456789"},
		}, nil
	}

	cars, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, cars, 2)

	require.NotNil(t, cars[0].CreatedAt)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), *cars[0].CreatedAt)
	assert.Nil(t, cars[0].UpdatedAt, "unparseable timestamp degrades to nil")

	require.NotNil(t, cars[1].CreatedAt)
	assert.Equal(t, 123456789, cars[1].CreatedAt.Nanosecond())
}

func TestClientCarsService_Get_MapsGallery(t *testing.T) {
	svc, fakeAdapter, _ := newTestCarsSvc(t)

	fakeAdapter.getCarFn = func(_ context.Context, id int64) (models.CarPayload, error) {
		return models.CarPayload{ID: id, Brand: "Toyota", ImageGallery: []string{"/a.jpg", "/b.jpg"}}, nil
	}

	car, err := svc.Get(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, []string{"/a.jpg", "/b.jpg"}, car.ImageGallery)
}
