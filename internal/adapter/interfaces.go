// Package adapter provides transport-layer abstractions for communicating
// with the dealership inventory backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/dealer-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the dealership
// backend. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// Every mutating call attaches the stored bearer token; ListCars, GetCar and
// Login do not require one. No call retries and no call is cancellable once
// started beyond ctx expiry; failures propagate immediately to the caller.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Call it after a successful Login and with an
	// empty string after logout.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set.
	Token() string

	// Login authenticates with POST /api/auth/login. On success it stores
	// the returned token via SetToken and returns the full response.
	// On a non-2xx status the returned error wraps the backend's message
	// body when one is present, so callers can surface it verbatim.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Logout notifies the backend with POST /api/auth/logout using the
	// stored token if present. Callers treat this as best effort: local
	// session state must be cleared regardless of the outcome.
	Logout(ctx context.Context) error

	// ListCars fetches the full inventory via GET /api/cars. No token is
	// required.
	ListCars(ctx context.Context) ([]models.CarPayload, error)

	// GetCar fetches a single vehicle via GET /api/cars/{id}.
	GetCar(ctx context.Context, id int64) (models.CarPayload, error)

	// CreateCar persists a new vehicle via POST /api/cars and returns the
	// created record including its backend-assigned id.
	CreateCar(ctx context.Context, car models.Car) (models.CarPayload, error)

	// UpdateCar replaces an existing vehicle via PUT /api/cars/{id}.
	UpdateCar(ctx context.Context, id int64, car models.Car) (models.CarPayload, error)

	// DeleteCar removes a vehicle via DELETE /api/cars/{id}.
	DeleteCar(ctx context.Context, id int64) error

	// AddImage uploads one image file as multipart form content (field
	// "file") via POST /api/cars/{id}/gallery.
	AddImage(ctx context.Context, carID int64, fileName string, file io.Reader) error

	// RemoveImage deletes one gallery image via
	// DELETE /api/cars/{id}/gallery?imageUrl=... .
	RemoveImage(ctx context.Context, carID int64, imageURL string) error

	// Brands fetches the distinct brand list via GET /api/cars/brands.
	Brands(ctx context.Context) ([]string, error)

	// FuelTypes fetches the distinct fuel type list via
	// GET /api/cars/fuel-types.
	FuelTypes(ctx context.Context) ([]string, error)
}
