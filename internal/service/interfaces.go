// Package service implements the client-side business layer between the TUI
// and the transport adapter: authentication and session lifecycle, the
// vehicle inventory facade with its pure filter/sort view, image staging
// rules, and the background image upload job.
package service

import (
	"context"

	"github.com/MKhiriev/dealer-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService owns the credential lifecycle: it talks to the backend
// auth endpoints and keeps the persisted session store and the adapter's
// bearer token in step with each other.
type ClientAuthService interface {
	// Login authenticates with the backend and persists token and identity
	// as a unit. Returns [ErrLoginFailed] (wrapping the backend's message
	// when one is present) on rejection or an unusable response body.
	Login(ctx context.Context, username, password string) (models.User, error)

	// Logout notifies the backend best-effort, then unconditionally clears
	// the local session. The network outcome never prevents the clearing.
	Logout(ctx context.Context)

	// Restore loads the persisted session, if any, and installs its token
	// on the adapter. Returns nil when not logged in or when the stored
	// data is unreadable.
	Restore() *models.User

	// User returns the persisted identity, or nil when absent.
	User() *models.User

	// IsLoggedIn reports whether a bearer token is persisted.
	IsLoggedIn() bool
}

// ClientCarsService is the facade over the vehicle REST endpoints. It maps
// wire payloads into [models.Car] (parsing backend timestamps) and announces
// successful mutations on the event bus so every view refetches.
type ClientCarsService interface {
	// List fetches the full inventory.
	List(ctx context.Context) ([]models.Car, error)

	// Get fetches a single vehicle by id.
	Get(ctx context.Context, id int64) (models.Car, error)

	// Save persists car: create when the record has no id yet, update
	// otherwise, never both. Returns the persisted record including the
	// backend-assigned id.
	Save(ctx context.Context, car models.Car) (models.Car, error)

	// Delete removes the vehicle by id.
	Delete(ctx context.Context, id int64) error

	// RemoveImage deletes one persisted gallery image.
	RemoveImage(ctx context.Context, carID int64, imageURL string) error

	// Brands returns the distinct brand list for form suggestions.
	Brands(ctx context.Context) ([]string, error)

	// FuelTypes returns the distinct fuel type list for form suggestions.
	FuelTypes(ctx context.Context) ([]string, error)
}

// ClientUploadService runs background image upload batches. Files within a
// batch upload strictly sequentially; batches for different vehicles run
// independently with no cross-batch ordering.
type ClientUploadService interface {
	// Enqueue starts a background batch for carID. It returns immediately;
	// progress is announced on the event bus as a single loading event
	// before the first file and a single completed event after the last,
	// regardless of per-file outcomes.
	Enqueue(ctx context.Context, carID int64, files []StagedImage)

	// Wait blocks until every in-flight batch has finished. Used on
	// shutdown so a quick exit does not abandon uploads mid-batch.
	Wait()
}
