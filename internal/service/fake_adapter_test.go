package service

import (
	"context"
	"io"

	"github.com/MKhiriev/dealer-desk/internal/adapter"
	"github.com/MKhiriev/dealer-desk/models"
)

// fakeServerAdapter is a hand-rolled [adapter.ServerAdapter] test double.
// Each call delegates to the matching func field when set and counts the
// invocation, so tests can assert both behavior and call shape.
type fakeServerAdapter struct {
	token string

	loginFn       func(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	logoutFn      func(ctx context.Context) error
	listCarsFn    func(ctx context.Context) ([]models.CarPayload, error)
	getCarFn      func(ctx context.Context, id int64) (models.CarPayload, error)
	createCarFn   func(ctx context.Context, car models.Car) (models.CarPayload, error)
	updateCarFn   func(ctx context.Context, id int64, car models.Car) (models.CarPayload, error)
	deleteCarFn   func(ctx context.Context, id int64) error
	addImageFn    func(ctx context.Context, carID int64, fileName string, file io.Reader) error
	removeImageFn func(ctx context.Context, carID int64, imageURL string) error
	brandsFn      func(ctx context.Context) ([]string, error)
	fuelTypesFn   func(ctx context.Context) ([]string, error)

	createCalls int
	updateCalls int
	logoutCalls int
	addedImages []string
}

var _ adapter.ServerAdapter = (*fakeServerAdapter)(nil)

func (f *fakeServerAdapter) SetToken(token string) { f.token = token }
func (f *fakeServerAdapter) Token() string         { return f.token }

func (f *fakeServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	if f.loginFn == nil {
		return models.LoginResponse{}, nil
	}
	resp, err := f.loginFn(ctx, req)
	if err == nil {
		f.token = resp.Token
	}
	return resp, err
}

func (f *fakeServerAdapter) Logout(ctx context.Context) error {
	f.logoutCalls++
	if f.logoutFn == nil {
		return nil
	}
	return f.logoutFn(ctx)
}

func (f *fakeServerAdapter) ListCars(ctx context.Context) ([]models.CarPayload, error) {
	if f.listCarsFn == nil {
		return nil, nil
	}
	return f.listCarsFn(ctx)
}

func (f *fakeServerAdapter) GetCar(ctx context.Context, id int64) (models.CarPayload, error) {
	if f.getCarFn == nil {
		return models.CarPayload{}, nil
	}
	return f.getCarFn(ctx, id)
}

func (f *fakeServerAdapter) CreateCar(ctx context.Context, car models.Car) (models.CarPayload, error) {
	f.createCalls++
	if f.createCarFn == nil {
		return models.CarPayload{}, nil
	}
	return f.createCarFn(ctx, car)
}

func (f *fakeServerAdapter) UpdateCar(ctx context.Context, id int64, car models.Car) (models.CarPayload, error) {
	f.updateCalls++
	if f.updateCarFn == nil {
		return models.CarPayload{}, nil
	}
	return f.updateCarFn(ctx, id, car)
}

func (f *fakeServerAdapter) DeleteCar(ctx context.Context, id int64) error {
	if f.deleteCarFn == nil {
		return nil
	}
	return f.deleteCarFn(ctx, id)
}

func (f *fakeServerAdapter) AddImage(ctx context.Context, carID int64, fileName string, file io.Reader) error {
	f.addedImages = append(f.addedImages, fileName)
	if f.addImageFn == nil {
		return nil
	}
	return f.addImageFn(ctx, carID, fileName, file)
}

func (f *fakeServerAdapter) RemoveImage(ctx context.Context, carID int64, imageURL string) error {
	if f.removeImageFn == nil {
		return nil
	}
	return f.removeImageFn(ctx, carID, imageURL)
}

func (f *fakeServerAdapter) Brands(ctx context.Context) ([]string, error) {
	if f.brandsFn == nil {
		return nil, nil
	}
	return f.brandsFn(ctx)
}

func (f *fakeServerAdapter) FuelTypes(ctx context.Context) ([]string, error) {
	if f.fuelTypesFn == nil {
		return nil, nil
	}
	return f.fuelTypesFn(ctx)
}

// fakeSessionStore keeps the session in memory.
type fakeSessionStore struct {
	session    models.Session
	saved      bool
	saveErr    error
	clearCalls int
}

func (f *fakeSessionStore) Save(session models.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.session = session
	f.saved = true
	return nil
}

func (f *fakeSessionStore) Token() string { return f.session.Token }

func (f *fakeSessionStore) User() *models.User {
	if f.session.Token == "" && f.session.User.Username == "" {
		return nil
	}
	user := f.session.User
	return &user
}

func (f *fakeSessionStore) IsLoggedIn() bool { return f.session.Token != "" }

func (f *fakeSessionStore) Clear() error {
	f.clearCalls++
	f.session = models.Session{}
	return nil
}
