package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/dealer-desk/internal/config"
	"github.com/MKhiriev/dealer-desk/internal/logger"
	"github.com/MKhiriev/dealer-desk/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.Address and configures the resty client with the resolved base
// URL and request timeout.
//
// Returns an error if adapterCfg.Address is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login, decodes the {token, username, role} body, and stores
// the token via SetToken. A rejected login or a success response without a
// usable body both produce an error.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var lr models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return models.LoginResponse{}, fmt.Errorf("decode login response: %w", err)
	}
	if lr.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("login response carries no token")
	}

	h.SetToken(lr.Token)
	return lr, nil
}

// Logout implements [ServerAdapter]. It POSTs to /api/auth/logout with the
// stored token if present. The backend treats logout as stateless, so the
// call is purely a notification.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListCars implements [ServerAdapter] via GET /api/cars.
func (h *httpServerAdapter) ListCars(ctx context.Context) ([]models.CarPayload, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/cars")
	if err != nil {
		return nil, fmt.Errorf("list cars request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}

	var cars []models.CarPayload
	if err = json.Unmarshal(resp.Body(), &cars); err != nil {
		return nil, fmt.Errorf("decode list cars response: %w", err)
	}

	return cars, nil
}

// GetCar implements [ServerAdapter] via GET /api/cars/{id}.
func (h *httpServerAdapter) GetCar(ctx context.Context, id int64) (models.CarPayload, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/cars/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.CarPayload{}, fmt.Errorf("get car request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CarPayload{}, fmt.Errorf("get car %d: %w", id, err)
	}

	var car models.CarPayload
	if err = json.Unmarshal(resp.Body(), &car); err != nil {
		return models.CarPayload{}, fmt.Errorf("decode get car response: %w", err)
	}

	return car, nil
}

// CreateCar implements [ServerAdapter] via POST /api/cars.
func (h *httpServerAdapter) CreateCar(ctx context.Context, car models.Car) (models.CarPayload, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(car).
		Post("/api/cars")
	if err != nil {
		return models.CarPayload{}, fmt.Errorf("create car request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CarPayload{}, fmt.Errorf("create car: %w", err)
	}

	var created models.CarPayload
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.CarPayload{}, fmt.Errorf("decode create car response: %w", err)
	}

	return created, nil
}

// UpdateCar implements [ServerAdapter] via PUT /api/cars/{id}.
func (h *httpServerAdapter) UpdateCar(ctx context.Context, id int64, car models.Car) (models.CarPayload, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(car).
		Put("/api/cars/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.CarPayload{}, fmt.Errorf("update car request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CarPayload{}, fmt.Errorf("update car %d: %w", id, err)
	}

	var updated models.CarPayload
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.CarPayload{}, fmt.Errorf("decode update car response: %w", err)
	}

	return updated, nil
}

// DeleteCar implements [ServerAdapter] via DELETE /api/cars/{id}.
func (h *httpServerAdapter) DeleteCar(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete("/api/cars/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete car request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete car %d: %w", id, err)
	}

	return nil
}

// AddImage implements [ServerAdapter]. The file is sent as multipart form
// content under the field name "file" to POST /api/cars/{id}/gallery.
func (h *httpServerAdapter) AddImage(ctx context.Context, carID int64, fileName string, file io.Reader) error {
	resp, err := h.authedRequest(ctx).
		SetFileReader("file", fileName, file).
		Post("/api/cars/" + strconv.FormatInt(carID, 10) + "/gallery")
	if err != nil {
		return fmt.Errorf("add image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("add image to car %d: %w", carID, err)
	}

	return nil
}

// RemoveImage implements [ServerAdapter]. The target URL travels as the
// imageUrl query parameter of DELETE /api/cars/{id}/gallery.
func (h *httpServerAdapter) RemoveImage(ctx context.Context, carID int64, imageURL string) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("imageUrl", imageURL).
		Delete("/api/cars/" + strconv.FormatInt(carID, 10) + "/gallery")
	if err != nil {
		return fmt.Errorf("remove image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("remove image from car %d: %w", carID, err)
	}

	return nil
}

// Brands implements [ServerAdapter] via GET /api/cars/brands.
func (h *httpServerAdapter) Brands(ctx context.Context) ([]string, error) {
	return h.stringList(ctx, "/api/cars/brands", "brands")
}

// FuelTypes implements [ServerAdapter] via GET /api/cars/fuel-types.
func (h *httpServerAdapter) FuelTypes(ctx context.Context) ([]string, error) {
	return h.stringList(ctx, "/api/cars/fuel-types", "fuel types")
}

func (h *httpServerAdapter) stringList(ctx context.Context, path, op string) ([]string, error) {
	resp, err := h.client.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var values []string
	if err = json.Unmarshal(resp.Body(), &values); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", op, err)
	}

	return values, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}
