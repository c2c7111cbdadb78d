package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/dealer-desk/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorBody(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return &StatusError{status: ErrBadRequest, Message: body}
	case http.StatusUnauthorized:
		return &StatusError{status: ErrUnauthorized, Message: body}
	case http.StatusForbidden:
		return &StatusError{status: ErrForbidden, Message: body}
	case http.StatusNotFound:
		return &StatusError{status: ErrNotFound, Message: body}
	case http.StatusConflict:
		return &StatusError{status: ErrConflict, Message: body}
	case http.StatusInternalServerError:
		return &StatusError{status: ErrInternalServerError, Message: body}
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorBody extracts a human-readable message from an error response.
// The backend usually answers with {"message": "..."}; anything else is
// returned as trimmed raw text.
func errorBody(resp *resty.Response) string {
	raw := strings.TrimSpace(string(resp.Body()))
	if raw == "" {
		return ""
	}

	var apiErr models.APIError
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return raw
}
