package adapter

import "errors"

// Transport-level sentinel errors mapped from HTTP status codes by
// mapHTTPError. Service code matches them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)

// StatusError pairs a status sentinel with the backend's human-readable
// message, so callers can match the sentinel with [errors.Is] and still show
// the message verbatim via [errors.As].
type StatusError struct {
	status  error
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return e.status.Error()
	}
	return e.status.Error() + ": " + e.Message
}

func (e *StatusError) Unwrap() error {
	return e.status
}
