package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyBrand             = errors.New("brand is required")
	ErrEmptyModel             = errors.New("model is required")
	ErrInvalidProductionYear  = errors.New("production year must be positive")
	ErrInvalidPrice           = errors.New("price must be positive")
	ErrInvalidMileage         = errors.New("mileage cannot be negative")
	ErrInvalidEngineCapacity  = errors.New("engine capacity must be positive")
	ErrInvalidImageGalleryURL = errors.New("image gallery contains an empty url")
)
