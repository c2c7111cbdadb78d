package service

import "errors"

var (
	// ErrLoginFailed wraps a rejected or unusable login exchange. The
	// wrapped cause carries the backend's message when one was present.
	ErrLoginFailed = errors.New("login failed")

	// ErrTooManyStagedImages is returned when adding files would push the
	// staged total past the configured cap. No files are added.
	ErrTooManyStagedImages = errors.New("too many staged images")

	// ErrUnsupportedImageType is returned for a staged file whose extension
	// or detected content type is not an accepted image format.
	ErrUnsupportedImageType = errors.New("unsupported image type")

	// ErrImageTooLarge is returned for a staged file over the size limit.
	ErrImageTooLarge = errors.New("image file too large")
)
