package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing API address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSessionConfigs indicates an unresolved session file path.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidUploadConfigs indicates invalid background upload settings
	// (for example, a non-positive staged image cap).
	ErrInvalidUploadConfigs = errors.New("invalid uploads configuration")
)
