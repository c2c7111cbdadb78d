package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// dealer-desk client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the dealership backend API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Session holds the location of the persisted credential state.
	Session Session `envPrefix:"SESSION_"`

	// Uploads holds the background image upload settings.
	Uploads Uploads `envPrefix:"UPLOADS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running client.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// Address is the dealership API endpoint, either as "host:port" or a
	// full URL (a missing scheme defaults to http).
	// Env: ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds settings for the persisted credential store.
type Session struct {
	// FilePath is the path of the JSON file holding the bearer token and
	// user identity. Empty means a default under the user config dir.
	// Env: SESSION_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// Uploads holds settings for the background image upload job.
type Uploads struct {
	// MaxStagedImages caps how many image files can be staged on a single
	// vehicle form before submission.
	// Env: UPLOADS_MAX_STAGED_IMAGES
	MaxStagedImages int `env:"MAX_STAGED_IMAGES"`

	// InterUploadPause is the pause inserted between sequential image
	// uploads within one batch (e.g. "100ms").
	// Env: UPLOADS_INTER_UPLOAD_PAUSE
	InterUploadPause time.Duration `env:"INTER_UPLOAD_PAUSE"`
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
