package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied by [GetClientConfig] when a source did not set the value.
const (
	DefaultRequestTimeout   = 15 * time.Second
	DefaultMaxStagedImages  = 12
	DefaultInterUploadPause = 100 * time.Millisecond
)

// ClientApp holds client application-level settings.
type ClientApp struct {
	// Version is the semantic version string of the running client.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// Address is the dealership API endpoint address.
	Address string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientSession holds the persisted session file location.
type ClientSession struct {
	// FilePath is where the bearer token and user identity are stored.
	FilePath string
}

// ClientUploads holds background image upload settings.
type ClientUploads struct {
	// MaxStagedImages caps staged files per vehicle form.
	MaxStagedImages int
	// InterUploadPause is the pause between sequential uploads in a batch.
	InterUploadPause time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Session ClientSession
	Uploads ClientUploads
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, fills in defaults for unset values, and
// validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			Address:        cfg.Adapter.Address,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Session: ClientSession{
			FilePath: cfg.Session.FilePath,
		},
		Uploads: ClientUploads{
			MaxStagedImages:  cfg.Uploads.MaxStagedImages,
			InterUploadPause: cfg.Uploads.InterUploadPause,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.Address == "" {
		cfg.Adapter.Address = "localhost:8080"
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Session.FilePath == "" {
		cfg.Session.FilePath = defaultSessionFilePath()
	}
	if cfg.Uploads.MaxStagedImages <= 0 {
		cfg.Uploads.MaxStagedImages = DefaultMaxStagedImages
	}
	if cfg.Uploads.InterUploadPause <= 0 {
		cfg.Uploads.InterUploadPause = DefaultInterUploadPause
	}
}

func defaultSessionFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(dir, "dealer-desk", "session.json")
}
