package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "0.3.0",

		"ADAPTER_ADDRESS":         "dealer.example.com:8080",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"SESSION_FILE_PATH": "/var/lib/dealer/session.json",

		"UPLOADS_MAX_STAGED_IMAGES":  "8",
		"UPLOADS_INTER_UPLOAD_PAUSE": "200ms",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "0.3.0", cfg.App.Version)
	assert.Equal(t, "dealer.example.com:8080", cfg.Adapter.Address)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/lib/dealer/session.json", cfg.Session.FilePath)
	assert.Equal(t, 8, cfg.Uploads.MaxStagedImages)
	assert.Equal(t, 200*time.Millisecond, cfg.Uploads.InterUploadPause)
}

func TestParseEnv_EmptyEnvironmentYieldsZeroConfig(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_MalformedDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	cfg := &StructuredConfig{}
	require.Error(t, parseEnv(cfg))
}
