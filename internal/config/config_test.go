package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("ADAPTER_BASE_URL", "https://api.example.com")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "20s")
	t.Setenv("STORAGE_DB_DATABASE_URI", "/tmp/env.db")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "2m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "https://api.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseFlagsFrom(t *testing.T) {
	cfg := parseFlagsFrom([]string{
		"-a", "http://localhost:9000",
		"-d", "local.db",
		"-request-timeout", "30s",
		"-refresh-interval", "10m",
		"-c", "conf.json",
	})

	assert.Equal(t, "http://localhost:9000", cfg.Adapter.BaseURL)
	assert.Equal(t, "local.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "conf.json", cfg.JSONFilePath)
}

func TestParseFlagsFrom_Empty(t *testing.T) {
	cfg := parseFlagsFrom(nil)

	assert.Empty(t, cfg.Adapter.BaseURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := map[string]any{
		"adapter": map[string]any{
			"base_url":        "https://json.example.com",
			"request_timeout": "25s",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "json.db"},
		},
		"workers": map[string]any{"refresh_interval": "3m"},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://json.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 25*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 3*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestDurationUnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	require.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

func TestClientConfigDefaultsAndValidation(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultRefreshInterval, cfg.Workers.RefreshInterval)
	require.NoError(t, cfg.validate())

	cfg.Adapter.BaseURL = "no-scheme"
	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}
