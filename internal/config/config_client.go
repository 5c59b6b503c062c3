package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Defaults applied when neither env, flags, nor the JSON file provide a
// value. The base URL points at the hosted Hacker or Snooze API.
const (
	DefaultBaseURL         = "https://hack-or-snooze-v3.herokuapp.com"
	DefaultDSN             = "snooze.db"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultRefreshInterval = 5 * time.Minute
)

// ClientApp holds application-level client settings.
type ClientApp struct {
	// Version is the semantic version string of the running application.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the root endpoint of the remote API.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the feed refresh job runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client config view from the merged
// structured configuration, applying defaults for any field left unset.
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
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (c *ClientConfig) applyDefaults() {
	if c.Adapter.BaseURL == "" {
		c.Adapter.BaseURL = DefaultBaseURL
	}
	if c.Adapter.RequestTimeout <= 0 {
		c.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = DefaultDSN
	}
	if c.Workers.RefreshInterval <= 0 {
		c.Workers.RefreshInterval = DefaultRefreshInterval
	}
}

func (c *ClientConfig) validate() error {
	raw := strings.TrimSpace(c.Adapter.BaseURL)
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q must include scheme and host", ErrInvalidBaseURL, raw)
	}

	return nil
}

// validate on the merged structured config. Field-level validation happens on
// the client view; nothing to reject at this level.
func (c *StructuredConfig) validate() error {
	return nil
}
