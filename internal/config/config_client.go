package config

import (
	"fmt"
	"time"
)

// Client defaults.
const (
	DefaultAdapterAddress        = "http://localhost:8000"
	DefaultAdapterRequestTimeout = 10 * time.Second
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// APIToken is sent as the bearer token with every request.
	APIToken string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the bookmarks server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds a client-specific config view from the .env file,
// the environment and an optional JSON file (CONFIG). Command-line flags are
// owned by the client's command tree and applied by the caller through
// [ClientConfig.Override].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(defaultDotEnvFile).
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg), nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			APIToken: cfg.App.APIToken,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if clientCfg.Adapter.RequestTimeout <= 0 {
		clientCfg.Adapter.RequestTimeout = DefaultAdapterRequestTimeout
	}

	return clientCfg
}

// Override applies non-empty command-line values and validates the result.
func (cfg *ClientConfig) Override(address, token string, timeout time.Duration) error {
	if address != "" {
		cfg.Adapter.HTTPAddress = address
	}
	if token != "" {
		cfg.App.APIToken = token
	}
	if timeout > 0 {
		cfg.Adapter.RequestTimeout = timeout
	}

	return cfg.validate()
}
