// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// setDefaults fills every key that no source provided.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.GRPCAddress == "" {
		cfg.Server.GRPCAddress = DefaultGRPCAddress
	}
	if cfg.Server.HealthInterval <= 0 {
		cfg.Server.HealthInterval = DefaultHealthInterval
	}
	if cfg.Server.TLSCacheDir == "" {
		cfg.Server.TLSCacheDir = DefaultTLSCacheDir
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.BaseURL == "" {
		scheme := "http://"
		if cfg.Server.EnableHTTPS {
			scheme = "https://"
		}
		cfg.App.BaseURL = scheme + cfg.Server.HTTPAddress
	}
	cfg.App.BaseURL = strings.TrimRight(cfg.App.BaseURL, "/")
}

// validate checks that the merged [StructuredConfig] can start the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.APIToken == "" {
		return fmt.Errorf("%w: API token is required", ErrInvalidAppConfigs)
	}

	if u, err := url.Parse(cfg.App.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base URL %q is not absolute", ErrInvalidAppConfigs, cfg.App.BaseURL)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.EnableHTTPS && len(cfg.Server.TLSDomains) == 0 {
		return fmt.Errorf("%w: HTTPS requires at least one TLS domain", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if u, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server address %q is not absolute", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}

	if cfg.App.APIToken == "" {
		return fmt.Errorf("%w: API token is required", ErrInvalidAppConfigs)
	}

	return nil
}
