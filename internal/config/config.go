// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// Default values applied to the merged configuration for keys that no
// source provided.
const (
	DefaultHTTPAddress    = "localhost:8000"
	DefaultGRPCAddress    = "localhost:9000"
	DefaultLogLevel       = "debug"
	DefaultHealthInterval = 10 * time.Second
	DefaultTLSCacheDir    = "certs"
)

// StructuredConfig is the top-level configuration container for the
// bookmarks server. It aggregates all sub-configurations and is populated by
// merging values from a .env file, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the API token, the public base
	// URL used in Location headers, the version and the log level.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection and the optional seed file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses, timeouts and TLS settings for the HTTP
	// and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the terminal client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// APIToken is the shared bearer token every request must present.
	// Env: APP_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// BaseURL is the externally visible origin of the server, used to build
	// the Location header of created bookmarks (e.g. "http://localhost:8000").
	// Defaults to "http://" + Server.HTTPAddress.
	// Env: APP_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Version is reported by GET /api/version. Falls back to the version
	// linked into the binary.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// SeedFile is an optional YAML file with bookmarks loaded into an empty
	// table at startup.
	// Env: STORAGE_SEED_FILE
	SeedFile string `env:"SEED_FILE"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its prefix: "postgres://" or "postgresql://"
	// open PostgreSQL through pgx, "sqlite:" or "file:" open SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network, timeout and TLS settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout cancels request contexts after the given duration.
	// Zero disables the timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// EnableHTTPS serves HTTP over TLS with certificates from Let's Encrypt.
	// Env: SERVER_ENABLE_HTTPS
	EnableHTTPS bool `env:"ENABLE_HTTPS"`

	// TLSDomains is the host whitelist for certificate issuance.
	// Env: SERVER_TLS_DOMAINS (comma separated)
	TLSDomains []string `env:"TLS_DOMAINS" envSeparator:","`

	// TLSCacheDir stores issued certificates between restarts.
	// Env: SERVER_TLS_CACHE_DIR
	TLSCacheDir string `env:"TLS_CACHE_DIR"`

	// HealthInterval is how often the gRPC health status is refreshed from
	// a database ping.
	// Env: SERVER_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// Adapter holds the client's view of the server.
type Adapter struct {
	// HTTPAddress is the base URL of the bookmarks server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges and validates the server configuration.
// Sources in increasing priority (a non-zero value from a later source
// overrides an earlier one):
//  1. JSON file (path resolved from the other sources)
//  2. .env file in the working directory
//  3. Environment variables
//  4. Command-line flags
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(defaultDotEnvFile).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.setDefaults()
	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
