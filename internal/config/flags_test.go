package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8000}, expected: "localhost:8000"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9000}, expected: "127.0.0.1:9000"},
		{name: "only port no host", addr: NetAddress{Port: 8000}, expected: ":8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		wantHost string
		wantPort int
	}{
		{name: "localhost", input: "localhost:8000", wantHost: "localhost", wantPort: 8000},
		{name: "ipv4", input: "0.0.0.0:9000", wantHost: "0.0.0.0", wantPort: 9000},
		{name: "empty host", input: ":8000", wantHost: "", wantPort: 8000},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "hostname is not an IP", input: "example.com:80", wantErr: true},
		{name: "too many colons", input: "a:b:c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:8080",
		"-grpc-address", "127.0.0.1:9090",
		"-d", "sqlite:bookmarks.db",
		"-api-token", "flag-token",
		"-base-url", "http://bookmarks.local",
		"-config", "config.json",
		"-seed", "seed.yaml",
		"-request-timeout", "15s",
		"-s",
		"-tls-domains", "a.example.com, b.example.com",
		"-log-level", "warn",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, "sqlite:bookmarks.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "flag-token", cfg.App.APIToken)
	assert.Equal(t, "http://bookmarks.local", cfg.App.BaseURL)
	assert.Equal(t, "config.json", cfg.JSONFilePath)
	assert.Equal(t, "seed.yaml", cfg.Storage.SeedFile)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.EnableHTTPS)
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, cfg.Server.TLSDomains)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

func TestParseFlags_ShortAliases(t *testing.T) {
	cfg, err := ParseFlags([]string{"-t", "short-token", "-b", "http://short", "-c", "short.json"})
	require.NoError(t, err)

	assert.Equal(t, "short-token", cfg.App.APIToken)
	assert.Equal(t, "http://short", cfg.App.BaseURL)
	assert.Equal(t, "short.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nowhere"})
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList("  "))
	assert.Equal(t, []string{"a", "b"}, splitList("a, ,b,"))
}
