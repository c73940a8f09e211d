// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from APP_*, STORAGE_*, SERVER_* and ADAPTER_* variables
// via the `env` and `envPrefix` tags of [StructuredConfig]. Durations use
// time.ParseDuration syntax and SERVER_TLS_DOMAINS is comma separated.
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error reading bookmark service env: %w", err)
	}

	return nil
}
