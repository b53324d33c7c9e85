// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Every group except [Mailspring] is prefixed (SERVER_, KEYBOARD_,
// ...). HOME is not read here; see parseHomeEnv.
//
// Unset variables leave the corresponding field at its zero value so that
// later sources can fill it.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

type homeEnv struct {
	HomeDir string `env:"HOME"`
}

// parseHomeEnv returns a config holding only HOME. It is merged below flags
// and JSON so that -home and mailspring.home_dir can override it.
func parseHomeEnv() (*StructuredConfig, error) {
	var home homeEnv
	if err := env.Parse(&home); err != nil {
		return nil, fmt.Errorf("error getting HOME: %w", err)
	}

	return &StructuredConfig{
		Mailspring: Mailspring{HomeDir: home.HomeDir},
	}, nil
}
