// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Mailspring.HomeDir == "" || cfg.Mailspring.AppName == "" ||
		strings.ContainsAny(cfg.Mailspring.AppName, `/\`) || cfg.Mailspring.AppName == ".." {
		return fmt.Errorf("%w: app name %q", ErrInvalidMailspringConfigs, cfg.Mailspring.AppName)
	}

	if !cfg.Keyboard.Disabled &&
		(cfg.Keyboard.Display == "" || cfg.Keyboard.Tool == "" || cfg.Keyboard.Shell == "" || cfg.Keyboard.Timeout <= 0) {
		return ErrInvalidKeyboardConfigs
	}

	if cfg.Dashboard.PollInterval <= 0 {
		return ErrInvalidDashboardConfigs
	}

	return nil
}
