// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// control panel. It is built once at start-up and passed by value into every
// constructor; nothing in the application reads the environment afterwards.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Mailspring locates the mail client's config directory and describes
	// the installation reported by /api/status.
	Mailspring Mailspring

	// Keyboard configures keystroke injection into the virtual display.
	Keyboard Keyboard `envPrefix:"KEYBOARD_"`

	// Dashboard configures the HTML page served at "/".
	Dashboard Dashboard `envPrefix:"DASHBOARD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format (e.g. "0.0.0.0:6379").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Mailspring describes the mail client installation the panel reports on.
type Mailspring struct {
	// HomeDir is the root under which ".config/<AppName>[-dev]" is searched.
	// HOME is read after flags and JSON, since it is set in nearly every
	// environment and would otherwise shadow them. See parseHomeEnv.
	HomeDir string

	// AppName is the config directory name of the mail client.
	// Env: MAILSPRING_APP_NAME
	AppName string `env:"MAILSPRING_APP_NAME"`

	// Version is reported by /api/status.
	// Env: MAILSPRING_VERSION
	Version string `env:"MAILSPRING_VERSION"`

	// ServiceName is reported by /health.
	// Env: MAILSPRING_SERVICE_NAME
	ServiceName string `env:"MAILSPRING_SERVICE_NAME"`
}

// Keyboard configures the external typing tool.
type Keyboard struct {
	// Display is the X display the typing tool targets.
	// Env: KEYBOARD_DISPLAY
	Display string `env:"DISPLAY"`

	// Tool is the typing utility invoked as "<Tool> type <text>".
	// Env: KEYBOARD_TOOL
	Tool string `env:"TOOL"`

	// Shell runs the assembled command line via "<Shell> -c".
	// Env: KEYBOARD_SHELL
	Shell string `env:"SHELL"`

	// Timeout bounds a single injection; the tool is killed afterwards.
	// Env: KEYBOARD_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Disabled removes POST /api/type from the router.
	// Env: KEYBOARD_DISABLED
	Disabled bool `env:"DISABLED"`
}

// Dashboard configures the static control page.
type Dashboard struct {
	// DesktopURL is the remote-desktop viewer the page links to.
	// Env: DASHBOARD_DESKTOP_URL
	DesktopURL string `env:"DESKTOP_URL"`

	// PollInterval is how often the page refreshes status and accounts.
	// Env: DASHBOARD_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// ProdConfigDir returns "<HomeDir>/.config/<AppName>".
func (m Mailspring) ProdConfigDir() string {
	return filepath.Join(m.HomeDir, ".config", m.AppName)
}

// DevConfigDir returns "<HomeDir>/.config/<AppName>-dev".
func (m Mailspring) DevConfigDir() string {
	return filepath.Join(m.HomeDir, ".config", m.AppName+"-dev")
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first source that sets it wins:
//  1. Environment variables (except HOME)
//  2. Command-line flags (args, without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. HOME, for the home directory only
//  5. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withHomeEnv().
		withDefaults().
		build()
}
