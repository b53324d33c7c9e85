package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive server timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidMailspringConfigs indicates an empty home directory or an
	// app name that is not a single path element.
	ErrInvalidMailspringConfigs = errors.New("invalid mailspring configuration")
	// ErrInvalidKeyboardConfigs indicates incomplete typing-tool settings
	// while keystroke injection is enabled.
	ErrInvalidKeyboardConfigs = errors.New("invalid keyboard configuration")
	// ErrInvalidDashboardConfigs indicates a non-positive poll interval.
	ErrInvalidDashboardConfigs = errors.New("invalid dashboard configuration")
)
