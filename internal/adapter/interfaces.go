// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the control panel's outbound integrations.
//
// [KeystrokeInjector] drives the external typing tool on the virtual display
// through a subprocess. [ControlPanelAdapter] talks to a running control
// panel over HTTP and is used by the container health probe.
//
// Error values defined in errors.go let callers use [errors.Is] regardless
// of which integration failed.
package adapter

import (
	"context"

	"github.com/MKhiriev/mailspring-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// KeystrokeInjector types text into the virtual display.
type KeystrokeInjector interface {
	// TypeText blocks until the typing tool has exited, ctx is cancelled,
	// or the configured timeout elapses. In the latter two cases the tool is
	// killed.
	TypeText(ctx context.Context, text string) error
}

// ControlPanelAdapter is a client of the control panel's HTTP API.
type ControlPanelAdapter interface {
	// Health calls GET /health.
	Health(ctx context.Context) (models.Health, error)

	// Status calls GET /api/status.
	Status(ctx context.Context) (models.Status, error)
}
