// Package server runs the control panel's HTTP server.
//
// It owns the listener lifecycle: startup, reaction to SIGINT, SIGTERM and
// SIGQUIT, and a graceful shutdown bounded by the configured timeout.
package server
