package store

import "errors"

// Sentinel errors returned by [ConfigDocumentStorage]. Callers should use
// [errors.Is] to match against these values; the wrapped cause carries the
// operating-system or decoder message.
var (
	// ErrStatConfigDocument is returned when checking for config.json fails
	// for a reason other than the file being absent (e.g. permissions).
	ErrStatConfigDocument = errors.New("failed to check config document")

	// ErrReadConfigDocument is returned when config.json exists but cannot
	// be read.
	ErrReadConfigDocument = errors.New("failed to read config document")

	// ErrMalformedConfigDocument is returned when config.json is not valid
	// JSON.
	ErrMalformedConfigDocument = errors.New("malformed config document")
)
