package adapter

import "errors"

var (
	// ErrKeystrokeFailed is returned when the typing tool could not be
	// started or exited with a non-zero status.
	ErrKeystrokeFailed = errors.New("keystroke injection failed")

	// ErrKeystrokeTimeout is returned when the typing tool outlived the
	// configured timeout and was killed.
	ErrKeystrokeTimeout = errors.New("keystroke injection timed out")

	// ErrUnexpectedStatus is returned by [ControlPanelAdapter] for any
	// non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)
