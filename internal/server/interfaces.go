package server

import "context"

// Server defines the lifecycle of the control panel's transport.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a stop signal
	// arrives, then shuts down gracefully. It returns nil after a clean
	// shutdown and the listener error if serving could not start.
	RunServer(ctx context.Context) error
}
