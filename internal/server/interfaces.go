package server

import "context"

// Server defines the lifecycle of the transport server.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts down
	// gracefully.
	RunServer()

	// Run serves until ctx is done or the listener fails. A stop through
	// ctx ends in a graceful shutdown and a nil error.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
