package server

import "context"

// Server defines the lifecycle contract of the proxy's transport server.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer binds the listener and serves requests until a stop signal
	// arrives. It returns an error only when the server could not start.
	RunServer() error

	// Shutdown gracefully stops the server and runs the shutdown hooks.
	// Calling it more than once has no further effect.
	Shutdown()
}

// ShutdownHook runs after the HTTP server has stopped accepting requests.
type ShutdownHook func(ctx context.Context) error
