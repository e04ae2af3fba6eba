package server

import "context"

// transport is the lifecycle contract of a single listener.
type transport interface {
	// RunServer serves requests and blocks until the server stops. A
	// graceful stop returns nil.
	RunServer() error

	// Shutdown stops the server, waiting for in-flight requests until ctx
	// is done.
	Shutdown(ctx context.Context) error
}
