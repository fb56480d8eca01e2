package server

import "context"

// Server is the lifecycle contract of a transport.
type Server interface {
	// RunServer serves until ctx is cancelled or serving fails. A clean
	// shutdown returns nil.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting work and waits for in-flight requests, up to
	// the deadline of ctx.
	Shutdown(ctx context.Context) error
}
