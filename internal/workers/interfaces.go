// Package workers runs the background jobs of the TIN server.
//
// A Worker blocks until its context is cancelled. Workers runs a set of them
// side by side and returns once all have stopped.
package workers

import "context"

// Worker is a long-running background job.
//
// Run must return when ctx is cancelled. A nil error after cancellation is
// a clean stop; any other error stops the whole set.
//
// Example implementation:
//
//	type tick struct{}
//
//	func (tick) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
