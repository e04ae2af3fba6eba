// Package workers runs the background jobs of the wallet server.
// It defines the Worker interface and a Workers aggregate that starts and
// stops every job together.
package workers

import "context"

// Worker is a background job. Start returns immediately and runs the job
// in its own goroutine until ctx is cancelled or Stop is called.
//
// Stop blocks until the goroutine has exited. It is safe to call Stop
// on a worker that was never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
