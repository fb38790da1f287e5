package async

import "context"

// Worker is a long running background loop started by the application.
// Run blocks until ctx is cancelled and calls done exactly once on the way
// out. Shutdown releases whatever Run could not release itself.
type Worker interface {
	Run(ctx context.Context, done func())
	Shutdown()
}
