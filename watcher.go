package vary

import "context"

// Watcher observes an external classification source and emits raw traits
// snapshots on a channel. Implementations must emit the current snapshot
// immediately upon Watch() so a Relay can establish its initial traits.
type Watcher interface {
	// Watch begins observing the source and returns a channel that emits
	// raw bytes when the classification changes. The channel is closed when
	// the context is canceled or an unrecoverable error occurs.
	Watch(ctx context.Context) (<-chan []byte, error)
}
