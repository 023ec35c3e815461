package vary

import "time"

// MetricsProvider receives callbacks on key Relay events for integration with
// metrics systems.
type MetricsProvider interface {
	// OnStateChange is called when the relay transitions between states.
	OnStateChange(from, to State)

	// OnProcessSuccess is called when a snapshot is decoded, validated and
	// applied. Duration covers the reapply pass.
	OnProcessSuccess(duration time.Duration)

	// OnProcessFailure is called when processing fails.
	// Stage is "decode" or "validate".
	OnProcessFailure(stage string, duration time.Duration)

	// OnChangeReceived is called when raw data is received from the watcher.
	OnChangeReceived()
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Embed it to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnStateChange(_, _ State)                   {}
func (NoOpMetricsProvider) OnProcessSuccess(_ time.Duration)           {}
func (NoOpMetricsProvider) OnProcessFailure(_ string, _ time.Duration) {}
func (NoOpMetricsProvider) OnChangeReceived()                          {}
