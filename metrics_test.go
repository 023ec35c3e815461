package vary

import (
	"testing"
	"time"
)

func TestNoOpMetricsProvider_DoesNotPanic(_ *testing.T) {
	var m NoOpMetricsProvider

	m.OnStateChange(StateLoading, StateHealthy)
	m.OnProcessSuccess(100 * time.Millisecond)
	m.OnProcessFailure("validate", 50*time.Millisecond)
	m.OnChangeReceived()
}
