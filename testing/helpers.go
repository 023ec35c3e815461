// Package testing provides test utilities for code that registers vary
// variations.
package testing

import (
	"context"
	"testing"
	"time"

	"github.com/zoobzio/vary"
)

// Label is a stand-in host object with a text property.
type Label struct {
	Text   string
	Writes int
}

// TextProperty is the comparable text property of a Label. Every write is
// counted in Label.Writes.
var TextProperty = vary.ComparableProperty("text",
	func(l *Label) string { return l.Text },
	func(l *Label, v string) {
		l.Text = v
		l.Writes++
	},
)

// Environment is a fake vary.Environment that reapplies its variations
// whenever SetTraits is called, the way a real environment reacts to its own
// change notifications.
type Environment struct {
	traits     vary.Traits
	variations *vary.Registry
}

// NewEnvironment creates an Environment reporting traits.
func NewEnvironment(traits vary.Traits) *Environment {
	e := &Environment{traits: traits}
	e.variations = vary.NewRegistry(e)
	return e
}

// Traits implements vary.Environment.
func (e *Environment) Traits() vary.Traits {
	return e.traits
}

// Variations returns the environment's Registry.
func (e *Environment) Variations() *vary.Registry {
	return e.variations
}

// SetTraits changes the reported traits and reapplies all variations.
func (e *Environment) SetTraits(traits vary.Traits) {
	e.traits = traits
	e.variations.ReapplyAll()
}

// RequireText fails the test immediately if the label text differs.
func RequireText(t *testing.T, l *Label, expected string) {
	t.Helper()
	if l.Text != expected {
		t.Fatalf("expected text %q, got %q", expected, l.Text)
	}
}

// WaitFor polls a condition until it returns true or timeout is reached.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// WaitForState waits until the relay reaches the expected state or timeout occurs.
func WaitForState(t *testing.T, r *vary.Relay, expected vary.State, timeout time.Duration) bool {
	t.Helper()
	return WaitFor(t, timeout, func() bool {
		return r.State() == expected
	})
}

// NewTestRelay creates a sync-mode relay and a channel for sending snapshots.
// The initial snapshot must be sent before calling Start.
func NewTestRelay(t *testing.T) (*vary.Relay, chan<- []byte) {
	t.Helper()
	ch := make(chan []byte, 10)
	return vary.NewRelay(vary.NewSyncChannelWatcher(ch)).SyncMode(), ch
}

// StartRelay starts r and fails the test on error.
func StartRelay(t *testing.T, r *vary.Relay) {
	t.Helper()
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
}
