package vary

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/zoobzio/capitan"
)

// label is a minimal host object with a text property.
type label struct {
	text   string
	writes int
}

var labelText = ComparableProperty("text",
	func(l *label) string { return l.text },
	func(l *label, v string) {
		l.text = v
		l.writes++
	},
)

// labelTextAlways never elides writes.
var labelTextAlways = NewProperty("text",
	func(l *label) string { return l.text },
	func(l *label, v string) {
		l.text = v
		l.writes++
	},
)

// stubEnvironment reports fixed traits and never reapplies on its own.
type stubEnvironment struct {
	traits Traits
}

func (e *stubEnvironment) Traits() Traits {
	return e.traits
}

// fakeEnvironment reapplies its registry whenever its traits change.
type fakeEnvironment struct {
	traits   Traits
	registry *Registry
}

func newFakeEnvironment(traits Traits) *fakeEnvironment {
	e := &fakeEnvironment{traits: traits}
	e.registry = NewRegistry(e)
	return e
}

func (e *fakeEnvironment) Traits() Traits {
	return e.traits
}

func (e *fakeEnvironment) SetTraits(traits Traits) {
	e.traits = traits
	e.registry.ReapplyAll()
}

// signalRecorder keeps the KeyVariation field of every observed event, by
// signal name. Events without the field are recorded as "".
type signalRecorder struct {
	mu     sync.Mutex
	events map[string][]string
}

func recordSignals(t *testing.T, signals ...capitan.Signal) *signalRecorder {
	t.Helper()
	rec := &signalRecorder{events: make(map[string][]string)}
	observer := capitan.Observe(func(_ context.Context, e *capitan.Event) {
		desc, _ := KeyVariation.From(e)
		rec.mu.Lock()
		rec.events[e.Signal().Name()] = append(rec.events[e.Signal().Name()], desc)
		rec.mu.Unlock()
	}, signals...)
	t.Cleanup(observer.Close)
	return rec
}

func (r *signalRecorder) of(signal capitan.Signal) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events[signal.Name()]...)
}

// requireUnboundOnce fails unless exactly one VariationUnbound event describing
// v was recorded and no VariationApplied event was.
func requireUnboundOnce(t *testing.T, rec *signalRecorder, v fmt.Stringer) {
	t.Helper()
	unbound := rec.of(VariationUnbound)
	if len(unbound) != 1 {
		t.Fatalf("expected 1 unbound event, got %d", len(unbound))
	}
	if unbound[0] != v.String() {
		t.Errorf("expected unbound event to describe %q, got %q", v.String(), unbound[0])
	}
	if applied := rec.of(VariationApplied); len(applied) != 0 {
		t.Errorf("expected no applied events, got %v", applied)
	}
}
