package vary

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DefaultDebounce is the default debounce duration for snapshot processing.
const DefaultDebounce = 100 * time.Millisecond

var (
	// ErrRelayStarted is returned when Start is called more than once.
	ErrRelayStarted = errors.New("relay already started")

	// ErrWatcherClosed is returned when the watcher closes before emitting
	// an initial snapshot.
	ErrWatcherClosed = errors.New("watcher closed before emitting initial value")
)

// Relay is an Environment whose traits are supplied by an external source
// through a Watcher. It does not classify anything itself: it decodes and
// validates snapshots produced elsewhere and reapplies its Registry whenever
// they change.
//
// The watch loop runs on its own goroutine, so all access to the Registry and
// to the targets of its Variations must go through Update.
type Relay struct {
	watcher        Watcher
	registry       *Registry
	debounce       time.Duration
	startupTimeout time.Duration
	syncMode       bool
	clock          clockz.Clock
	codec          Codec
	metrics        MetricsProvider
	onStop         func(State)

	state     atomic.Int32
	traits    atomic.Pointer[Traits]
	lastError atomic.Pointer[error]
	history   *errorHistory

	// apply serializes Registry access between Update and the watch loop.
	apply sync.Mutex

	mu      sync.Mutex
	started bool

	changes <-chan []byte
}

// NewRelay creates a Relay fed by watcher. Snapshots are decoded as JSON
// unless another Codec is configured.
//
// Example:
//
//	relay := vary.NewRelay(vary.NewFileWatcher("/run/display/traits.yaml")).
//	    Codec(vary.YAMLCodec{})
//
//	relay.Update(func(r *vary.Registry) {
//	    vary.AddCaptured(r, label, text, vary.AxisHorizontal, "Hi")
//	})
//
//	if err := relay.Start(ctx); err != nil {
//	    log.Printf("initial traits failed: %v", err)
//	}
func NewRelay(watcher Watcher) *Relay {
	r := &Relay{
		watcher:  watcher,
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
		codec:    JSONCodec{},
	}
	r.registry = NewRegistry(r)
	r.state.Store(int32(StateLoading))
	return r
}

// Debounce sets the debounce duration for snapshot processing.
// Snapshots arriving within this duration are coalesced into one update.
// Default: 100ms. Must be called before Start().
func (r *Relay) Debounce(d time.Duration) *Relay {
	r.debounce = d
	return r
}

// SyncMode enables synchronous processing for testing.
// Snapshots after the first are processed only by explicit Process calls.
// Must be called before Start().
func (r *Relay) SyncMode() *Relay {
	r.syncMode = true
	return r
}

// Clock sets a custom clock for time operations.
// Must be called before Start().
func (r *Relay) Clock(clock clockz.Clock) *Relay {
	r.clock = clock
	return r
}

// Codec sets the codec for decoding snapshots.
// Default: JSONCodec. Must be called before Start().
func (r *Relay) Codec(codec Codec) *Relay {
	r.codec = codec
	return r
}

// StartupTimeout bounds the wait for the initial snapshot.
// Default: no timeout. Must be called before Start().
func (r *Relay) StartupTimeout(d time.Duration) *Relay {
	r.startupTimeout = d
	return r
}

// Metrics sets a metrics provider. Must be called before Start().
func (r *Relay) Metrics(provider MetricsProvider) *Relay {
	r.metrics = provider
	return r
}

// OnStop sets a callback invoked with the final state when the relay stops
// watching. Must be called before Start().
func (r *Relay) OnStop(fn func(State)) *Relay {
	r.onStop = fn
	return r
}

// ErrorHistorySize sets the number of recent errors to retain.
// Use 0 (default) to only retain the most recent error via LastError().
// Must be called before Start().
func (r *Relay) ErrorHistorySize(n int) *Relay {
	r.history = newErrorHistory(n)
	return r
}

// Traits implements Environment. Before the first valid snapshot it reports
// Unspecified on both axes.
func (r *Relay) Traits() Traits {
	if ptr := r.traits.Load(); ptr != nil {
		return *ptr
	}
	return Traits{}
}

// Current returns the last valid traits and true, or zero traits and false if
// no valid snapshot has been applied.
func (r *Relay) Current() (Traits, bool) {
	ptr := r.traits.Load()
	if ptr == nil {
		return Traits{}, false
	}
	return *ptr, true
}

// Update runs fn with the relay's Registry while holding the lock the watch
// loop uses to reapply variations.
func (r *Relay) Update(fn func(*Registry)) {
	r.apply.Lock()
	defer r.apply.Unlock()
	fn(r.registry)
}

// State returns the current state of the Relay.
func (r *Relay) State() State {
	return State(r.state.Load())
}

// LastError returns the last error encountered, or nil.
func (r *Relay) LastError() error {
	ptr := r.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// ErrorHistory returns recent errors, oldest first, or nil when history is
// disabled.
func (r *Relay) ErrorHistory() []error {
	return r.history.all()
}

// Start begins watching. It blocks until the first snapshot is processed,
// then continues watching asynchronously. If the first snapshot fails, Start
// returns the error but keeps watching for a valid one.
//
// Start can only be called once.
func (r *Relay) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return ErrRelayStarted
	}
	r.started = true
	r.mu.Unlock()

	capitan.Emit(ctx, RelayStarted,
		KeyDebounce.Field(r.debounce),
	)

	changes, err := r.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	startupCtx := ctx
	if r.startupTimeout > 0 {
		var cancel context.CancelFunc
		startupCtx, cancel = r.clock.WithTimeout(ctx, r.startupTimeout)
		defer cancel()
	}

	var initialErr error
	select {
	case <-startupCtx.Done():
		if r.startupTimeout > 0 && errors.Is(startupCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("startup timeout: watcher did not emit initial traits within %v", r.startupTimeout)
		}
		return startupCtx.Err()
	case raw, ok := <-changes:
		if !ok {
			return ErrWatcherClosed
		}
		r.received(ctx)
		initialErr = r.process(ctx, raw)
	}

	if r.syncMode {
		r.changes = changes
		return initialErr
	}

	go r.watch(ctx, changes)

	return initialErr
}

// Process reads and processes the next snapshot in sync mode.
// It returns false if not in sync mode or no snapshot is pending.
func (r *Relay) Process(ctx context.Context) bool {
	if !r.syncMode {
		return false
	}

	select {
	case raw, ok := <-r.changes:
		if !ok {
			return false
		}
		r.received(ctx)
		_ = r.process(ctx, raw) //nolint:errcheck // Errors stored via fail
		return true
	default:
		return false
	}
}

func (r *Relay) received(ctx context.Context) {
	capitan.Emit(ctx, RelayChangeReceived)
	if r.metrics != nil {
		r.metrics.OnChangeReceived()
	}
}

// process decodes, validates and applies one snapshot.
func (r *Relay) process(ctx context.Context, raw []byte) error {
	start := r.clock.Now()
	oldState := r.State()

	var next Traits
	if err := r.codec.Unmarshal(raw, &next); err != nil {
		r.fail(ctx, oldState, "decode", start, err)
		capitan.Emit(ctx, RelayDecodeFailed,
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("decode failed: %w", err)
	}

	if err := next.Validate(); err != nil {
		r.fail(ctx, oldState, "validate", start, err)
		capitan.Emit(ctx, RelayValidationFailed,
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("validation failed: %w", err)
	}

	prev, had := r.Current()
	if !had || prev != next {
		r.apply.Lock()
		r.traits.Store(&next)
		r.registry.ReapplyAll()
		r.apply.Unlock()

		capitan.Emit(ctx, RelayTraitsChanged,
			KeyHorizontal.Field(next.Horizontal.String()),
			KeyVertical.Field(next.Vertical.String()),
		)
	}

	r.lastError.Store(nil)
	r.history.clear()
	r.transitionState(ctx, oldState, StateHealthy)
	if r.metrics != nil {
		r.metrics.OnProcessSuccess(r.clock.Since(start))
	}
	return nil
}

// fail records err and moves to the failure state. Previous traits stay in
// effect.
func (r *Relay) fail(ctx context.Context, oldState State, stage string, start time.Time, err error) {
	e := err
	r.lastError.Store(&e)
	r.history.push(err)
	r.transitionState(ctx, oldState, r.failureState())
	if r.metrics != nil {
		r.metrics.OnProcessFailure(stage, r.clock.Since(start))
	}
}

// failureState is Empty until a valid snapshot has been applied.
func (r *Relay) failureState() State {
	if r.traits.Load() == nil {
		return StateEmpty
	}
	return StateDegraded
}

func (r *Relay) transitionState(ctx context.Context, oldState, newState State) {
	if oldState == newState {
		return
	}
	r.state.Store(int32(newState))
	capitan.Emit(ctx, RelayStateChanged,
		KeyOldState.Field(oldState.String()),
		KeyNewState.Field(newState.String()),
	)
	if r.metrics != nil {
		r.metrics.OnStateChange(oldState, newState)
	}
}

// watch processes snapshots from the watcher channel with debouncing.
func (r *Relay) watch(ctx context.Context, changes <-chan []byte) {
	defer func() {
		final := r.State()
		capitan.Emit(ctx, RelayStopped,
			KeyState.Field(final.String()),
		)
		if r.onStop != nil {
			r.onStop(final)
		}
	}()

	var (
		timer      clockz.Timer
		pending    []byte
		hasPending bool
	)

	for {
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case raw, ok := <-changes:
			if !ok {
				if hasPending {
					_ = r.process(ctx, pending) //nolint:errcheck // Errors stored via fail
				}
				return
			}

			r.received(ctx)
			pending = raw
			hasPending = true

			if timer == nil {
				timer = r.clock.NewTimer(r.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(r.debounce)
			}

		case <-timerC:
			if hasPending {
				_ = r.process(ctx, pending) //nolint:errcheck // Errors stored via fail
				hasPending = false
			}
		}
	}
}
