package vary

import "github.com/zoobzio/capitan"

// Variation lifecycle signals.
var (
	// VariationAdded is emitted when a Variation is added to a Registry.
	VariationAdded = capitan.NewSignal(
		"vary.variation.added",
		"Variation registered with environment",
	)

	// VariationRemoved is emitted when a Variation is removed from a Registry.
	VariationRemoved = capitan.NewSignal(
		"vary.variation.removed",
		"Variation removed from environment",
	)

	// VariationApplied is emitted when a Variation writes its value.
	VariationApplied = capitan.NewSignal(
		"vary.variation.applied",
		"Variation value written to target",
	)

	// VariationSkipped is emitted when a matching Variation elides a write
	// because the target already holds its value.
	VariationSkipped = capitan.NewSignal(
		"vary.variation.skipped",
		"Variation write elided, value unchanged",
	)

	// VariationUnbound is emitted when a Variation without an environment is
	// asked to apply.
	VariationUnbound = capitan.NewSignal(
		"vary.variation.unbound",
		"Variation applied without environment",
	)

	// RegistryReapplied is emitted after a Registry reapplies its Variations.
	RegistryReapplied = capitan.NewSignal(
		"vary.registry.reapplied",
		"Registry variations reapplied",
	)
)

// Relay signals.
var (
	// RelayStarted is emitted when a Relay begins watching.
	RelayStarted = capitan.NewSignal(
		"vary.relay.started",
		"Relay watching started",
	)

	// RelayStopped is emitted when a Relay stops watching.
	RelayStopped = capitan.NewSignal(
		"vary.relay.stopped",
		"Relay watching stopped",
	)

	// RelayStateChanged is emitted when a Relay transitions between states.
	RelayStateChanged = capitan.NewSignal(
		"vary.relay.state.changed",
		"Relay state transition",
	)

	// RelayChangeReceived is emitted when raw data is received from the watcher.
	RelayChangeReceived = capitan.NewSignal(
		"vary.relay.change.received",
		"Raw traits received from watcher",
	)

	// RelayDecodeFailed is emitted when a traits snapshot cannot be decoded.
	RelayDecodeFailed = capitan.NewSignal(
		"vary.relay.decode.failed",
		"Traits decoding failed",
	)

	// RelayValidationFailed is emitted when a decoded snapshot is invalid.
	RelayValidationFailed = capitan.NewSignal(
		"vary.relay.validation.failed",
		"Traits validation failed",
	)

	// RelayTraitsChanged is emitted when new traits are stored and reapplied.
	RelayTraitsChanged = capitan.NewSignal(
		"vary.relay.traits.changed",
		"Traits changed and variations reapplied",
	)
)
