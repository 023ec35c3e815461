package vary

import "github.com/zoobzio/capitan"

// Field keys for vary events.
var (
	// KeyVariation is the description of the Variation involved.
	KeyVariation = capitan.NewStringKey("variation")

	// KeyCount is the number of Variations involved.
	KeyCount = capitan.NewIntKey("count")

	// KeyHorizontal is the horizontal classification at the time of the event.
	KeyHorizontal = capitan.NewStringKey("horizontal")

	// KeyVertical is the vertical classification at the time of the event.
	KeyVertical = capitan.NewStringKey("vertical")

	// KeyState is the current state of a Relay.
	KeyState = capitan.NewStringKey("state")

	// KeyOldState is the previous state before a transition.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the new state after a transition.
	KeyNewState = capitan.NewStringKey("new_state")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyDebounce is the configured debounce duration.
	KeyDebounce = capitan.NewDurationKey("debounce")
)
