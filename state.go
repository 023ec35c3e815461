package vary

// State represents the current state of a Relay.
type State int32

const (
	// StateLoading indicates the Relay has not yet processed a snapshot.
	StateLoading State = iota

	// StateHealthy indicates the last snapshot was decoded, validated and applied.
	StateHealthy

	// StateDegraded indicates the last snapshot failed. The previous traits
	// remain in effect.
	StateDegraded

	// StateEmpty indicates no valid snapshot has ever been obtained. The Relay
	// reports Unspecified on both axes and keeps watching.
	StateEmpty
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateHealthy:
		return "healthy"
	case StateDegraded:
		return "degraded"
	case StateEmpty:
		return "empty"
	default:
		return "unknown"
	}
}
