package serializer

// State represents the current lifecycle state of a serializer session
type State int

const (
	// StateCreated indicates the session was created but has no sink bound
	StateCreated State = iota
	// StateBound indicates a sink is bound and statements may be serialized
	StateBound
	// StateEnded indicates serialization ended and the sink was released
	StateEnded
	// StateClosed indicates the session was closed and may not be reused
	StateClosed
)

// String returns a string representation of the session state
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateBound:
		return "bound"
	case StateEnded:
		return "ended"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
