package session

// State is the lifecycle state of a wallet for one identifier.
type State int32

const (
	// Uninitiated: no stored material and no session.
	Uninitiated State = iota
	// InitiatedClosed: stored material exists, no session is open.
	InitiatedClosed
	// Opened: a session is registered.
	Opened
	// Destroyed: material and session are gone. Terminal for a handle;
	// the identifier itself starts over as Uninitiated.
	Destroyed
)

func (s State) String() string {
	switch s {
	case Uninitiated:
		return "uninitiated"
	case InitiatedClosed:
		return "initiated_closed"
	case Opened:
		return "opened"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}
