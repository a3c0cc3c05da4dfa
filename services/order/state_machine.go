package order

// transitions is the full lifecycle graph. Guards that depend on more than
// the pair of states (grace windows, roles) live with the service methods;
// this table is the single source of truth for which edges exist at all.
var transitions = map[string][]string{
	StatusPending:    {StatusAccepted, StatusCancelled},
	StatusAccepted:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled, StatusDisputed},
	StatusCompleted:  {StatusDisputed},
	StatusDisputed:   {StatusCompleted, StatusCancelled},
}

// IsTerminal reports whether no party-initiated transition leaves s.
// Completed still admits dispute, and disputed admits operator resolution;
// terminal here means the session itself is over.
func IsTerminal(s string) bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusDisputed:
		return true
	}
	return false
}

// CanTransition reports whether the edge from -> to exists in the
// lifecycle graph.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Cancellable reports whether a cancel request is ever admissible from s.
// From in_progress the service additionally checks the grace window.
func Cancellable(s string) bool {
	return CanTransition(s, StatusCancelled) && s != StatusDisputed
}

// Disputable reports whether a dispute can be opened from s.
func Disputable(s string) bool {
	return s == StatusInProgress || s == StatusCompleted
}
