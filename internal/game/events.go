package game

import "github.com/google/uuid"

// EventKind identifies a lifecycle event.
type EventKind int

const (
	EventStarted EventKind = iota
	EventWon
	EventLost
	EventReset
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is emitted after every lifecycle transition.
type Event struct {
	Kind     EventKind
	RunID    uuid.UUID
	Elapsed  float64 // simulated seconds in the run
	Steps    int     // simulation steps in the run
	Distance int     // distance left to the goal
	Hazards  int     // obstacles plus patrols in the layout
}

// Listener receives lifecycle events. Listeners run synchronously inside
// the call that caused the transition and must not call back into the
// session's Start, Reset or Step.
type Listener func(Event)
