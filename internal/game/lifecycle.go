package game

// State is the lifecycle state of a session.
type State int

const (
	StateIdle    State = iota // before the first run, or after Reset
	StateRunning              // simulation advancing
	StateEnded                // run over; Outcome says how
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Outcome is the result of a finished run.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeWin:
		return "Win"
	case OutcomeLose:
		return "Lose"
	default:
		return "Unknown"
	}
}

// Trigger is an input to the lifecycle state machine.
type Trigger int

const (
	TriggerStart Trigger = iota // user asked for a (new) run
	TriggerWin                  // player reached the goal
	TriggerLose                 // player hit a hazard
	TriggerReset                // back to the title screen
)

// String returns a human-readable name for the trigger.
func (t Trigger) String() string {
	switch t {
	case TriggerStart:
		return "Start"
	case TriggerWin:
		return "Win"
	case TriggerLose:
		return "Lose"
	case TriggerReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// transitions is the complete lifecycle table. Pairs missing from it are
// ignored, so Start while Running or Win while Ended do nothing.
var transitions = map[State]map[Trigger]State{
	StateIdle: {
		TriggerStart: StateRunning,
		TriggerReset: StateIdle,
	},
	StateRunning: {
		TriggerWin:   StateEnded,
		TriggerLose:  StateEnded,
		TriggerReset: StateIdle,
	},
	StateEnded: {
		TriggerStart: StateRunning,
		TriggerReset: StateIdle,
	},
}

// Lifecycle tracks the current state and the outcome of the last run.
// The zero value is Idle.
type Lifecycle struct {
	state   State
	outcome Outcome
}

// State returns the current state.
func (l *Lifecycle) State() State {
	return l.state
}

// Outcome returns the outcome of the finished run, or OutcomeNone.
func (l *Lifecycle) Outcome() Outcome {
	return l.outcome
}

// Can reports whether the trigger applies in the current state.
func (l *Lifecycle) Can(t Trigger) bool {
	_, ok := transitions[l.state][t]
	return ok
}

// Fire applies the trigger. It returns false and leaves the state untouched
// when the table has no entry for it.
func (l *Lifecycle) Fire(t Trigger) bool {
	next, ok := transitions[l.state][t]
	if !ok {
		return false
	}

	l.state = next
	switch t {
	case TriggerWin:
		l.outcome = OutcomeWin
	case TriggerLose:
		l.outcome = OutcomeLose
	default:
		l.outcome = OutcomeNone
	}
	return true
}
