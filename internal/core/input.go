package core

// Action represents a semantic player intent, abstracted from physical keys.
// The platform maps keys and mouse gestures to actions; the game consumes
// steering through its joystick and everything else through lifecycle calls.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow - steer left
	ActionRight        // D, Right arrow - steer right
	ActionUp           // W, Up arrow - steer toward the goal
	ActionStart        // Enter, Space - start or restart a run
	ActionHelp         // ? - toggle full help
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionStart:
		return "Start"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsSteering reports whether the action moves the player.
func (a Action) IsSteering() bool {
	return a == ActionLeft || a == ActionRight || a == ActionUp
}
