package core

// Action represents a semantic input event, abstracted from physical key presses.
// The platform maps keys to actions; the session consumes them edge-triggered.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space and any other key - primary action (start, jump, dismiss)
	ActionConfirm        // Enter - submit name entry
	ActionQuit           // Esc, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
