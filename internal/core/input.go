package core

// Action represents a semantic player action, abstracted from physical key presses.
// The keymap turns terminal keys into Actions; the model turns Actions into
// engine commands.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, k - move focus up
	ActionDown           // Down arrow, j - move focus down
	ActionLeft           // Left arrow, h - move focus left (wraps to previous row)
	ActionRight          // Right arrow, l - move focus right (wraps to next row)
	ActionReveal         // Space, Enter - reveal focused cell
	ActionFlag           // F - toggle flag on focused cell
	ActionRestart        // R - new board with the same configuration
	ActionHelp           // ? - toggle full help
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action moves keyboard focus.
func (a Action) IsMove() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
