package core

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, K, Up arrow - move cursor up
	ActionDown              // S, J, Down arrow - move cursor down
	ActionLeft              // A, H, Left arrow - move cursor left
	ActionRight             // D, L, Right arrow - move cursor right
	ActionFire              // Enter, Space - shoot at the cursor
	ActionRestart           // R - new match after game over
	ActionHelp              // ? - toggle full help
	ActionScreenshot        // Ctrl+S - dump the screen to a file
	ActionQuit              // Q, Ctrl+C - exit
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
	case ActionFire:
		return "Fire"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the cursor movement for directional actions.
// dx moves between rows, dy between columns.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionUp:
		return -1, 0
	case ActionDown:
		return 1, 0
	case ActionLeft:
		return 0, -1
	case ActionRight:
		return 0, 1
	default:
		return 0, 0
	}
}
