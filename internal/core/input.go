package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left, H, A - shift piece one column left
	ActionRight           // Right, L, D - shift piece one column right
	ActionSoftDrop        // Down, J, S - shift piece one row down
	ActionRotate          // Up, K, W, X - rotate piece clockwise
	ActionHardDrop        // Space - drop piece to rest and lock it
	ActionPause           // P, Escape - pause/unpause game
	ActionRestart         // R key - restart game after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
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
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Moves returns the (row, column) delta for movement actions.
// The second result is false for actions that are not plain moves.
func (a Action) Moves() (dRow, dCol int, ok bool) {
	switch a {
	case ActionLeft:
		return 0, -1, true
	case ActionRight:
		return 0, 1, true
	case ActionSoftDrop:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}
