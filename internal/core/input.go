package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - nudge the pointer left
	ActionRight           // D, Right arrow - nudge the pointer right
	ActionActivate        // Space, Enter, mouse click - drop / press RETRY
	ActionRestart         // R key - restart game after game over
	ActionPause           // P, Escape - pause/unpause game
	ActionQuit            // Q, Ctrl+C - exit game
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
	case ActionActivate:
		return "Activate"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the last known mouse position in screen cells.
type Pointer struct {
	X, Y  int
	Valid bool // false until the terminal reported a mouse position
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame and the
// current pointer position.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer is sticky across frames: Clear keeps it.
	Pointer Pointer

	// PointerMoved is set when the pointer changed during this frame.
	PointerMoved bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// MovePointer records a new pointer position.
func (f *InputFrame) MovePointer(x, y int) {
	f.Pointer = Pointer{X: x, Y: y, Valid: true}
	f.PointerMoved = true
}

// Clear resets all actions for the next frame. The pointer position is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.PointerMoved = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.PointerMoved = f.PointerMoved
	return clone
}
