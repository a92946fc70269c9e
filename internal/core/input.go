package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - spin the log left
	ActionRight          // D, Right arrow - spin the log right
	ActionUp             // W, Up arrow - walk forward
	ActionDown           // S, Down arrow - walk backward
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause game
	ActionDebug          // F2, I - toggle the debug panel
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
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionDebug:
		return "Debug"
	default:
		return "Unknown"
	}
}

// Input is the capability the simulation samples once per tick.
// The four queries are independent; more than one may be true at once.
type Input interface {
	MovingLeft() bool
	MovingRight() bool
	MovingUp() bool
	MovingDown() bool
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that are active during this frame.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	Actions map[Action]bool
}

var _ Input = InputFrame{}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds an input frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// MovingLeft implements Input.
func (f InputFrame) MovingLeft() bool { return f.Has(ActionLeft) }

// MovingRight implements Input.
func (f InputFrame) MovingRight() bool { return f.Has(ActionRight) }

// MovingUp implements Input.
func (f InputFrame) MovingUp() bool { return f.Has(ActionUp) }

// MovingDown implements Input.
func (f InputFrame) MovingDown() bool { return f.Has(ActionDown) }
