package core

// Action represents a semantic game control, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // thrust forward
	ActionDown           // thrust in reverse
	ActionLeft           // rotate counter-clockwise
	ActionRight          // rotate clockwise
	ActionFire           // launch a projectile
	ActionRestart        // start a new run after game over
	ActionQuit           // stop the loop
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the control state sampled by one poll of the input collaborator.
// Held holds level-triggered controls (currently down), Pressed holds
// edge-triggered controls (went down since the previous poll).
type InputFrame struct {
	Held    map[Action]bool
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Hold marks an action as currently held.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Press marks an action as just pressed.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// IsHeld reports whether the action is currently held.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// WasPressed reports whether the action was pressed since the previous poll.
func (f InputFrame) WasPressed(a Action) bool {
	return f.Pressed[a]
}

// Clear resets all actions for the next poll.
func (f *InputFrame) Clear() {
	clear(f.Held)
	clear(f.Pressed)
}
