package core

// Action represents a semantic game action, abstracted from physical key
// presses. The key mapping layer owns which keys produce which action; the
// simulation only ever sees actions.
type Action int

const (
	ActionNone      Action = iota
	ActionLeftUp           // left paddle up (default: W)
	ActionLeftDown         // left paddle down (default: S)
	ActionRightUp          // right paddle up (default: Up arrow)
	ActionRightDown        // right paddle down (default: Down arrow)
	ActionPause            // pause/unpause the match
	ActionRestart          // restart after the match ends
	ActionMute             // toggle sound
	ActionQuit             // exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame, for both
// players; actions are side-specific so one frame covers the whole match.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
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

// Axis folds a pair of held actions into a movement axis: up contributes
// +1, down -1, both held cancel to 0. The result is always in [-1, 1].
func (f InputFrame) Axis(up, down Action) float64 {
	var a float64
	if f.Has(up) {
		a++
	}
	if f.Has(down) {
		a--
	}
	return a
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
