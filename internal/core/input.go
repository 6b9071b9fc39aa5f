package core

// Action represents a semantic toy action, abstracted from physical key presses.
// The platform maps raw terminal input to these intents.
type Action int

const (
	ActionNone          Action = iota
	ActionNudgeLeft            // H, Left arrow - manual tilt impulse left
	ActionNudgeRight           // L, Right arrow - manual tilt impulse right
	ActionNudgeUp              // K, Up arrow - manual tilt impulse up
	ActionNudgeDown            // J, Down arrow - manual tilt impulse down
	ActionBounceUp             // ] - increase bounciness
	ActionBounceDown           // [ - decrease bounciness
	ActionFrictionUp           // = - raise friction dial (more drag)
	ActionFrictionDown         // - - lower friction dial (less drag)
	ActionPitchUp              // . - raise feedback pitch
	ActionPitchDown            // , - lower feedback pitch
	ActionCycleColor           // C - cycle ball color
	ActionToggleChannel        // V - toggle audio/haptic feedback channel
	ActionRecenter             // R - recenter the ball, zero velocity
	ActionPause                // P, Esc - pause/unpause the loop
	ActionQuit                 // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNudgeLeft:
		return "NudgeLeft"
	case ActionNudgeRight:
		return "NudgeRight"
	case ActionNudgeUp:
		return "NudgeUp"
	case ActionNudgeDown:
		return "NudgeDown"
	case ActionBounceUp:
		return "BounceUp"
	case ActionBounceDown:
		return "BounceDown"
	case ActionFrictionUp:
		return "FrictionUp"
	case ActionFrictionDown:
		return "FrictionDown"
	case ActionPitchUp:
		return "PitchUp"
	case ActionPitchDown:
		return "PitchDown"
	case ActionCycleColor:
		return "CycleColor"
	case ActionToggleChannel:
		return "ToggleChannel"
	case ActionRecenter:
		return "Recenter"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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
