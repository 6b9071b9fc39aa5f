package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/APeffer/fidgetball/internal/core"
)

// KeyMapper translates Bubble Tea key messages to toy actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a toy action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "left", "h":
		return core.ActionNudgeLeft, false
	case "right", "l":
		return core.ActionNudgeRight, false
	case "up", "k":
		return core.ActionNudgeUp, false
	case "down", "j":
		return core.ActionNudgeDown, false
	case "]":
		return core.ActionBounceUp, false
	case "[":
		return core.ActionBounceDown, false
	case "=", "+":
		return core.ActionFrictionUp, false
	case "-":
		return core.ActionFrictionDown, false
	case ".":
		return core.ActionPitchUp, false
	case ",":
		return core.ActionPitchDown, false
	case "c":
		return core.ActionCycleColor, false
	case "v":
		return core.ActionToggleChannel, false
	case "r":
		return core.ActionRecenter, false
	case "p", "esc":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
