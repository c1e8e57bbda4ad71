package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// While typing, printable keys belong to the name being entered, so only
// Enter, Backspace and Ctrl+C map to actions.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, typing bool) core.Action {
	switch msg.Type {
	case tea.KeyCtrlC:
		return core.ActionQuit
	case tea.KeyEnter:
		return core.ActionConfirm
	case tea.KeyBackspace:
		return core.ActionBackspace
	}
	if typing {
		return core.ActionNone
	}

	switch msg.String() {
	case "up":
		return core.ActionUp
	case "down":
		return core.ActionDown
	case "left":
		return core.ActionLeft
	case "right":
		return core.ActionRight
	case "p", "P", "esc":
		return core.ActionPause
	case "a", "A":
		return core.ActionAutopilot
	case "r", "R":
		return core.ActionRestart
	case "l", "L":
		return core.ActionSave
	case "1":
		return core.ActionDifficulty1
	case "2":
		return core.ActionDifficulty2
	case "3":
		return core.ActionDifficulty3
	case "q", "Q":
		return core.ActionQuit
	}

	return core.ActionNone
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, typing bool) bool {
	action := km.MapKey(msg, typing)
	switch action {
	case core.ActionQuit:
		return true
	case core.ActionNone:
		if typing && msg.Type == tea.KeyRunes && !msg.Alt {
			for _, r := range msg.Runes {
				frame.Type(r)
			}
		}
	default:
		frame.Set(action)
	}
	return false
}
