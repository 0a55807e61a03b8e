package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// KeyMapper translates Bubble Tea key messages to simulation keys and menu
// actions. This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a simulation key. shift is set for
// characters typed with shift held (uppercase letters, underscore).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k core.Key, shift bool, ok bool) {
	switch msg.Type {
	case tea.KeyUp:
		return core.KeyUp, false, true
	case tea.KeyDown:
		return core.KeyDown, false, true
	case tea.KeyLeft:
		return core.KeyLeft, false, true
	case tea.KeyRight:
		return core.KeyRight, false, true
	case tea.KeySpace:
		return core.KeySpace, false, true
	case tea.KeyEnter:
		return core.KeyEnter, false, true
	case tea.KeyEsc:
		return core.KeyEscape, false, true
	case tea.KeyBackspace, tea.KeyCtrlH:
		return core.KeyBackspace, false, true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 || msg.Alt {
			return 0, false, false
		}
		return core.KeyForRune(msg.Runes[0])
	}
	return 0, false, false
}

// IsQuit reports whether the key always quits, even while typing a name.
func (km *KeyMapper) IsQuit(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyCtrlC
}

// IsScreenshot reports whether the key requests a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyCtrlS
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
