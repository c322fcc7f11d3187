package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkravets/chomp-arcade/internal/core"
)

// gameKeys maps terminal keys to game actions. Arrows, WASD and vim keys
// all steer; the table is the single place bindings live.
var gameKeys = map[string]core.Action{
	"ctrl+c": core.ActionQuit,
	"q":      core.ActionQuit,
	"w":      core.ActionUp,
	"up":     core.ActionUp,
	"k":      core.ActionUp,
	"s":      core.ActionDown,
	"down":   core.ActionDown,
	"j":      core.ActionDown,
	"a":      core.ActionLeft,
	"left":   core.ActionLeft,
	"h":      core.ActionLeft,
	"d":      core.ActionRight,
	"right":  core.ActionRight,
	"l":      core.ActionRight,
	" ":      core.ActionConfirm,
	"enter":  core.ActionConfirm,
	"b":      core.ActionBack,
	"esc":    core.ActionBack,
	"p":      core.ActionPause,
	"r":      core.ActionRestart,
}

// KeyMapper translates Bubble Tea key messages to game actions. It keeps
// key bindings out of the models and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action. The second result
// reports whether the key is a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	a, ok := gameKeys[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return a, a == core.ActionQuit
}

// MapKeyToFrame records a key press in an input frame. Returns true when
// the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction is a menu-specific intent derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

var menuKeys = map[string]MenuAction{
	"ctrl+c": MenuActionQuit,
	"q":      MenuActionQuit,
	"w":      MenuActionUp,
	"up":     MenuActionUp,
	"k":      MenuActionUp,
	"s":      MenuActionDown,
	"down":   MenuActionDown,
	"j":      MenuActionDown,
	"enter":  MenuActionSelect,
	" ":      MenuActionSelect,
	"tab":    MenuActionScoreboard,
	"b":      MenuActionBack,
	"esc":    MenuActionBack,
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return menuKeys[msg.String()]
}
