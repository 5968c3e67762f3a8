package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spinball/internal/core"
)

// gameKeys binds key names to game actions. Both WASD-style and arrow
// keys steer the launcher; 1-4 buy the shop slots.
var gameKeys = map[string]core.Action{
	"a":     core.ActionLeft,
	"left":  core.ActionLeft,
	"d":     core.ActionRight,
	"right": core.ActionRight,
	" ":     core.ActionLaunch,
	"enter": core.ActionConfirm,
	"b":     core.ActionBack,
	"esc":   core.ActionBack,
	"p":     core.ActionPause,
	"r":     core.ActionRestart,
	"1":     core.ActionBuy1,
	"2":     core.ActionBuy2,
	"3":     core.ActionBuy3,
	"4":     core.ActionBuy4,
}

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action. Unbound keys give
// ActionNone; q and ctrl+c also report a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch k := msg.String(); k {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	default:
		if a, ok := gameKeys[k]; ok {
			return a, false
		}
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

// MapMouseToFrame records the pointer and turns a left click into a launch.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	switch msg.Action {
	case tea.MouseActionMotion:
		frame.PointAt(msg.X, msg.Y)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			frame.PointAt(msg.X, msg.Y)
			frame.Set(core.ActionLaunch)
		}
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
