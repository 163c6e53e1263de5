package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
// Bindings are checked in order; the first match wins.
type KeyMapper struct {
	quit key.Binding
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	bind := func(help, desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
	}

	return &KeyMapper{
		quit: bind("q", "quit", "ctrl+c", "q"),
		game: []actionBinding{
			{bind("wasd", "move", "w", "up"), core.ActionMoveUp},
			{bind("", "", "s", "down"), core.ActionMoveDown},
			{bind("", "", "a", "left"), core.ActionMoveLeft},
			{bind("", "", "d", "right"), core.ActionMoveRight},
			{bind("space", "moxa", " "), core.ActionPlace},
			{bind("ijkl", "needle", "i"), core.ActionFireUp},
			{bind("", "", "k"), core.ActionFireDown},
			{bind("", "", "j"), core.ActionFireLeft},
			{bind("", "", "l"), core.ActionFireRight},
			{bind("enter", "next", "enter"), core.ActionConfirm},
			{bind("b", "menu", "b"), core.ActionBack},
			{bind("p", "pause", "p", "esc"), core.ActionPause},
			{bind("r", "retry", "r"), core.ActionRestart},
		},
		menu: []menuBinding{
			{bind("", "", "w", "up", "k"), MenuActionUp},
			{bind("", "", "s", "down", "j"), MenuActionDown},
			{bind("", "", "a", "left", "h"), MenuActionLeft},
			{bind("", "", "d", "right", "l"), MenuActionRight},
			{bind("", "", "enter", " "), MenuActionSelect},
			{bind("", "", "b", "esc"), MenuActionBack},
			{bind("", "", "tab"), MenuActionScoreboard},
		},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, false
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

// GameHelp returns the bindings worth listing in a help line. Directional
// variants share their first binding's entry.
func (km *KeyMapper) GameHelp() []key.Binding {
	out := make([]key.Binding, 0, len(km.game)+1)
	for _, b := range km.game {
		if b.binding.Help().Key != "" {
			out = append(out, b.binding)
		}
	}
	return append(out, km.quit)
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
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action. Vim keys move too.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, km.quit) {
		return MenuActionQuit
	}
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
