package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// Player one uses the arrow keys and space, player two uses A/D/W. When only
// one player is present both sets drive player one.
type KeyMapper struct {
	players int
}

// NewKeyMapper creates a key mapper for the given number of local players.
func NewKeyMapper(players int) *KeyMapper {
	return &KeyMapper{players: max(players, 1)}
}

// MapKey translates a key message to a player and action.
// Shared keys (pause, mute, restart) are reported for player one.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (id core.PlayerID, action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.Player1, core.ActionQuit, true
	}

	switch key {
	case "left":
		return core.Player1, core.ActionLeft, false
	case "right":
		return core.Player1, core.ActionRight, false
	case "up", " ":
		return core.Player1, core.ActionFire, false
	case "a":
		return km.secondary(), core.ActionLeft, false
	case "d":
		return km.secondary(), core.ActionRight, false
	case "w":
		return km.secondary(), core.ActionFire, false
	case "enter":
		return core.Player1, core.ActionConfirm, false
	case "b", "esc":
		return core.Player1, core.ActionBack, false
	case "p":
		return core.Player1, core.ActionPause, false
	case "m":
		return core.Player1, core.ActionMute, false
	case "r":
		return core.Player1, core.ActionRestart, false
	}

	return core.Player1, core.ActionNone, false
}

func (km *KeyMapper) secondary() core.PlayerID {
	if km.players >= 2 {
		return core.Player2
	}
	return core.Player1
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
	MenuActionScoreboard
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
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// heldInput turns key presses into per-tick input. Terminals only report
// presses and auto-repeats, never releases, so movement and fire stay
// active for a few ticks after the last press. Toggles fire once.
type heldInput struct {
	ticks   int
	held    map[core.PlayerID]map[core.Action]int
	pending core.MultiInputFrame
}

func newHeldInput(ticks int) *heldInput {
	return &heldInput{
		ticks:   max(ticks, 1),
		held:    make(map[core.PlayerID]map[core.Action]int),
		pending: core.NewMultiInputFrame(),
	}
}

func holdable(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight || a == core.ActionFire
}

// press records one key press.
func (h *heldInput) press(id core.PlayerID, a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !holdable(a) {
		f := h.pending.Player(id)
		f.Set(a)
		h.pending.SetPlayer(id, f)
		return
	}
	m := h.held[id]
	if m == nil {
		m = make(map[core.Action]int)
		h.held[id] = m
	}
	// Reversing drops the old direction at once.
	switch a {
	case core.ActionLeft:
		delete(m, core.ActionRight)
	case core.ActionRight:
		delete(m, core.ActionLeft)
	}
	m[a] = h.ticks
}

// frame builds this tick's input and ages the held actions.
func (h *heldInput) frame() core.MultiInputFrame {
	out := core.NewMultiInputFrame()
	for id, f := range h.pending.ByPlayer {
		out.SetPlayer(id, f.Clone())
	}
	h.pending.Clear()

	for id, m := range h.held {
		f := out.Player(id)
		for a, left := range m {
			f.Set(a)
			if left <= 1 {
				delete(m, a)
			} else {
				m[a] = left - 1
			}
		}
		out.SetPlayer(id, f)
	}
	return out
}

// reset forgets all held and pending input.
func (h *heldInput) reset() {
	clear(h.held)
	h.pending.Clear()
}
