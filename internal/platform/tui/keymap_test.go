package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name    string
		players int
		msg     tea.KeyMsg
		id      core.PlayerID
		action  core.Action
		quit    bool
	}{
		{"left arrow", 2, tea.KeyMsg{Type: tea.KeyLeft}, core.Player1, core.ActionLeft, false},
		{"right arrow", 2, tea.KeyMsg{Type: tea.KeyRight}, core.Player1, core.ActionRight, false},
		{"up fires", 2, tea.KeyMsg{Type: tea.KeyUp}, core.Player1, core.ActionFire, false},
		{"space fires", 2, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.Player1, core.ActionFire, false},
		{"a is player two", 2, runeKey('a'), core.Player2, core.ActionLeft, false},
		{"d is player two", 2, runeKey('d'), core.Player2, core.ActionRight, false},
		{"w is player two fire", 2, runeKey('w'), core.Player2, core.ActionFire, false},
		{"a drives player one when alone", 1, runeKey('a'), core.Player1, core.ActionLeft, false},
		{"pause", 2, runeKey('p'), core.Player1, core.ActionPause, false},
		{"mute", 1, runeKey('m'), core.Player1, core.ActionMute, false},
		{"restart", 1, runeKey('r'), core.Player1, core.ActionRestart, false},
		{"escape is back", 1, tea.KeyMsg{Type: tea.KeyEsc}, core.Player1, core.ActionBack, false},
		{"q quits", 1, runeKey('q'), core.Player1, core.ActionQuit, true},
		{"ctrl+c quits", 2, tea.KeyMsg{Type: tea.KeyCtrlC}, core.Player1, core.ActionQuit, true},
		{"unbound", 1, runeKey('z'), core.Player1, core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, action, quit := NewKeyMapper(tt.players).MapKey(tt.msg)
			if id != tt.id || action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v, %v), want (%v, %v, %v)",
					tt.msg.String(), id, action, quit, tt.id, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper(1)
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{runeKey('l'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHeldInputKeepsMovementForHoldTicks(t *testing.T) {
	h := newHeldInput(3)
	h.press(core.Player1, core.ActionLeft)

	for tick := 1; tick <= 3; tick++ {
		if !h.frame().Player1().Has(core.ActionLeft) {
			t.Fatalf("tick %d: left should still be held", tick)
		}
	}
	if h.frame().Player1().Has(core.ActionLeft) {
		t.Error("left should be released after hold ticks")
	}
}

func TestHeldInputReversalDropsOldDirection(t *testing.T) {
	h := newHeldInput(5)
	h.press(core.Player2, core.ActionLeft)
	h.press(core.Player2, core.ActionRight)

	f := h.frame().Player2()
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Errorf("after reversal frame = %v", f.Actions)
	}
}

func TestHeldInputTogglesFireOnce(t *testing.T) {
	h := newHeldInput(5)
	h.press(core.Player1, core.ActionPause)

	if !h.frame().Any(core.ActionPause) {
		t.Fatal("pause missing on first frame")
	}
	if h.frame().Any(core.ActionPause) {
		t.Error("pause repeated on second frame")
	}
}

func TestHoldTicksFor(t *testing.T) {
	if got := holdTicksFor(60); got != 7 {
		t.Errorf("holdTicksFor(60) = %d, want 7", got)
	}
	if got := holdTicksFor(1); got != 1 {
		t.Errorf("holdTicksFor(1) = %d, want 1", got)
	}
}
