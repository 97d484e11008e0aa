package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/highscore"
)

type failingStore struct {
	highscore.MemoryStore
}

func (failingStore) Singles(context.Context, int) ([]highscore.SinglePlayerScore, error) {
	return nil, errors.New("offline")
}

func TestScoreboardTabs(t *testing.T) {
	ctx := context.Background()
	store := highscore.NewMemoryStore()
	store.AddSingle(ctx, highscore.SinglePlayerScore{PlayerOneName: "solo", Score: 10})
	store.AddSingle(ctx, highscore.SinglePlayerScore{PlayerOneName: "champ", Score: 99})
	store.AddMulti(ctx, highscore.MultiPlayerScore{PlayerOneName: "a", PlayerTwoName: "b", Score: 50})

	m := NewScoreboardModel(store, highscore.ModeSingle, 100, 30)
	if len(m.rows) != 2 || m.rows[0][1] != "champ" || m.rows[0][2] != "99" {
		t.Fatalf("single rows = %v", m.rows)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.rows) != 1 || m.rows[0][1] != "a & b" {
		t.Errorf("multi rows = %v", m.rows)
	}
	if !strings.Contains(m.View(), "Two Players") {
		t.Error("view should name the active board")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}

func TestScoreboardEmptyAndErrors(t *testing.T) {
	if v := NewScoreboardModel(nil, highscore.ModeSingle, 80, 24).View(); !strings.Contains(v, "No score store") {
		t.Errorf("nil store view:\n%s", v)
	}
	if v := NewScoreboardModel(highscore.NewMemoryStore(), highscore.ModeMulti, 80, 24).View(); !strings.Contains(v, "No scores recorded yet") {
		t.Errorf("empty view:\n%s", v)
	}
	m := NewScoreboardModel(&failingStore{}, highscore.ModeSingle, 80, 24)
	if m.loadErr == nil || !strings.Contains(m.View(), "offline") {
		t.Errorf("error view:\n%s", m.View())
	}
}

func TestRenderScreenKeepsPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 1, '*', core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0] != "ab   " {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "*") {
		t.Errorf("second line = %q", lines[1])
	}
}
