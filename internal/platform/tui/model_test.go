package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/highscore"
)

// fakeGame ends after a fixed number of steps with a fixed score.
type fakeGame struct {
	players  int
	endAfter int
	score    int
	steps    int
	resets   int
	resized  [2]int
	lastIn   core.MultiInputFrame
	over     bool
	paused   bool
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Players() int  { return g.players }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps, g.over = 0, false
}

func (g *fakeGame) Step(in core.MultiInputFrame) core.StepResult {
	g.lastIn = in
	if g.over && in.Any(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{})
		return core.StepResult{State: g.State()}
	}
	if !g.over {
		g.steps++
		g.over = g.steps >= g.endAfter
	}
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over, Paused: g.paused}
}

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60, Seed: 1}
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	next, _ := m.Update(TickMsg{Gen: m.gen})
	return next.(GameModel)
}

func typeText(t *testing.T, m GameModel, s string) GameModel {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(runeKey(r))
		m = next.(GameModel)
	}
	return m
}

func press(t *testing.T, m GameModel, k tea.KeyType) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(GameModel), cmd
}

// deliver runs a command and feeds its message back, as the runtime would.
func deliver(t *testing.T, m GameModel, cmd tea.Cmd) GameModel {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	next, _ := m.Update(cmd())
	return next.(GameModel)
}

func TestGameOverSubmitsSingleScore(t *testing.T) {
	store := highscore.NewMemoryStore()
	game := &fakeGame{players: 1, endAfter: 2, score: 150}
	m := NewGameModel(game, testConfig(), Options{Store: store})
	m.Init()

	m = tick(t, m)
	if m.phase != phasePlaying {
		t.Fatalf("phase after one tick = %v, want playing", m.phase)
	}
	m = tick(t, m)
	if m.phase != phaseNameEntry {
		t.Fatalf("phase at game over = %v, want name entry", m.phase)
	}
	if !strings.Contains(m.View(), "Score: 150") {
		t.Errorf("name entry view missing score:\n%s", m.View())
	}

	m = typeText(t, m, "  ace ")
	m, cmd := press(t, m, tea.KeyEnter)
	if m.phase != phaseGameOver {
		t.Fatalf("phase after submit = %v, want game over", m.phase)
	}
	m = deliver(t, m, cmd)
	if m.status != "Score saved" {
		t.Errorf("status = %q", m.status)
	}

	list, _ := store.Singles(context.Background(), 10)
	if len(list) != 1 || list[0].PlayerOneName != "ace" || list[0].Score != 150 {
		t.Errorf("stored = %+v", list)
	}
	if m.best != 150 {
		t.Errorf("best = %d, want 150", m.best)
	}
}

func TestCoopGameOverNeedsBothNames(t *testing.T) {
	store := highscore.NewMemoryStore()
	game := &fakeGame{players: 2, endAfter: 1, score: 80}
	m := NewGameModel(game, testConfig(), Options{Store: store})
	m.Init()
	m = tick(t, m)

	m = typeText(t, m, "one")
	m, _ = press(t, m, tea.KeyTab)
	m, cmd := press(t, m, tea.KeyEnter)
	if cmd != nil || m.phase != phaseNameEntry {
		t.Fatal("submitted with an empty second name")
	}
	if m.form.err == nil {
		t.Error("expected a validation error")
	}

	m = typeText(t, m, "two")
	m, cmd = press(t, m, tea.KeyEnter)
	m = deliver(t, m, cmd)

	list, _ := store.Multis(context.Background(), 10)
	if len(list) != 1 || list[0].PlayerOneName != "one" || list[0].PlayerTwoName != "two" {
		t.Errorf("stored = %+v", list)
	}
}

func TestEscapeSkipsNameEntry(t *testing.T) {
	store := highscore.NewMemoryStore()
	m := NewGameModel(&fakeGame{players: 1, endAfter: 1, score: 5}, testConfig(), Options{Store: store})
	m.Init()
	m = tick(t, m)
	m, _ = press(t, m, tea.KeyEsc)

	if m.phase != phaseGameOver {
		t.Errorf("phase = %v, want game over", m.phase)
	}
	if list, _ := store.Singles(context.Background(), 10); len(list) != 0 {
		t.Errorf("skipped entry was stored: %+v", list)
	}
}

func TestNoNameEntryWithoutStoreOrScore(t *testing.T) {
	m := NewGameModel(&fakeGame{players: 1, endAfter: 1, score: 10}, testConfig(), Options{})
	m.Init()
	if m = tick(t, m); m.phase != phaseGameOver {
		t.Errorf("without store phase = %v, want game over", m.phase)
	}

	m = NewGameModel(&fakeGame{players: 1, endAfter: 1}, testConfig(), Options{Store: highscore.NewMemoryStore()})
	m.Init()
	if m = tick(t, m); m.phase != phaseGameOver {
		t.Errorf("zero score phase = %v, want game over", m.phase)
	}
}

func TestRestartReturnsToPlaying(t *testing.T) {
	game := &fakeGame{players: 1, endAfter: 1}
	m := NewGameModel(game, testConfig(), Options{})
	m.Init()
	m = tick(t, m)

	next, _ := m.Update(runeKey('r'))
	m = tick(t, next.(GameModel))
	if m.phase != phasePlaying || m.state.GameOver {
		t.Errorf("after restart phase = %v, state = %+v", m.phase, m.state)
	}
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
}

func TestStaleTicksAreIgnored(t *testing.T) {
	game := &fakeGame{players: 1, endAfter: 100}
	m := NewGameModel(game, testConfig(), Options{})
	m.Init()

	next, cmd := m.Update(TickMsg{Gen: m.gen + 1})
	if cmd != nil || game.steps != 0 {
		t.Errorf("foreign tick stepped the game: steps = %d", game.steps)
	}
	m = tick(t, next.(GameModel))
	if game.steps != 1 {
		t.Errorf("steps = %d, want 1", game.steps)
	}
}

func TestKeysReachTheRightPlayer(t *testing.T) {
	game := &fakeGame{players: 2, endAfter: 100}
	m := NewGameModel(game, testConfig(), Options{})
	m.Init()

	next, _ := m.Update(runeKey('d'))
	next, _ = next.(GameModel).Update(tea.KeyMsg{Type: tea.KeyLeft})
	tick(t, next.(GameModel))

	if !game.lastIn.Player2().Has(core.ActionRight) {
		t.Error("player two should move right")
	}
	if !game.lastIn.Player1().Has(core.ActionLeft) {
		t.Error("player one should move left")
	}
}

func TestResizeUsesResizer(t *testing.T) {
	game := &fakeGame{players: 1, endAfter: 100}
	m := NewGameModel(game, testConfig(), Options{})
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	m = next.(GameModel)
	if game.resized != [2]int{90, 30} {
		t.Errorf("resized = %v", game.resized)
	}
	if game.resets != 1 {
		t.Errorf("resize restarted the game: resets = %d", game.resets)
	}
	if m.screen.Width() != 90 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestBackOnlyWhenOverOrPaused(t *testing.T) {
	game := &fakeGame{players: 1, endAfter: 100}
	m := NewGameModel(game, testConfig(), Options{})
	m.Init()
	m = tick(t, m)

	m, _ = press(t, m, tea.KeyEsc)
	if m.BackToMenu() {
		t.Fatal("back while playing")
	}
	game.paused = true
	m = tick(t, m)
	m, _ = press(t, m, tea.KeyEsc)
	if !m.BackToMenu() {
		t.Error("back while paused should return to menu")
	}
}

func TestLoadBest(t *testing.T) {
	store := highscore.NewMemoryStore()
	store.AddMulti(context.Background(), highscore.MultiPlayerScore{PlayerOneName: "a", PlayerTwoName: "b", Score: 900})
	m := NewGameModel(&fakeGame{players: 2, endAfter: 10}, testConfig(), Options{Store: store})

	m = deliver(t, m, m.loadBest())
	if m.best != 900 {
		t.Errorf("best = %d, want 900", m.best)
	}
}
