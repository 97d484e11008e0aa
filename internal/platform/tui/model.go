package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/highscore"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

const storeTimeout = 5 * time.Second

// Options configures a game model.
type Options struct {
	// Store receives high scores. Nil disables name entry.
	Store  highscore.Store
	Logger *log.Logger
}

type phase int

const (
	phasePlaying phase = iota
	phaseNameEntry
	phaseGameOver
)

type bestScoreMsg struct {
	score int
}

type scoreSavedMsg struct {
	err error
}

// GameModel runs one game: fixed-rate ticks, keyboard input, and the
// high-score form once the game is over.
type GameModel struct {
	game    registry.Game
	players int
	screen  *core.Screen
	store   highscore.Store
	logger  *log.Logger
	config  core.RuntimeConfig
	keys    *KeyMapper
	input   *heldInput
	gen     uint64

	state  core.GameState
	phase  phase
	form   nameForm
	best   int
	status string

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. A zero seed is replaced by the
// current time.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	players := 1
	if mp, ok := game.(registry.MultiPlayer); ok {
		players = mp.Players()
	}

	return GameModel{
		game:    game,
		players: players,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   opts.Store,
		logger:  logger,
		config:  cfg,
		keys:    NewKeyMapper(players),
		input:   newHeldInput(holdTicksFor(cfg.TickRate)),
		gen:     nextTickGen(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate, m.gen), m.loadBest())
}

func (m GameModel) mode() highscore.Mode {
	if m.players > 1 {
		return highscore.ModeMulti
	}
	return highscore.ModeSingle
}

func (m GameModel) loadBest() tea.Cmd {
	if m.store == nil {
		return nil
	}
	store, mode, logger := m.store, m.mode(), m.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		best, err := highscore.Best(ctx, store, mode)
		if err != nil {
			logger.Warn("could not load best score", "mode", mode, "err", err)
		}
		return bestScoreMsg{score: best}
	}
}

func (m GameModel) saveScore(names []string) tea.Cmd {
	store, score := m.store, m.state.Score
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		var err error
		if len(names) > 1 {
			_, err = store.AddMulti(ctx, highscore.MultiPlayerScore{
				PlayerOneName: names[0], PlayerTwoName: names[1], Score: score,
			})
		} else {
			_, err = store.AddSingle(ctx, highscore.SinglePlayerScore{PlayerOneName: names[0], Score: score})
		}
		return scoreSavedMsg{err: err}
	}
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.phase == phaseNameEntry {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()

	case bestScoreMsg:
		m.best = msg.score
		return m, nil

	case scoreSavedMsg:
		if msg.err != nil {
			m.logger.Error("could not save score", "err", msg.err)
			m.status = "Score not saved: " + msg.err.Error()
		} else {
			m.status = "Score saved"
			m.best = max(m.best, m.state.Score)
		}
		return m, nil
	}

	if m.phase == phaseNameEntry {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m GameModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	form, result, cmd := m.form.update(msg)
	m.form = form
	switch result {
	case formSubmitted:
		names, _ := m.form.names()
		m.phase = phaseGameOver
		m.status = "Saving..."
		return m, m.saveScore(names)
	case formSkipped:
		m.phase = phaseGameOver
	}
	return m, cmd
}

// handleKey processes keyboard input while playing or after game over.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id, action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack && (m.state.GameOver || m.state.Paused) {
		m.backToMenu = true
		return m, nil
	}

	m.input.press(id, action)
	return m, nil
}

// handleResize follows the terminal size. Games that cannot adapt restart
// unless they are already over.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.state.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick advances the simulation by one step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.phase == phaseNameEntry {
		return m, tickCmd(m.config.TickRate, m.gen)
	}

	wasOver := m.state.GameOver
	result := m.game.Step(m.input.frame())
	m.state = result.State

	switch {
	case m.state.GameOver && !wasOver:
		m.input.reset()
		m.logger.Info("game over", "game", m.game.ID(), "score", m.state.Score, "level", m.state.Level)
		if m.store != nil && m.state.Score > 0 {
			m.phase = phaseNameEntry
			m.form = newNameForm(m.players, m.state.Score)
			return m, tea.Batch(tickCmd(m.config.TickRate, m.gen), m.form.init())
		}
		m.phase = phaseGameOver
	case !m.state.GameOver && wasOver:
		m.phase = phasePlaying
		m.status = ""
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	if m.phase == phaseNameEntry {
		return placePanel(m.screen.Width(), m.screen.Height(), m.form.view(m.best))
	}

	m.game.Render(m.screen)
	if m.phase == phaseGameOver {
		line := m.status
		if m.best > 0 {
			line = fmt.Sprintf("Best: %d   %s", m.best, line)
		}
		m.screen.DrawTextCentered(m.screen.Height()-1, line)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits or
// goes back.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		standalone{NewGameModel(game, cfg, opts)},
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// standalone ends the program where an embedded game would return to the menu.
type standalone struct {
	GameModel
}

func (s standalone) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.GameModel.Update(msg)
	s.GameModel = next.(GameModel)
	if s.BackToMenu() {
		return s, tea.Quit
	}
	return s, cmd
}
