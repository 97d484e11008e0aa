// Package invaders implements the invaders game on top of the simulation
// core: it maps player input to simulation calls in a fixed per-tick order
// and draws the resulting sprites into a terminal screen buffer.
package invaders

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/entity"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/sim"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch p := config.DifficultyPreset(preset); p {
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		difficultyPreset = p
	default:
		difficultyPreset = ""
	}
}

// FrameObserver receives every simulated frame, e.g. to stream it to spectators.
type FrameObserver func(sim.Frame)

// slot is one local player.
type slot struct {
	id       core.PlayerID
	name     string
	ship     int
	shot     entity.Sprite
	cooldown int
}

// Game implements the invaders frame loop.
type Game struct {
	coop bool

	sim     *sim.Service
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig

	slots     []*slot
	ships     [2]int
	kinds     []sim.EnemyKind
	smallBoom sim.ExplosionKind
	bigBoom   sim.ExplosionKind
	enemyShot entity.Sprite

	art   map[string]spriteArt
	draws []entity.DrawCall

	paused    bool
	tickCount int

	sound    sim.SoundPlayer
	observer FrameObserver
	logger   *log.Logger

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a single-player game.
func New() *Game {
	return &Game{}
}

// NewCoop creates a two-player game sharing one keyboard.
func NewCoop() *Game {
	return &Game{coop: true, ships: [2]int{0, 1}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.coop {
		return "invaders_coop"
	}
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.coop {
		return "Invaders (2 Players)"
	}
	return "Invaders"
}

// Players returns the number of local players.
func (g *Game) Players() int {
	if g.coop {
		return 2
	}
	return 1
}

// SetSound attaches a sound player from the next Reset on.
func (g *Game) SetSound(p sim.SoundPlayer) {
	g.sound = p
}

// SetObserver attaches a frame observer. It survives restarts.
func (g *Game) SetObserver(o FrameObserver) {
	g.observer = o
}

// SetLogger sets the logger handed to the simulation from the next Reset on.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// SelectShip picks the ship sprite for a player, by index into the
// configured ships. Takes effect on the next Reset.
func (g *Game) SelectShip(id core.PlayerID, index int) {
	if id == core.Player1 || id == core.Player2 {
		g.ships[id-1] = index
	}
}

// loadConfig reads the configured file, falling back to the defaults.
func loadConfig() config.InvadersConfig {
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// ShipNames lists the selectable ships in SelectShip index order.
func ShipNames() []string {
	return loadConfig().Player.Ships
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	cfg := loadConfig()
	g.cfg = cfg

	g.minScreenW = 40
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	logger := g.logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts := []sim.Option{
		sim.WithConfig(cfg.Sim()),
		sim.WithRand(rand.New(rand.NewSource(runtime.Seed))), //#nosec G404 -- gameplay randomness
		sim.WithLogger(logger),
	}
	if g.sound != nil {
		opts = append(opts, sim.WithSound(g.sound))
	}
	muted := g.sim != nil && g.sim.SoundMuted()
	g.sim = sim.New(cfg.Field(), opts...)
	if muted {
		g.sim.SwitchSoundMuted()
	}

	g.kinds = cfg.EnemyKinds()
	g.smallBoom = cfg.Explosion(cfg.Explosions.Enemy)
	g.bigBoom = cfg.Explosion(cfg.Explosions.Player)
	g.enemyShot, _ = cfg.Sprite(cfg.Projectiles.Enemy)
	g.art = buildArt(cfg)

	g.paused = false
	g.tickCount = 0
	g.draws = nil
	g.setupPlayers()
	g.sim.SpawnEnemies(g.kinds)
}

// Resize adapts to a new terminal size. The playfield is independent of the
// terminal, so the game carries on.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// setupPlayers places player one left of center and player two to its right.
func (g *Game) setupPlayers() {
	field := g.cfg.Field()
	shots := []string{g.cfg.Projectiles.PlayerOne, g.cfg.Projectiles.PlayerTwo}

	g.slots = g.slots[:0]
	for i := range g.Players() {
		id := core.PlayerID(i + 1)
		ship, anim := g.cfg.Sprite(g.cfg.Ship(g.ships[i]))
		shot, _ := g.cfg.Sprite(shots[i])

		pos := sim.Point{X: field.Width/2 - ship.Width/2, Y: field.Height}
		if id == core.Player2 {
			pos.X = field.Width/2 + ship.Width
		}
		g.sim.SpawnPlayer(id.Name(), ship, anim, &pos)
		g.slots = append(g.slots, &slot{id: id, name: id.Name(), ship: g.ships[i], shot: shot})
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.screenTooSmall || g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Any(core.ActionRestart) && g.sim.GameOver() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Any(core.ActionMute) {
		g.sim.SwitchSoundMuted()
	}
	if in.Any(core.ActionPause) && !g.sim.GameOver() {
		g.paused = !g.paused
	}
	if g.paused || g.sim.GameOver() {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	for _, s := range g.slots {
		g.handleInput(s, in.Player(s.id))
	}

	g.sim.CheckForPlayerBulletIntersections(g.smallBoom)
	g.sim.CheckForEnemyBulletIntersections(g.bigBoom)
	if len(g.sim.Enemies()) == 0 {
		g.sim.IncreaseLevel()
		g.sim.IncreaseDifficulty()
		g.sim.SpawnEnemies(g.kinds)
	}
	g.sim.MovePlayerBullets()
	g.sim.MoveEnemyBullets()
	g.sim.MoveEnemies()
	g.sim.FireEnemyBullet(g.enemyShot)

	g.draws = g.sim.RenderGameObjects()
	if g.observer != nil {
		g.observer(g.sim.Frame(g.draws))
	}

	return core.StepResult{State: g.State()}
}

// handleInput moves a ship and fires once its cooldown has run out.
func (g *Game) handleInput(s *slot, in core.InputFrame) {
	if s.cooldown < g.cfg.Player.FireCooldown {
		s.cooldown++
	}

	if in.Has(core.ActionLeft) {
		g.sim.MovePlayerLeft(s.name)
	} else if in.Has(core.ActionRight) {
		g.sim.MovePlayerRight(s.name)
	}

	if in.Has(core.ActionFire) && s.cooldown >= g.cfg.Player.FireCooldown {
		s.cooldown = 0
		g.sim.FireBullet(s.name, s.shot)
	}
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *sim.Service {
	return g.sim
}

// Snapshot returns the simulation state for determinism checks.
func (g *Game) Snapshot() sim.Snapshot {
	return g.sim.Snapshot()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.TotalScore(),
		Level:    g.sim.Level(),
		GameOver: g.sim.GameOver(),
		Paused:   g.paused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
	registry.Register("invaders_coop", func() registry.Game {
		return NewCoop()
	})
}
