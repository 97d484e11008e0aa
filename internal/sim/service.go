// Package sim is the simulation core of the shooter. A Service owns every
// entity of one game and is advanced by its host calling the operations
// below once per frame, in a fixed order. It performs no I/O of its own and
// is not safe for concurrent use.
package sim

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/entity"
)

// Service owns players, enemies, projectiles and explosions, the enemy
// cadence counters, and the level and game-over state.
type Service struct {
	field  entity.Playfield
	cfg    Config
	rng    *rand.Rand
	sound  SoundPlayer
	logger *log.Logger

	players       map[string]*entity.Player
	order         []string
	playerBullets map[string][]*entity.Projectile
	enemies       []*entity.Enemy
	enemyBullets  []*entity.Projectile
	explosions    []*entity.Explosion

	rowCount          int
	ticksBetweenMoves int
	moveTicks         int
	ticksBetweenShots int
	shotTicks         int
	level             int
	gameOver          bool
	soundMuted        bool
	tick              uint64
}

// Option configures a Service.
type Option func(*Service)

// WithConfig replaces the default tuning.
func WithConfig(cfg Config) Option {
	return func(s *Service) {
		s.cfg = cfg
	}
}

// WithRand sets the random source used to pick which enemy fires.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		s.rng = rng
	}
}

// WithSound sets the player for sound cues.
func WithSound(p SoundPlayer) Option {
	return func(s *Service) {
		s.sound = p
	}
}

// WithLogger sets the logger used for progression events.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// New creates a simulation for the given playfield.
func New(field entity.Playfield, opts ...Option) *Service {
	s := &Service{
		field:         field,
		cfg:           DefaultConfig(),
		players:       make(map[string]*entity.Player),
		playerBullets: make(map[string][]*entity.Projectile),
		level:         1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(1)) //#nosec G404 -- gameplay randomness
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.rowCount = s.cfg.RowCount
	s.ticksBetweenMoves = s.cfg.TicksBetweenMoves
	s.ticksBetweenShots = s.cfg.TicksBetweenShots
	return s
}

// Playfield returns the simulation's coordinate space.
func (s *Service) Playfield() entity.Playfield {
	return s.field
}

// Player returns the named ship.
func (s *Service) Player(name string) (*entity.Player, bool) {
	p, ok := s.players[name]
	return p, ok
}

// PlayerNames returns the player names in spawn order.
func (s *Service) PlayerNames() []string {
	return append([]string(nil), s.order...)
}

// Players returns the ships in spawn order.
func (s *Service) Players() []*entity.Player {
	out := make([]*entity.Player, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.players[name])
	}
	return out
}

// PlayerScore returns the named player's score, or 0 for an unknown name.
func (s *Service) PlayerScore(name string) int {
	if p, ok := s.players[name]; ok {
		return p.Score()
	}
	return 0
}

// PlayerLives returns the named player's lives, or 0 for an unknown name.
func (s *Service) PlayerLives(name string) int {
	if p, ok := s.players[name]; ok {
		return p.Lives()
	}
	return 0
}

// TotalScore sums the scores of all players.
func (s *Service) TotalScore() int {
	total := 0
	for _, p := range s.players {
		total += p.Score()
	}
	return total
}

// PlayerBullets returns the named player's live projectiles, oldest first.
// The slice is owned by the Service.
func (s *Service) PlayerBullets(name string) []*entity.Projectile {
	return s.playerBullets[name]
}

// Enemies returns the live enemies. The slice is owned by the Service.
func (s *Service) Enemies() []*entity.Enemy {
	return s.enemies
}

// EnemyBullets returns the live enemy projectiles.
func (s *Service) EnemyBullets() []*entity.Projectile {
	return s.enemyBullets
}

// Explosions returns the running explosions.
func (s *Service) Explosions() []*entity.Explosion {
	return s.explosions
}

// GameOver reports whether the game has ended. Once true it stays true.
func (s *Service) GameOver() bool {
	return s.gameOver
}

// Level returns the current level, starting at 1.
func (s *Service) Level() int {
	return s.level
}

// RowCount returns how many rows the next wave will have.
func (s *Service) RowCount() int {
	return s.rowCount
}

// TicksBetweenMoves returns the current enemy wave cadence.
func (s *Service) TicksBetweenMoves() int {
	return s.ticksBetweenMoves
}

// TicksBetweenShots returns the current enemy fire cadence.
func (s *Service) TicksBetweenShots() int {
	return s.ticksBetweenShots
}

func (s *Service) endGame(reason string) {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.logger.Debug("game over", "reason", reason, "level", s.level, "score", s.TotalScore())
}
