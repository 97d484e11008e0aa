package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/entity"
	"github.com/vovakirdan/tui-invaders/internal/sim"
)

var (
	ErrNoEnemies    = errors.New("no enemy kinds")
	ErrNoShips      = errors.New("no ships")
	ErrBadPlayfield = errors.New("playfield must have a positive size")
)

// Validate checks that the config describes a playable game: a real
// playfield, at least one ship and enemy kind, and that every sprite it
// refers to is defined.
func (c InvadersConfig) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return ErrBadPlayfield
	}
	if len(c.Player.Ships) == 0 {
		return ErrNoShips
	}
	if len(c.Enemies) == 0 {
		return ErrNoEnemies
	}

	refs := append([]string{}, c.Player.Ships...)
	for _, e := range c.Enemies {
		refs = append(refs, e.Sprite)
	}
	refs = append(refs,
		c.Explosions.Enemy, c.Explosions.Player,
		c.Projectiles.PlayerOne, c.Projectiles.PlayerTwo, c.Projectiles.Enemy,
	)
	for _, name := range refs {
		sc, ok := c.Sprites[name]
		if !ok {
			return fmt.Errorf("sprite %q: not defined", name)
		}
		if sc.Width <= 0 || sc.Height <= 0 {
			return fmt.Errorf("sprite %q: size must be positive", name)
		}
	}
	return nil
}

// Field returns the simulation coordinate space.
func (c InvadersConfig) Field() entity.Playfield {
	return entity.Playfield{Width: c.Playfield.Width, Height: c.Playfield.Height}
}

// Sprite resolves a sprite name into a simulation handle and its animation.
// Unknown names yield a zero-size sprite.
func (c InvadersConfig) Sprite(name string) (entity.Sprite, entity.Animation) {
	sc := c.Sprites[name]
	return entity.Sprite{ID: name, Width: sc.Width, Height: sc.Height},
		entity.Animation{Frames: sc.Frames, TicksPerFrame: sc.TicksPerFrame}
}

// EnemyKinds returns the wave composition in row order.
func (c InvadersConfig) EnemyKinds() []sim.EnemyKind {
	kinds := make([]sim.EnemyKind, 0, len(c.Enemies))
	for _, e := range c.Enemies {
		sprite, anim := c.Sprite(e.Sprite)
		kinds = append(kinds, sim.EnemyKind{Sprite: sprite, HitScore: e.HitScore, Animation: anim})
	}
	return kinds
}

// Explosion resolves an explosion sprite name.
func (c InvadersConfig) Explosion(name string) sim.ExplosionKind {
	sprite, anim := c.Sprite(name)
	return sim.ExplosionKind{Sprite: sprite, Animation: anim}
}

// Sim returns the simulation tuning. With difficulty disabled the wave
// never grows and the cadences never speed up.
func (c InvadersConfig) Sim() sim.Config {
	cfg := sim.Config{
		RowCount:             c.Waves.Rows,
		MaxRowCount:          c.Waves.MaxRows,
		RowGap:               c.Waves.RowGap,
		TicksBetweenMoves:    c.Cadence.Moves.Initial,
		MinTicksBetweenMoves: c.Cadence.Moves.Floor,
		MoveCadenceStep:      c.Cadence.Moves.Step,
		TicksBetweenShots:    c.Cadence.Shots.Initial,
		MinTicksBetweenShots: c.Cadence.Shots.Floor,
		ShotCadenceStep:      c.Cadence.Shots.Step,
		ExtraLifeEvery:       c.Scoring.ExtraLifeEvery,
	}
	if !c.Difficulty.Enabled {
		cfg.MaxRowCount = cfg.RowCount
		cfg.MoveCadenceStep = 0
		cfg.ShotCadenceStep = 0
	}
	return cfg
}

// Ship returns the ship sprite at index i of the selectable ships,
// wrapping around so any index is valid.
func (c InvadersConfig) Ship(i int) string {
	n := len(c.Player.Ships)
	if n == 0 {
		return ""
	}
	return c.Player.Ships[((i%n)+n)%n]
}
