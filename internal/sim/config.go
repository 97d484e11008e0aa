package sim

import "github.com/vovakirdan/tui-invaders/internal/entity"

// Config holds the wave and difficulty tuning of a simulation.
type Config struct {
	RowCount    int     // enemy rows in the first wave
	MaxRowCount int     // rows never grow past this
	RowGap      float64 // gap between enemies and between rows

	TicksBetweenMoves    int // enemy wave cadence
	MinTicksBetweenMoves int
	MoveCadenceStep      int

	TicksBetweenShots    int // enemy fire cadence
	MinTicksBetweenShots int
	ShotCadenceStep      int

	ExtraLifeEvery int // points between extra lives
}

// DefaultConfig returns the classic tuning.
func DefaultConfig() Config {
	return Config{
		RowCount:             4,
		MaxRowCount:          7,
		RowGap:               10,
		TicksBetweenMoves:    20,
		MinTicksBetweenMoves: 10,
		MoveCadenceStep:      5,
		TicksBetweenShots:    90,
		MinTicksBetweenShots: 50,
		ShotCadenceStep:      10,
		ExtraLifeEvery:       2000,
	}
}

// Point is an explicit spawn position.
type Point struct {
	X, Y float64
}

// EnemyKind describes one kind of enemy a wave can be built from.
type EnemyKind struct {
	Sprite    entity.Sprite
	HitScore  int
	Animation entity.Animation
}

// ExplosionKind describes the explosion left by a hit.
type ExplosionKind struct {
	Sprite    entity.Sprite
	Animation entity.Animation
}

// frameWidth is the on-screen width of one explosion frame.
func (k ExplosionKind) frameWidth() float64 {
	return k.Sprite.Width / float64(max(k.Animation.Frames, 1))
}
