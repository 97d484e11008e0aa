package entity

import "github.com/vovakirdan/tui-invaders/internal/core"

// DefaultProjectileSpeed is how far a projectile travels per step.
const DefaultProjectileSpeed = 2

// MoveResult reports what happened when a projectile tried to move.
type MoveResult int

const (
	Moved MoveResult = iota
	HitBoundary
)

// Projectile is a shot travelling straight up or down.
type Projectile struct {
	Entity

	field Playfield
	speed float64
}

// NewProjectile creates a static, single-frame projectile at (x, y).
func NewProjectile(field Playfield, sprite Sprite, x, y float64) *Projectile {
	return &Projectile{
		Entity: NewEntity(sprite, x, y, Animation{}),
		field:  field,
		speed:  DefaultProjectileSpeed,
	}
}

// Speed returns the projectile's speed.
func (b *Projectile) Speed() float64 {
	return b.speed
}

// Move advances the projectile one step. When the step would cross the top
// (Up) or bottom (Down) edge the position is left unchanged and HitBoundary
// is returned; the owner is expected to discard the projectile.
func (b *Projectile) Move(dir Direction) MoveResult {
	switch dir {
	case Up:
		if b.Y-b.speed > 0 {
			b.Y -= b.speed
			return Moved
		}
		return HitBoundary
	case Down:
		if b.Y+b.speed < b.field.Height {
			b.Y += b.speed
			return Moved
		}
		return HitBoundary
	}
	return Moved
}

// IntersectsWithObject reports whether the projectile touches or overlaps
// the box at (x, y) with the given size.
func (b *Projectile) IntersectsWithObject(x, w, y, h float64) bool {
	return b.Bounds().Overlaps(core.NewBox(x, y, w, h))
}

// Intersects is IntersectsWithObject for an entity's bounds.
func (b *Projectile) Intersects(e *Entity) bool {
	return b.IntersectsWithObject(e.X, e.W, e.Y, e.H)
}
