package entity

const (
	// DefaultEnemySpeed is the horizontal step of an enemy.
	DefaultEnemySpeed = 6
	// DefaultEnemyVerticalSpeed is the descent step of an enemy.
	DefaultEnemyVerticalSpeed = 10
	// DefaultHitScore is awarded for an enemy when its kind does not say otherwise.
	DefaultHitScore = 10
)

// Enemy is one member of a wave.
type Enemy struct {
	Entity

	field         Playfield
	speed         float64
	verticalSpeed float64
	hitScore      int
	dir           Direction
}

// NewEnemy creates an enemy at (x, y) heading in dir.
// A non-positive hitScore falls back to DefaultHitScore.
func NewEnemy(field Playfield, sprite Sprite, x, y float64, hitScore int, dir Direction, anim Animation) *Enemy {
	if hitScore <= 0 {
		hitScore = DefaultHitScore
	}
	return &Enemy{
		Entity:        NewEntity(sprite, x, y, anim),
		field:         field,
		speed:         DefaultEnemySpeed,
		verticalSpeed: DefaultEnemyVerticalSpeed,
		hitScore:      hitScore,
		dir:           dir,
	}
}

// HitScore returns the points awarded for destroying this enemy.
func (e *Enemy) HitScore() int {
	return e.hitScore
}

// Speed returns the horizontal speed.
func (e *Enemy) Speed() float64 {
	return e.speed
}

// VerticalSpeed returns the descent speed.
func (e *Enemy) VerticalSpeed() float64 {
	return e.verticalSpeed
}

// Direction returns the current movement direction.
func (e *Enemy) Direction() Direction {
	return e.dir
}

// SetDirection changes the movement direction.
func (e *Enemy) SetDirection(dir Direction) {
	e.dir = dir
}

// Move takes one step in the current direction. Steps that would leave the
// playfield are ignored.
func (e *Enemy) Move() {
	switch e.dir {
	case Right:
		if e.X+e.speed+e.W < e.field.Width {
			e.X += e.speed
		}
	case Left:
		if e.X-e.speed > 0 {
			e.X -= e.speed
		}
	case Down:
		if e.Y+e.verticalSpeed+e.H < e.field.Height {
			e.Y += e.verticalSpeed
		}
	}
}

// BoundaryReached reports whether the next step in the current direction
// would reach or cross the playfield edge.
func (e *Enemy) BoundaryReached() bool {
	switch e.dir {
	case Right:
		return e.X+e.W+e.speed >= e.field.Width
	case Left:
		return e.X-e.speed <= 0
	case Down:
		return e.Y+e.verticalSpeed >= e.field.Height
	}
	return false
}
