package entity

const (
	// DefaultPlayerSpeed is how far a ship moves per step.
	DefaultPlayerSpeed = 4
	// StartingLives is the number of lives a new ship has.
	StartingLives = 3
)

// Player is a ship controlled by one player slot.
type Player struct {
	Entity

	field Playfield
	speed float64
	score int
	lives int
}

// NewPlayer creates a ship whose sprite is horizontally centered on x and
// whose bottom edge sits on y.
func NewPlayer(field Playfield, sprite Sprite, x, y float64, anim Animation) *Player {
	p := &Player{
		Entity: NewEntity(sprite, x, y, anim),
		field:  field,
		speed:  DefaultPlayerSpeed,
		lives:  StartingLives,
	}
	p.X -= p.W / 2
	p.Y -= p.H
	return p
}

// Speed returns the ship's movement speed.
func (p *Player) Speed() float64 {
	return p.speed
}

// Move shifts the ship one step left or right. Moves that would leave the
// playfield are ignored, as are vertical directions.
func (p *Player) Move(dir Direction) {
	switch dir {
	case Left:
		if p.X-p.speed > 0 {
			p.X -= p.speed
		}
	case Right:
		if p.X+p.speed+p.W < p.field.Width {
			p.X += p.speed
		}
	}
}

// Score returns the player's score.
func (p *Player) Score() int {
	return p.score
}

// Lives returns the remaining lives.
func (p *Player) Lives() int {
	return p.lives
}

// AddToScore adds points to the score.
func (p *Player) AddToScore(points int) {
	p.score += points
}

// SubtractFromScore removes points, never going below zero.
func (p *Player) SubtractFromScore(points int) {
	p.score = max(p.score-points, 0)
}

// AddLife grants one extra life.
func (p *Player) AddLife() {
	p.lives++
}

// RemoveLife takes one life away unless none are left.
func (p *Player) RemoveLife() {
	if p.lives > 0 {
		p.lives--
	}
}
