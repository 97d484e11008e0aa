package entity

// AnimationStatus is the outcome of an explosion update.
type AnimationStatus int

const (
	InProgress AnimationStatus = iota
	Finished
)

// Explosion is a one-shot animation left behind by a hit.
type Explosion struct {
	Entity
}

// NewExplosion creates an explosion drawn at (x, y).
func NewExplosion(sprite Sprite, x, y float64, anim Animation) *Explosion {
	return &Explosion{Entity: NewEntity(sprite, x, y, anim)}
}

// Update advances the animation, or reports Finished without advancing once
// the last frame is showing.
func (x *Explosion) Update() AnimationStatus {
	if x.lastFrame() {
		return Finished
	}
	x.Entity.Update()
	return InProgress
}
