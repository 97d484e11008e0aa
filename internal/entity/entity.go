package entity

import "github.com/vovakirdan/tui-invaders/internal/core"

// Entity is the shared part of every simulated object: a position, a
// footprint taken from one sprite frame, and an animation clock.
type Entity struct {
	X, Y float64
	W, H float64

	sprite        Sprite
	frame         int
	tick          int
	frames        int
	ticksPerFrame int
}

// NewEntity creates an entity at (x, y). The footprint width is the sprite
// sheet width divided by the number of frames.
func NewEntity(sprite Sprite, x, y float64, anim Animation) Entity {
	anim = anim.normalized()
	return Entity{
		X:             x,
		Y:             y,
		W:             sprite.Width / float64(anim.Frames),
		H:             sprite.Height,
		sprite:        sprite,
		frames:        anim.Frames,
		ticksPerFrame: anim.TicksPerFrame,
	}
}

// Bounds returns the entity's bounding box.
func (e *Entity) Bounds() core.Box {
	return core.NewBox(e.X, e.Y, e.W, e.H)
}

// Sprite returns the sprite sheet the entity is drawn from.
func (e *Entity) Sprite() Sprite {
	return e.sprite
}

// Frame returns the current animation frame index.
func (e *Entity) Frame() int {
	return e.frame
}

// Frames returns the number of frames in the sprite sheet.
func (e *Entity) Frames() int {
	return e.frames
}

// DrawCall returns the current frame rectangle and position.
func (e *Entity) DrawCall() DrawCall {
	return DrawCall{
		SpriteID: e.sprite.ID,
		Frame:    e.frame,
		SrcX:     float64(e.frame) * e.W,
		X:        e.X,
		Y:        e.Y,
		W:        e.W,
		H:        e.H,
	}
}

// Update advances the animation clock by one tick.
func (e *Entity) Update() {
	e.tick++
	if e.tick > e.ticksPerFrame {
		e.tick = 0
		e.frame = (e.frame + 1) % e.frames
	}
}

func (e *Entity) lastFrame() bool {
	return e.frame == e.frames-1
}
