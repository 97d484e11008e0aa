package entity

// Playfield is the fixed coordinate space entities move within.
// The origin is the top-left corner.
type Playfield struct {
	Width  float64
	Height float64
}

// Sprite is an opaque handle to a sprite sheet plus its dimensions.
// Width spans all animation frames laid out horizontally.
type Sprite struct {
	ID     string
	Width  float64
	Height float64
}

// Animation describes how a sprite sheet is played back.
// Zero values mean a single static frame.
type Animation struct {
	Frames        int
	TicksPerFrame int
}

func (a Animation) normalized() Animation {
	if a.Frames < 1 {
		a.Frames = 1
	}
	if a.TicksPerFrame < 0 {
		a.TicksPerFrame = 0
	}
	return a
}

// DrawCall is what a renderer needs to paint one entity: which sprite,
// which frame of it (SrcX is the frame's offset in the sheet) and where.
type DrawCall struct {
	SpriteID string  `msgpack:"s"`
	Frame    int     `msgpack:"f"`
	SrcX     float64 `msgpack:"sx"`
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	W        float64 `msgpack:"w"`
	H        float64 `msgpack:"h"`
}
