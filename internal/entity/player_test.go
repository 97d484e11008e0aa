package entity

import "testing"

func newTestPlayer() *Player {
	return NewPlayer(testField, Sprite{ID: "ship", Width: 40, Height: 19}, 400, 800, Animation{})
}

func TestPlayerAnchoring(t *testing.T) {
	p := newTestPlayer()

	if p.X != 380 || p.Y != 781 {
		t.Errorf("position = (%v, %v), expected (380, 781)", p.X, p.Y)
	}
	if p.Score() != 0 || p.Lives() != StartingLives {
		t.Errorf("score=%d lives=%d", p.Score(), p.Lives())
	}
}

func TestPlayerMoveClampsAtEdges(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
	}{
		{"left", Left},
		{"right", Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			for i := 0; i < 500; i++ {
				p.Move(tt.dir)
			}
			edge := p.X

			p.Move(tt.dir)
			if p.X != edge {
				t.Errorf("move past edge changed x from %v to %v", edge, p.X)
			}
			if p.X <= 0 || p.X+p.W >= testField.Width {
				t.Errorf("ship left the playfield: x=%v", p.X)
			}
		})
	}
}

func TestPlayerMoveStep(t *testing.T) {
	p := newTestPlayer()
	x := p.X

	p.Move(Left)
	if p.X != x-DefaultPlayerSpeed {
		t.Errorf("Move(Left) x = %v, expected %v", p.X, x-DefaultPlayerSpeed)
	}
	p.Move(Up)
	if p.X != x-DefaultPlayerSpeed {
		t.Error("Move(Up) should be ignored")
	}
}

func TestPlayerScore(t *testing.T) {
	tests := []struct {
		start, subtract, want int
	}{
		{100, 30, 70},
		{100, 100, 0},
		{100, 150, 0},
		{0, 0, 0},
	}

	for _, tt := range tests {
		p := newTestPlayer()
		p.AddToScore(tt.start)
		p.SubtractFromScore(tt.subtract)
		if p.Score() != tt.want {
			t.Errorf("%d - %d = %d, expected %d", tt.start, tt.subtract, p.Score(), tt.want)
		}
	}
}

func TestPlayerLives(t *testing.T) {
	p := newTestPlayer()

	for i := 0; i < 10; i++ {
		p.RemoveLife()
	}
	if p.Lives() != 0 {
		t.Errorf("Lives() = %d, expected 0", p.Lives())
	}

	p.AddLife()
	if p.Lives() != 1 {
		t.Errorf("AddLife() lives = %d, expected 1", p.Lives())
	}
}
