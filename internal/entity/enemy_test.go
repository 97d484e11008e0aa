package entity

import "testing"

func newTestEnemy(x, y float64, dir Direction) *Enemy {
	return NewEnemy(testField, Sprite{ID: "alien", Width: 64, Height: 20}, x, y, 20, dir, Animation{Frames: 2, TicksPerFrame: 30})
}

func TestEnemyDefaults(t *testing.T) {
	e := NewEnemy(testField, Sprite{Width: 10, Height: 10}, 0, 0, 0, Right, Animation{})

	if e.HitScore() != DefaultHitScore {
		t.Errorf("HitScore() = %d, expected %d", e.HitScore(), DefaultHitScore)
	}
	if e.Speed() != DefaultEnemySpeed || e.VerticalSpeed() != DefaultEnemyVerticalSpeed {
		t.Errorf("speeds = %v/%v", e.Speed(), e.VerticalSpeed())
	}
}

func TestEnemyMove(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		dir          Direction
		wantX, wantY float64
	}{
		{"right", 100, 100, Right, 106, 100},
		{"left", 100, 100, Left, 94, 100},
		{"down", 100, 100, Down, 100, 110},
		{"right blocked", 762, 100, Right, 762, 100},
		{"left blocked", 6, 100, Left, 6, 100},
		{"down blocked", 100, 770, Down, 100, 770},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnemy(tt.x, tt.y, tt.dir)
			e.Move()
			if e.X != tt.wantX || e.Y != tt.wantY {
				t.Errorf("position = (%v, %v), expected (%v, %v)", e.X, e.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestEnemyBoundaryReached(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		dir  Direction
		want bool
	}{
		{"right open", 100, 100, Right, false},
		{"right edge", 762, 100, Right, true},
		{"left open", 100, 100, Left, false},
		{"left edge", 6, 100, Left, true},
		{"down open", 100, 100, Down, false},
		{"down edge", 100, 790, Down, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnemy(tt.x, tt.y, tt.dir)
			if got := e.BoundaryReached(); got != tt.want {
				t.Errorf("BoundaryReached() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestEnemyBoundaryMatchesMove(t *testing.T) {
	// Walking right until the boundary is reported must stop exactly where
	// Move stops making progress.
	e := newTestEnemy(0, 100, Right)
	for !e.BoundaryReached() {
		e.Move()
	}
	x := e.X
	e.Move()
	if e.X != x {
		t.Errorf("enemy moved past reported boundary: %v -> %v", x, e.X)
	}
}

func TestEnemySetDirection(t *testing.T) {
	e := newTestEnemy(100, 100, Right)
	e.SetDirection(Down)
	if e.Direction() != Down {
		t.Errorf("Direction() = %v, expected down", e.Direction())
	}
}
