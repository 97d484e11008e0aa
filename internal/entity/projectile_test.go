package entity

import "testing"

func newTestProjectile(x, y float64) *Projectile {
	return NewProjectile(testField, Sprite{ID: "shot", Width: 3, Height: 8}, x, y)
}

func TestProjectileMoveUp(t *testing.T) {
	b := newTestProjectile(100, 3)

	if res := b.Move(Up); res != Moved || b.Y != 1 {
		t.Fatalf("first Move(Up) = %v, y = %v", res, b.Y)
	}
	if res := b.Move(Up); res != HitBoundary {
		t.Errorf("Move(Up) near top = %v, expected HitBoundary", res)
	}
	if b.Y != 1 {
		t.Errorf("boundary move changed y to %v", b.Y)
	}
}

func TestProjectileMoveDown(t *testing.T) {
	b := newTestProjectile(100, 796)

	if res := b.Move(Down); res != Moved || b.Y != 798 {
		t.Fatalf("first Move(Down) = %v, y = %v", res, b.Y)
	}
	if res := b.Move(Down); res != HitBoundary {
		t.Errorf("Move(Down) near bottom = %v, expected HitBoundary", res)
	}
}

func TestProjectileIntersects(t *testing.T) {
	tests := []struct {
		name       string
		bx, by     float64
		x, w, y, h float64
		want       bool
	}{
		{"far away vertically", 100, 10, 100, 40, 620, 19, false},
		{"inside", 110, 625, 100, 40, 620, 19, true},
		{"touching left edge", 97, 620, 100, 40, 620, 19, true},
		{"touching bottom edge", 110, 639, 100, 40, 620, 19, true},
		{"just right of box", 141, 625, 100, 40, 620, 19, false},
		{"just above box", 110, 611, 100, 40, 620, 19, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestProjectile(tt.bx, tt.by)
			if got := b.IntersectsWithObject(tt.x, tt.w, tt.y, tt.h); got != tt.want {
				t.Errorf("IntersectsWithObject() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestProjectileIntersectsSymmetric(t *testing.T) {
	a := newTestProjectile(50, 50)
	b := newTestProjectile(51, 54)

	if a.Intersects(&b.Entity) != b.Intersects(&a.Entity) {
		t.Error("overlap of equal-size boxes should be symmetric")
	}
	if !a.Intersects(&b.Entity) {
		t.Error("overlapping projectiles should intersect")
	}
}
