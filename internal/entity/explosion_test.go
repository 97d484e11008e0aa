package entity

import "testing"

func TestExplosionFinishesOnLastFrame(t *testing.T) {
	for _, frames := range []int{1, 2, 5, 32} {
		x := NewExplosion(Sprite{ID: "boom", Width: float64(frames * 8), Height: 8}, 0, 0, Animation{Frames: frames})

		for i := 1; i < frames; i++ {
			if st := x.Update(); st != InProgress {
				t.Fatalf("frames=%d: update %d reported %v", frames, i, st)
			}
		}
		if st := x.Update(); st != Finished {
			t.Errorf("frames=%d: update %d should finish", frames, frames)
		}
		if x.Frame() != frames-1 {
			t.Errorf("frames=%d: finished on frame %d", frames, x.Frame())
		}
	}
}

func TestExplosionWithTicksPerFrame(t *testing.T) {
	x := NewExplosion(Sprite{Width: 32, Height: 8}, 0, 0, Animation{Frames: 4, TicksPerFrame: 1})

	calls := 0
	for x.Update() != Finished {
		calls++
		if calls > 100 {
			t.Fatal("explosion never finished")
		}
	}
	// Three frame advances at two ticks each.
	if calls != 6 {
		t.Errorf("in-progress updates = %d, expected 6", calls)
	}
}
