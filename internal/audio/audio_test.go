package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-invaders/internal/sim"
)

func drain(t *testing.T, s beep.Streamer) (count int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] != smp[1] {
				t.Fatalf("channels differ: %v", smp)
			}
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		count += n
		if !ok {
			return count, peak
		}
		if count > sampleRate.N(5*time.Second) {
			t.Fatal("streamer did not terminate")
		}
	}
}

func TestCueStreamersAreFiniteAndAudible(t *testing.T) {
	tests := []struct {
		cue  sim.Cue
		want time.Duration
	}{
		{sim.CueLaser, 120 * time.Millisecond},
		{sim.CueEnemyDestroyed, 250 * time.Millisecond},
		{sim.CuePlayerHit, 600 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			n, peak := drain(t, CueStreamer(tt.cue, 7))
			if n != sampleRate.N(tt.want) {
				t.Errorf("samples = %d, want %d", n, sampleRate.N(tt.want))
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak = %v, want in (0, 1]", peak)
			}
		})
	}
}

func TestUnknownCue(t *testing.T) {
	if s := CueStreamer(sim.Cue(99), 1); s != nil {
		t.Errorf("CueStreamer(99) = %v, want nil", s)
	}
}

func TestLaserFadesOut(t *testing.T) {
	g := NewLaserGenerator(sampleRate, 1000, 200, 100*time.Millisecond)
	buf := make([][2]float64, sampleRate.N(100*time.Millisecond))
	g.Stream(buf)
	tail := buf[len(buf)-1][0]
	if math.Abs(tail) > 0.01 {
		t.Errorf("last sample = %v, want near silence", tail)
	}
}

func TestNoiseBurstDeterministicPerSeed(t *testing.T) {
	a := make([][2]float64, 64)
	b := make([][2]float64, 64)
	NewNoiseBurstGenerator(sampleRate, 80, 10, 42).Stream(a)
	NewNoiseBurstGenerator(sampleRate, 80, 10, 42).Stream(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestPlayerWithoutInitIsSilent(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("player panicked without initialization: %v", r)
		}
	}()
	p := NewPlayer(nil)
	p.Play(sim.CueLaser)
	p.Play(sim.CuePlayerHit)
	p.Close()
}
