package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// LaserGenerator produces a falling square-ish sweep.
type LaserGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

// NewLaserGenerator sweeps from one frequency to another over d.
func NewLaserGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *LaserGenerator {
	return &LaserGenerator{sr: sr, from: from, to: to, length: max(sr.N(d), 1)}
}

func (g *LaserGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		// Two odd harmonics give the edge without aliasing a true square.
		x := 2 * math.Pi * g.phase
		sample := math.Sin(x) + math.Sin(3*x)/3
		sample *= 0.18 * (1 - progress)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *LaserGenerator) Err() error {
	return nil
}

// NoiseBurstGenerator produces decaying noise over a low rumble.
type NoiseBurstGenerator struct {
	sr     beep.SampleRate
	rumble float64
	decay  float64
	pos    int
	state  uint32
}

// NewNoiseBurstGenerator creates a burst; larger decay dies out faster.
func NewNoiseBurstGenerator(sr beep.SampleRate, rumble, decay float64, seed uint32) *NoiseBurstGenerator {
	if seed == 0 {
		seed = 0x9e3779b9
	}
	return &NoiseBurstGenerator{sr: sr, rumble: rumble, decay: decay, state: seed}
}

func (g *NoiseBurstGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * g.decay)

		g.state ^= g.state << 13
		g.state ^= g.state >> 17
		g.state ^= g.state << 5
		noise := float64(g.state)/float64(math.MaxUint32)*2 - 1

		sample := envelope * (0.3*noise + 0.25*math.Sin(2*math.Pi*g.rumble*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseBurstGenerator) Err() error {
	return nil
}
