// Package audio plays the game's sound cues through the system speaker.
// All sounds are synthesized; there are no asset files.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// Player implements sim.SoundPlayer. Cues are mixed, so overlapping shots
// and explosions play together.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool
	logger      *log.Logger
	seed        uint32
}

var _ sim.SoundPlayer = (*Player)(nil)

// NewPlayer creates a player. Nothing is audible until Init succeeds.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mixer := &beep.Mixer{}
	return &Player{
		mixer:  mixer,
		ctrl:   &beep.Ctrl{Streamer: mixer},
		logger: logger,
	}
}

// Init opens the audio device. On failure the player stays silent and the
// error is returned for the caller to report.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio unavailable, continuing silent", "err", err)
		return err
	}
	speaker.Play(p.ctrl)
	p.initialized = true
	return nil
}

// Play schedules a cue. It never blocks on the device.
func (p *Player) Play(c sim.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.seed++
	s := CueStreamer(c, p.seed)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// CueStreamer returns a finite streamer for the cue, or nil for unknown cues.
func CueStreamer(c sim.Cue, seed uint32) beep.Streamer {
	switch c {
	case sim.CueLaser:
		d := 120 * time.Millisecond
		return beep.Take(sampleRate.N(d), NewLaserGenerator(sampleRate, 1400, 300, d))
	case sim.CueEnemyDestroyed:
		return beep.Take(sampleRate.N(250*time.Millisecond), NewNoiseBurstGenerator(sampleRate, 90, 14, seed))
	case sim.CuePlayerHit:
		return beep.Take(sampleRate.N(600*time.Millisecond), NewNoiseBurstGenerator(sampleRate, 55, 6, seed))
	}
	return nil
}
