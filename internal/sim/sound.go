package sim

// Cue identifies a sound effect requested by the simulation.
type Cue int

const (
	CueLaser Cue = iota
	CueEnemyDestroyed
	CuePlayerHit
)

// String returns the cue's name.
func (c Cue) String() string {
	switch c {
	case CueLaser:
		return "laser"
	case CueEnemyDestroyed:
		return "enemy_destroyed"
	case CuePlayerHit:
		return "player_hit"
	default:
		return "unknown"
	}
}

// SoundPlayer plays sound cues. Play must not block the caller.
type SoundPlayer interface {
	Play(c Cue)
}

// SwitchSoundMuted toggles whether cues are played.
func (s *Service) SwitchSoundMuted() {
	s.soundMuted = !s.soundMuted
}

// SoundMuted reports whether cues are muted.
func (s *Service) SoundMuted() bool {
	return s.soundMuted
}

func (s *Service) play(c Cue) {
	if s.sound == nil || s.soundMuted {
		return
	}
	s.sound.Play(c)
}
