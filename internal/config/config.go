// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders game.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// InvadersConfig contains all configuration for the invaders game.
type InvadersConfig struct {
	Playfield   PlayfieldConfig         `yaml:"playfield"`
	Player      PlayerConfig            `yaml:"player"`
	Waves       WavesConfig             `yaml:"waves"`
	Cadence     CadenceConfig           `yaml:"cadence"`
	Scoring     ScoringConfig           `yaml:"scoring"`
	Difficulty  DifficultyConfig        `yaml:"difficulty"`
	Enemies     []EnemyConfig           `yaml:"enemies"`
	Explosions  ExplosionsConfig        `yaml:"explosions"`
	Projectiles ProjectilesConfig       `yaml:"projectiles"`
	Sprites     map[string]SpriteConfig `yaml:"sprites"`
}

// PlayfieldConfig is the size of the simulated coordinate space.
// The terminal renderer scales it to whatever size the window has.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the ships.
type PlayerConfig struct {
	FireCooldown int      `yaml:"fire_cooldown"` // ticks between shots
	Ships        []string `yaml:"ships"`         // selectable ship sprites, first is the default
}

// WavesConfig defines how enemy waves are laid out.
type WavesConfig struct {
	Rows    int     `yaml:"rows"`
	MaxRows int     `yaml:"max_rows"`
	RowGap  float64 `yaml:"row_gap"`
}

// CadenceConfig defines enemy movement and fire rates.
type CadenceConfig struct {
	Moves CadenceRule `yaml:"moves"`
	Shots CadenceRule `yaml:"shots"`
}

// CadenceRule is a tick threshold that shrinks by Step down to Floor.
type CadenceRule struct {
	Initial int `yaml:"initial"`
	Floor   int `yaml:"floor"`
	Step    int `yaml:"step"`
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	ExtraLifeEvery int `yaml:"extra_life_every"`
}

// DifficultyConfig switches level-based escalation on or off.
type DifficultyConfig struct {
	Enabled bool `yaml:"enabled"`
}

// EnemyConfig is one enemy kind; waves use the kinds round-robin by row.
type EnemyConfig struct {
	Sprite   string `yaml:"sprite"`
	HitScore int    `yaml:"hit_score"`
}

// ExplosionsConfig names the sprites used for hits.
type ExplosionsConfig struct {
	Enemy  string `yaml:"enemy"`  // enemy destroyed by a player shot
	Player string `yaml:"player"` // ship hit by an enemy shot
}

// ProjectilesConfig names the projectile sprites.
type ProjectilesConfig struct {
	PlayerOne string `yaml:"player_one"`
	PlayerTwo string `yaml:"player_two"`
	Enemy     string `yaml:"enemy"`
}

// SpriteConfig describes a sprite sheet and how it is drawn in a terminal.
// Width covers all frames. Art holds glyph rows per frame; a sheet with
// more frames than art entries reuses entries evenly.
type SpriteConfig struct {
	Width         float64    `yaml:"width"`
	Height        float64    `yaml:"height"`
	Frames        int        `yaml:"frames"`
	TicksPerFrame int        `yaml:"ticks_per_frame"`
	Color         string     `yaml:"color"`
	Art           [][]string `yaml:"art"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned by ParsePreset for names it does not know.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// ParsePreset accepts a preset name; the empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q (want easy, normal, hard or fixed)", ErrUnknownPreset, name)
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
