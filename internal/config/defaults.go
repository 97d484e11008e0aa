package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default invaders configuration.
// It matches defaults/invaders.yaml and is used if the embedded file
// cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	ship := func(color string, art string) SpriteConfig {
		return SpriteConfig{Width: 40, Height: 24, Color: color, Art: [][]string{{art}}}
	}
	enemy := func(color string, a, b string) SpriteConfig {
		return SpriteConfig{Width: 64, Height: 24, Frames: 2, TicksPerFrame: 30, Color: color, Art: [][]string{{a}, {b}}}
	}
	bullet := func(color string, art string) SpriteConfig {
		return SpriteConfig{Width: 4, Height: 10, Color: color, Art: [][]string{{art}}}
	}

	return InvadersConfig{
		Playfield: PlayfieldConfig{
			Width:  700,
			Height: 400,
		},
		Player: PlayerConfig{
			FireCooldown: 25,
			Ships:        []string{"red_fighter", "blue_fighter", "a318", "eurofighter"},
		},
		Waves: WavesConfig{
			Rows:    4,
			MaxRows: 7,
			RowGap:  10,
		},
		Cadence: CadenceConfig{
			Moves: CadenceRule{Initial: 20, Floor: 10, Step: 5},
			Shots: CadenceRule{Initial: 90, Floor: 50, Step: 10},
		},
		Scoring: ScoringConfig{
			ExtraLifeEvery: 2000,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
		},
		Enemies: []EnemyConfig{
			{Sprite: "android", HitScore: 10},
			{Sprite: "squid", HitScore: 20},
			{Sprite: "death", HitScore: 30},
		},
		Explosions: ExplosionsConfig{
			Enemy:  "explosion",
			Player: "big_explosion",
		},
		Projectiles: ProjectilesConfig{
			PlayerOne: "player_one_bullet",
			PlayerTwo: "player_two_bullet",
			Enemy:     "enemy_bullet",
		},
		Sprites: map[string]SpriteConfig{
			"red_fighter":       ship("bright_red", `/A\`),
			"blue_fighter":      ship("bright_blue", `/A\`),
			"a318":              ship("white", "-^-"),
			"eurofighter":       ship("gray", "<^>"),
			"android":           enemy("green", `/o\`, `\o/`),
			"squid":             enemy("magenta", "{@}", "}@{"),
			"death":             enemy("cyan", "[X]", "]X["),
			"player_one_bullet": bullet("bright_yellow", "|"),
			"player_two_bullet": bullet("bright_cyan", "|"),
			"enemy_bullet":      bullet("red", "!"),
			"explosion": {
				Width: 1024, Height: 32, Frames: 32, TicksPerFrame: 1, Color: "yellow",
				Art: [][]string{{"*"}, {"+"}, {"."}},
			},
			"big_explosion": {
				Width: 1536, Height: 48, Frames: 32, TicksPerFrame: 1, Color: "orange",
				Art: [][]string{{`\|/`}, {"-*-"}, {`/|\`}, {". ."}},
			},
		},
	}
}
