package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	var cfg InvadersConfig
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultInvadersConfig()) {
		t.Errorf("embedded yaml and DefaultInvadersConfig() differ:\n%+v\n%+v", cfg, DefaultInvadersConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadInvadersCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invaders.yaml")

	cfg := DefaultInvadersConfig()
	cfg.Waves.Rows = 6
	cfg.Playfield.Width = 900
	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() error: %v", err)
	}
	if got.Waves.Rows != 6 || got.Playfield.Width != 900 {
		t.Errorf("LoadInvaders() = rows %d width %v", got.Waves.Rows, got.Playfield.Width)
	}
}

func TestLoadInvadersErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadInvaders(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("playfield: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(broken); err == nil {
		t.Error("malformed yaml should fail")
	}

	incomplete := filepath.Join(dir, "incomplete.yaml")
	if err := os.WriteFile(incomplete, []byte("playfield:\n  width: 700\n  height: 400\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(incomplete); !errors.Is(err, ErrNoShips) {
		t.Errorf("incomplete config error = %v, expected ErrNoShips", err)
	}
}

func TestValidateMissingSprite(t *testing.T) {
	cfg := DefaultInvadersConfig()
	delete(cfg.Sprites, "squid")

	if err := cfg.Validate(); err == nil {
		t.Error("reference to an undefined sprite should fail")
	}
}

func TestApplyInvadersPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantRows    int
	}{
		{DifficultyEasy, true, 3},
		{DifficultyNormal, true, 4},
		{DifficultyHard, true, 5},
		{DifficultyFixed, false, 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			ApplyInvadersPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
			if cfg.Waves.Rows != tt.wantRows {
				t.Errorf("Rows = %d, expected %d", cfg.Waves.Rows, tt.wantRows)
			}
		})
	}
}

func TestSimConfig(t *testing.T) {
	cfg := DefaultInvadersConfig()
	sc := cfg.Sim()
	if sc.RowCount != 4 || sc.MaxRowCount != 7 || sc.TicksBetweenShots != 90 || sc.ExtraLifeEvery != 2000 {
		t.Errorf("Sim() = %+v", sc)
	}

	ApplyInvadersPreset(&cfg, DifficultyFixed)
	fixed := cfg.Sim()
	if fixed.MaxRowCount != fixed.RowCount || fixed.ShotCadenceStep != 0 || fixed.MoveCadenceStep != 0 {
		t.Errorf("fixed Sim() should not escalate: %+v", fixed)
	}
}

func TestSpriteLookups(t *testing.T) {
	cfg := DefaultInvadersConfig()

	if f := cfg.Field(); f.Width != 700 || f.Height != 400 {
		t.Errorf("Field() = %+v, expected 700x400", f)
	}

	kinds := cfg.EnemyKinds()
	if len(kinds) != 3 || kinds[2].HitScore != 30 || kinds[0].Animation.Frames != 2 {
		t.Errorf("EnemyKinds() = %+v", kinds)
	}

	boom := cfg.Explosion("explosion")
	if boom.Animation.Frames != 32 || boom.Sprite.Width != 1024 {
		t.Errorf("Explosion() = %+v", boom)
	}

	if cfg.Ship(0) != "red_fighter" || cfg.Ship(5) != "blue_fighter" || cfg.Ship(-1) != "eurofighter" {
		t.Error("Ship() should wrap around")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", " Hard ", "fixed", "normal"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) error = %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("ParsePreset(nightmare) error = %v, want ErrUnknownPreset", err)
	}
}
