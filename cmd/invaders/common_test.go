package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/highscore"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func TestResolveShip(t *testing.T) {
	names := invaders.ShipNames()
	if len(names) < 2 {
		t.Fatalf("expected at least two ships, got %v", names)
	}

	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "0", want: 0},
		{in: "1", want: 1},
		{in: names[1], want: 1},
		{in: "-1", wantErr: true},
		{in: "99", wantErr: true},
		{in: "zeppelin", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := resolveShip(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveShip(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("resolveShip(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyGameFlagsRejectsUnknownPreset(t *testing.T) {
	defer func() { flagDifficulty = "" }()

	flagDifficulty = "nightmare"
	if err := applyGameFlags(); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
	flagDifficulty = "hard"
	if err := applyGameFlags(); err != nil {
		t.Fatalf("applyGameFlags() error = %v", err)
	}
	invaders.SetDifficultyPreset("")
}

func TestApplyGameFlagsRejectsBadConfig(t *testing.T) {
	defer func() { flagConfig = "" }()
	dir := t.TempDir()

	flagConfig = filepath.Join(dir, "missing.yaml")
	if err := applyGameFlags(); err == nil {
		t.Error("missing --config file should fail")
	}

	incomplete := filepath.Join(dir, "incomplete.yaml")
	if err := os.WriteFile(incomplete, []byte("playfield:\n  width: 700\n  height: 400\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = incomplete
	if err := applyGameFlags(); err == nil {
		t.Error("invalid --config file should fail")
	}
	invaders.SetConfigPath("")
}

func TestPrintScoresAndStats(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer db.Close()
	ctx := context.Background()

	var buf bytes.Buffer
	if err := printScores(ctx, &buf, db, highscore.ModeSingle, 10); err != nil {
		t.Fatalf("printScores() on empty table: %v", err)
	}
	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("empty output = %q", buf.String())
	}

	for _, s := range []highscore.SinglePlayerScore{
		{PlayerOneName: "ann", Score: 40},
		{PlayerOneName: "bob", Score: 80},
	} {
		if _, err := db.AddSingle(ctx, s); err != nil {
			t.Fatal(err)
		}
	}

	buf.Reset()
	if err := printScores(ctx, &buf, db, highscore.ModeSingle, 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	out := buf.String()
	if strings.Index(out, "bob") > strings.Index(out, "ann") {
		t.Errorf("scores not ordered by score:\n%s", out)
	}
	if !strings.Contains(out, "Best: 80") {
		t.Errorf("best line missing:\n%s", out)
	}

	stats, err := db.GetStats(ctx, highscore.ModeSingle)
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	buf.Reset()
	printStats(&buf, stats)
	if !strings.Contains(buf.String(), "Games: 2  Average: 60") {
		t.Errorf("stats line = %q", buf.String())
	}
}
