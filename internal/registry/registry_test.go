package registry

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

type fakeGame struct {
	players int
}

func (f *fakeGame) ID() string                                { return "fake" }
func (f *fakeGame) Title() string                             { return "Fake" }
func (f *fakeGame) Reset(core.RuntimeConfig)                  {}
func (f *fakeGame) Step(core.MultiInputFrame) core.StepResult { return core.StepResult{} }
func (f *fakeGame) Render(*core.Screen)                       {}
func (f *fakeGame) State() core.GameState                     { return core.GameState{} }
func (f *fakeGame) Players() int                              { return f.players }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_solo", func() Game { return &fakeGame{players: 1} })
	Register("test_duo", func() Game { return &fakeGame{players: 2} })

	if !Exists("test_solo") || Exists("test_missing") {
		t.Error("Exists() mismatch")
	}

	g, err := Create("test_duo")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.Title() != "Fake" {
		t.Errorf("Title() = %q", g.Title())
	}

	if _, err := Create("test_missing"); err == nil {
		t.Error("Create() of unknown id should fail")
	}

	var duo GameInfo
	for _, info := range List() {
		if info.ID == "test_duo" {
			duo = info
		}
	}
	if duo.Players != 2 {
		t.Errorf("List() players = %d, expected 2", duo.Players)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &fakeGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("test_dup", func() Game { return &fakeGame{} })
}
