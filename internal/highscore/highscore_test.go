package highscore

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"plain", "ace", "ace", nil},
		{"trimmed", "  ace \t", "ace", nil},
		{"empty", "", "", ErrNameRequired},
		{"blank", "   ", "", ErrNameRequired},
		{"twenty", strings.Repeat("x", 20), strings.Repeat("x", 20), nil},
		{"twenty one", strings.Repeat("x", 21), "", ErrNameTooLong},
		{"multibyte counts runes", strings.Repeat("ж", 20), strings.Repeat("ж", 20), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateName(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(" MP "); err != nil || m != ModeMulti {
		t.Errorf("ParseMode(MP) = %q, %v", m, err)
	}
	if _, err := ParseMode("coop"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ParseMode(coop) error = %v, want ErrUnknownMode", err)
	}
	if got := ModeSingle.Path(); got != "/sp-high-score" {
		t.Errorf("ModeSingle.Path() = %q", got)
	}
}

func TestMultiNormalizeChecksBothNames(t *testing.T) {
	s := MultiPlayerScore{PlayerOneName: "a", PlayerTwoName: " ", Score: 5}
	err := s.Normalize()
	if !errors.Is(err, ErrNameRequired) || !strings.Contains(err.Error(), "playerTwoName") {
		t.Errorf("Normalize() error = %v", err)
	}
}

func TestMemoryStoreOrdering(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	for _, sc := range []int{50, 200, 100} {
		if _, err := st.AddSingle(ctx, SinglePlayerScore{PlayerOneName: "p", Score: sc}); err != nil {
			t.Fatalf("AddSingle: %v", err)
		}
	}
	list, _ := st.Singles(ctx, 2)
	if len(list) != 2 || list[0].Score != 200 || list[1].Score != 100 {
		t.Errorf("Singles(2) = %+v", list)
	}

	best, err := Best(ctx, st, ModeSingle)
	if err != nil || best != 200 {
		t.Errorf("Best(sp) = %d, %v", best, err)
	}
	best, err = Best(ctx, st, ModeMulti)
	if err != nil || best != 0 {
		t.Errorf("Best(mp) on empty = %d, %v", best, err)
	}
}

func TestMemoryStoreRejectsInvalid(t *testing.T) {
	st := NewMemoryStore()
	if _, err := st.AddSingle(context.Background(), SinglePlayerScore{Score: 1}); !errors.Is(err, ErrNameRequired) {
		t.Errorf("AddSingle without name error = %v", err)
	}
	if _, err := st.AddSingle(context.Background(), SinglePlayerScore{PlayerOneName: "x", Score: -1}); !errors.Is(err, ErrNegative) {
		t.Errorf("AddSingle negative error = %v", err)
	}
}

type scorerStore struct {
	*MemoryStore
	calls int
}

func (s *scorerStore) HighScore(_ context.Context, _ Mode) (int, error) {
	s.calls++
	return 4242, nil
}

func TestBestPrefersHighScoreLookup(t *testing.T) {
	ctx := context.Background()

	mem := NewMemoryStore()
	if _, err := mem.AddSingle(ctx, SinglePlayerScore{PlayerOneName: "ann", Score: 70}); err != nil {
		t.Fatal(err)
	}
	if got, err := Best(ctx, mem, ModeSingle); err != nil || got != 70 {
		t.Errorf("Best(memory) = %d, %v; want 70", got, err)
	}
	if got, err := Best(ctx, mem, ModeMulti); err != nil || got != 0 {
		t.Errorf("Best(empty multi) = %d, %v; want 0", got, err)
	}

	st := &scorerStore{MemoryStore: mem}
	got, err := Best(ctx, st, ModeSingle)
	if err != nil || got != 4242 || st.calls != 1 {
		t.Errorf("Best(scorer) = %d, %v, calls=%d; want 4242 via HighScore", got, err, st.calls)
	}
}
