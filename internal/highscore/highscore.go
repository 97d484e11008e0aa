// Package highscore defines the leaderboard records, the store boundary and
// an HTTP API for submitting and listing scores.
package highscore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxNameLength is the longest player name accepted, in characters.
const MaxNameLength = 20

// DefaultLimit is used when a listing is requested without a limit.
const DefaultLimit = 10

var (
	ErrNameRequired = errors.New("highscore: name is required")
	ErrNameTooLong  = fmt.Errorf("highscore: name longer than %d characters", MaxNameLength)
	ErrNegative     = errors.New("highscore: score must not be negative")
	ErrUnknownMode  = errors.New("highscore: unknown mode")
)

// Mode selects a leaderboard.
type Mode string

const (
	ModeSingle Mode = "sp"
	ModeMulti  Mode = "mp"
)

// ParseMode accepts "sp" or "mp".
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeSingle:
		return ModeSingle, nil
	case ModeMulti:
		return ModeMulti, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Path returns the API resource for the leaderboard.
func (m Mode) Path() string {
	return "/" + string(m) + "-high-score"
}

// SinglePlayerScore is one entry of the one-player leaderboard.
type SinglePlayerScore struct {
	ID            int64     `json:"id,omitempty"`
	PlayerOneName string    `json:"playerOneName"`
	Score         int       `json:"score"`
	CreatedAt     time.Time `json:"createdAt,omitzero"`
}

// MultiPlayerScore is one entry of the two-player leaderboard.
type MultiPlayerScore struct {
	ID            int64     `json:"id,omitempty"`
	PlayerOneName string    `json:"playerOneName"`
	PlayerTwoName string    `json:"playerTwoName"`
	Score         int       `json:"score"`
	CreatedAt     time.Time `json:"createdAt,omitzero"`
}

// Normalize trims names and validates the record.
func (s *SinglePlayerScore) Normalize() error {
	name, err := ValidateName(s.PlayerOneName)
	if err != nil {
		return fmt.Errorf("playerOneName: %w", err)
	}
	if s.Score < 0 {
		return ErrNegative
	}
	s.PlayerOneName = name
	return nil
}

// Normalize trims names and validates the record.
func (s *MultiPlayerScore) Normalize() error {
	one, err := ValidateName(s.PlayerOneName)
	if err != nil {
		return fmt.Errorf("playerOneName: %w", err)
	}
	two, err := ValidateName(s.PlayerTwoName)
	if err != nil {
		return fmt.Errorf("playerTwoName: %w", err)
	}
	if s.Score < 0 {
		return ErrNegative
	}
	s.PlayerOneName, s.PlayerTwoName = one, two
	return nil
}

// ValidateName trims surrounding whitespace and checks the length rules.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// Store persists and lists leaderboard entries. Listings are ordered by
// score, highest first.
type Store interface {
	AddSingle(ctx context.Context, s SinglePlayerScore) (SinglePlayerScore, error)
	AddMulti(ctx context.Context, s MultiPlayerScore) (MultiPlayerScore, error)
	Singles(ctx context.Context, limit int) ([]SinglePlayerScore, error)
	Multis(ctx context.Context, limit int) ([]MultiPlayerScore, error)
}

// BestScorer is implemented by stores that can look up the top score
// without listing entries.
type BestScorer interface {
	HighScore(ctx context.Context, mode Mode) (int, error)
}

// Best returns the top score of a leaderboard, or 0 when it is empty.
func Best(ctx context.Context, st Store, mode Mode) (int, error) {
	if bs, ok := st.(BestScorer); ok {
		return bs.HighScore(ctx, mode)
	}
	switch mode {
	case ModeSingle:
		top, err := st.Singles(ctx, 1)
		if err != nil || len(top) == 0 {
			return 0, err
		}
		return top[0].Score, nil
	case ModeMulti:
		top, err := st.Multis(ctx, 1)
		if err != nil || len(top) == 0 {
			return 0, err
		}
		return top[0].Score, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}
