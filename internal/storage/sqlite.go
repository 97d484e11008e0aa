// Package storage provides SQLite-based persistence for the leaderboards.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-invaders/internal/highscore"
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

var (
	_ highscore.Store      = (*Store)(nil)
	_ highscore.BestScorer = (*Store)(nil)
)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer; the API server and the SSH host share a file.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sp_high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_one_name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sp_top ON sp_high_scores(score DESC);

		CREATE TABLE IF NOT EXISTS mp_high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_one_name TEXT NOT NULL,
			player_two_name TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_mp_top ON mp_high_scores(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// AddSingle validates and records a one-player score.
func (s *Store) AddSingle(ctx context.Context, rec highscore.SinglePlayerScore) (highscore.SinglePlayerScore, error) {
	if err := rec.Normalize(); err != nil {
		return highscore.SinglePlayerScore{}, err
	}
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO sp_high_scores (player_one_name, score) VALUES (?, ?)
		 RETURNING id, created_at`,
		rec.PlayerOneName, rec.Score,
	)
	var createdAt any
	if err := row.Scan(&rec.ID, &createdAt); err != nil {
		return highscore.SinglePlayerScore{}, fmt.Errorf("storage: cannot save score: %w", err)
	}
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// AddMulti validates and records a two-player score.
func (s *Store) AddMulti(ctx context.Context, rec highscore.MultiPlayerScore) (highscore.MultiPlayerScore, error) {
	if err := rec.Normalize(); err != nil {
		return highscore.MultiPlayerScore{}, err
	}
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO mp_high_scores (player_one_name, player_two_name, score) VALUES (?, ?, ?)
		 RETURNING id, created_at`,
		rec.PlayerOneName, rec.PlayerTwoName, rec.Score,
	)
	var createdAt any
	if err := row.Scan(&rec.ID, &createdAt); err != nil {
		return highscore.MultiPlayerScore{}, fmt.Errorf("storage: cannot save score: %w", err)
	}
	rec.CreatedAt = parseTime(createdAt)
	return rec, nil
}

// Singles retrieves the top one-player scores, highest first.
func (s *Store) Singles(ctx context.Context, limit int) ([]highscore.SinglePlayerScore, error) {
	if limit <= 0 {
		limit = highscore.DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player_one_name, score, created_at
		 FROM sp_high_scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []highscore.SinglePlayerScore
	for rows.Next() {
		var e highscore.SinglePlayerScore
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PlayerOneName, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Multis retrieves the top two-player scores, highest first.
func (s *Store) Multis(ctx context.Context, limit int) ([]highscore.MultiPlayerScore, error) {
	if limit <= 0 {
		limit = highscore.DefaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player_one_name, player_two_name, score, created_at
		 FROM mp_high_scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []highscore.MultiPlayerScore
	for rows.Next() {
		var e highscore.MultiPlayerScore
		var createdAt any
		if err := rows.Scan(&e.ID, &e.PlayerOneName, &e.PlayerTwoName, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score on the given leaderboard.
// Returns 0 if no scores exist.
func (s *Store) HighScore(ctx context.Context, mode highscore.Mode) (int, error) {
	table, err := tableFor(mode)
	if err != nil {
		return 0, err
	}

	var score sql.NullInt64
	if err := s.db.QueryRowContext(ctx, "SELECT MAX(score) FROM "+table).Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats contains aggregated statistics for one leaderboard.
type Stats struct {
	Mode       highscore.Mode
	GamesCount int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics for a leaderboard.
func (s *Store) GetStats(ctx context.Context, mode highscore.Mode) (*Stats, error) {
	table, err := tableFor(mode)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Mode: mode}
	var lastPlayed any
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM `+table,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// Clear deletes every entry of a leaderboard.
func (s *Store) Clear(ctx context.Context, mode highscore.Mode) error {
	table, err := tableFor(mode)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

func tableFor(mode highscore.Mode) (string, error) {
	switch mode {
	case highscore.ModeSingle:
		return "sp_high_scores", nil
	case highscore.ModeMulti:
		return "mp_high_scores", nil
	}
	return "", fmt.Errorf("storage: %w: %q", highscore.ErrUnknownMode, mode)
}

// parseTime handles both time.Time and the driver's string form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
