package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/highscore"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresMode  string
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best scores for one-player (sp) or two-player (mp) games.
With the local database, totals for the table are shown as well.

Examples:
  invaders scores
  invaders scores --mode mp --limit 20
  invaders scores --interactive
  invaders scores --mode sp --clear
  invaders scores --api http://localhost:5000/api`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "sp", "Score table: sp or mp")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", highscore.DefaultLimit, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagScoresTUI, "interactive", "i", false, "Browse scores in the terminal UI")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the table (local database only)")
	scoresCmd.Flags().StringVar(&flagAPI, "api", "", "High score API base URL (default: local database)")
}

func runScores(cmd *cobra.Command, _ []string) error {
	mode, err := highscore.ParseMode(flagScoresMode)
	if err != nil {
		return err
	}

	store, closer, err := openStore(flagAPI, nil)
	if err != nil {
		return fmt.Errorf("opening scores: %w", err)
	}
	defer closer.Close()

	if flagScoresTUI {
		cfg := runtimeConfig()
		return tui.RunScoreboard(store, mode, cfg.ScreenW, cfg.ScreenH)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	db, local := store.(*storage.Store)
	if flagScoresClear {
		if !local {
			return errors.New("--clear only works on the local database")
		}
		if err := db.Clear(ctx, mode); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s scores.\n", boardName(mode))
		return nil
	}

	if err := printScores(ctx, cmd.OutOrStdout(), store, mode, flagScoresLimit); err != nil {
		return err
	}
	if local {
		stats, err := db.GetStats(ctx, mode)
		if err != nil {
			return err
		}
		printStats(cmd.OutOrStdout(), stats)
	}
	return nil
}

func boardName(mode highscore.Mode) string {
	if mode == highscore.ModeMulti {
		return "Two Players"
	}
	return "One Player"
}

// printScores writes the leaderboard as a plain table followed by the best score.
func printScores(ctx context.Context, w io.Writer, store highscore.Store, mode highscore.Mode, limit int) error {
	type row struct {
		names string
		score int
		at    time.Time
	}
	var rows []row
	switch mode {
	case highscore.ModeSingle:
		list, err := store.Singles(ctx, limit)
		if err != nil {
			return fmt.Errorf("retrieving scores: %w", err)
		}
		for _, s := range list {
			rows = append(rows, row{s.PlayerOneName, s.Score, s.CreatedAt})
		}
	case highscore.ModeMulti:
		list, err := store.Multis(ctx, limit)
		if err != nil {
			return fmt.Errorf("retrieving scores: %w", err)
		}
		for _, s := range list {
			rows = append(rows, row{s.PlayerOneName + " & " + s.PlayerTwoName, s.Score, s.CreatedAt})
		}
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", boardName(mode))

	if len(rows) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	nameW := len("Name")
	for _, r := range rows {
		nameW = max(nameW, len(r.names))
	}
	fmt.Fprintf(w, "  %-4s  %-*s  %-8s  %s\n", "Rank", nameW, "Name", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-*s  %-8s  %s\n", "----", nameW, strings.Repeat("-", 4), "-----", "----")
	for i, r := range rows {
		date := "-"
		if !r.at.IsZero() {
			date = r.at.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "  %-4d  %-*s  %-8d  %s\n", i+1, nameW, r.names, r.score, date)
	}

	if best, err := highscore.Best(ctx, store, mode); err == nil {
		fmt.Fprintf(w, "\nBest: %d\n", best)
	}
	return nil
}

func printStats(w io.Writer, s *storage.Stats) {
	if s.GamesCount == 0 {
		return
	}
	fmt.Fprintf(w, "Games: %d  Average: %.0f", s.GamesCount, s.AvgScore)
	if !s.LastPlayed.IsZero() {
		fmt.Fprintf(w, "  Last played: %s", s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(w)
}
