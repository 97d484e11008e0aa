// invaders is a terminal space invaders game with local co-op, an SSH
// server for remote play and a small high score API.
//
// Usage:
//
//	invaders list              - List game modes
//	invaders play [mode]       - Play a mode directly (default: invaders)
//	invaders menu              - Start the menu to pick a mode and ships
//	invaders serve             - Start SSH server for remote play
//	invaders api               - Serve the high score HTTP API
//	invaders scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.invaders/scores.db)
//	--log <path>    - Append debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register game modes
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "TUI Invaders - defend the bottom of your terminal",
	Long: `TUI Invaders is a terminal take on the classic fixed shooter.
Waves of enemies descend row by row, shoot back, and speed up as the
levels go by. Two players can share a keyboard in co-op mode.

Available commands:
  list     - Show game modes
  play     - Play a mode directly
  menu     - Interactive menu with ship selection
  serve    - Start SSH server for remote play
  api      - Serve the high score HTTP API
  scores   - View high scores

Examples:
  invaders play
  invaders play invaders_coop --difficulty hard
  invaders menu
  invaders serve --ssh :2222
  invaders scores --mode mp`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger returns a logger for commands that own the terminal. Output
// goes to --log when given and is dropped otherwise.
func newLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// newServerLogger returns a logger for long-running server commands.
func newServerLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}
