package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the mode and ship picker menu",
	Long: `Start in interactive menu mode.

Pick one- or two-player mode, choose ships, or open the scoreboard.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Player 1 ship
  ,/.          - Player 2 ship
  Enter/Space  - Start
  Tab          - Scoreboard
  Q            - Quit

Examples:
  invaders menu
  invaders menu --sound --difficulty hard
  invaders menu --fps 30`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagAPI, "api", "", "High score API base URL (default: local database)")
	menuCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Stream frames to websocket spectators on this address")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger("invaders")
	if err != nil {
		return err
	}
	defer closeLog()

	store, closer, err := openStore(flagAPI, logger)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		cmd.PrintErrf("Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer closer.Close()

	x := startExtras(logger, flagSound, flagSpectate)
	defer x.close()

	opts := tui.SessionOptions{
		Options: tui.Options{Store: store, Logger: logger},
		Ships:   invaders.ShipNames(),
		Prepare: x.attach,
	}
	if err := tui.RunSession(runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
