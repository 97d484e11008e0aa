package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAPI        string
	flagSpectate   string
	flagSound      bool
	flagShip       string
	flagShip2      string
)

var playCmd = &cobra.Command{
	Use:   "play [invaders|invaders_coop]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: invaders).

Controls:
  Left/Right      - Move (player 1)
  Up/Space        - Fire (player 1)
  A/D, W          - Move, fire (player 2 in co-op)
  P               - Pause
  M               - Mute
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slow start, escalates with levels
  normal - Config defaults
  hard   - Fast start, escalates with levels
  fixed  - No escalation, the first wave's pace forever

Examples:
  invaders play
  invaders play invaders_coop --ship 1 --ship2 2
  invaders play --difficulty fixed --sound
  invaders play --config ./my-invaders.yaml
  invaders play --spectate :8080
  invaders play --api http://localhost:5000/api`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagAPI, "api", "", "High score API base URL (default: local database)")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Stream frames to websocket spectators on this address")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().StringVar(&flagShip, "ship", "", "Ship for player 1 (name or index)")
	playCmd.Flags().StringVar(&flagShip2, "ship2", "", "Ship for player 2 (name or index)")
}

// applyGameFlags hands --config and --difficulty to the game package.
// An explicit --config must load and validate.
func applyGameFlags() error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadInvaders(flagConfig); err != nil {
			return err
		}
	}
	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(string(preset))
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "invaders"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'invaders list')", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	for i, v := range []string{flagShip, flagShip2} {
		if v == "" {
			continue
		}
		ship, err := resolveShip(v)
		if err != nil {
			return err
		}
		if sel, ok := game.(tui.ShipSelector); ok {
			sel.SelectShip(core.Player1+core.PlayerID(i), ship)
		}
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
	x.attach(game)

	if err := tui.Run(game, runtimeConfig(), tui.Options{Store: store, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
