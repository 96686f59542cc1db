package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chess/internal/config"
	"github.com/vovakirdan/tui-chess/internal/games/chess"
	"github.com/vovakirdan/tui-chess/internal/platform/tui"
	"github.com/vovakirdan/tui-chess/internal/registry"
	"github.com/vovakirdan/tui-chess/internal/storage"
)

var (
	flagConfig string
	flagRules  string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start a hot-seat game of the given variant (default: chess).

White moves first. Click a piece to select it, then click one of the
marked squares to move. Clicking another of your pieces changes the
selection.

Controls:
  Mouse        - Select a piece / destination, press FORFEIT
  Arrows/hjkl  - Move the board cursor
  Enter/Space  - Click the square under the cursor
  F            - Forfeit for the side to move
  1-4          - Promote to queen, rook, bishop, knight
  Enter/R      - Restart (after game over)
  Esc/B        - Back
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots

Rules presets:
  casual - Check is shown but moves into check are allowed
  strict - Moves that leave your king in check are hidden

Examples:
  chess play
  chess play chess_strict
  chess play --rules strict
  chess play --config ./my-chess.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom chess config YAML")
	playCmd.Flags().StringVar(&flagRules, "rules", "", "Rules preset: casual, strict")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom chess config YAML")
	menuCmd.Flags().StringVar(&flagRules, "rules", "", "Rules preset: casual, strict")
}

// applyGameFlags validates --config and --rules and hands them to the chess
// package before any game is created.
func applyGameFlags() error {
	if _, err := config.ParseRulesPreset(flagRules); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadChess(flagConfig); err != nil {
			return err
		}
	}
	chess.SetConfigPath(flagConfig)
	chess.SetRulesPreset(flagRules)
	return nil
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := chess.VariantCasual
	if len(args) > 0 {
		gameID = args[0]
	}
	checkVariant(gameID)

	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger("chess")

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, logger, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
