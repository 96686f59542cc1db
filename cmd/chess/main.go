// chess is a hot-seat chess game for two players sharing one terminal.
//
// Usage:
//
//	chess list                - List available variants
//	chess play [variant]      - Play a game (default: chess)
//	chess menu                - Pick a variant interactively
//	chess results [variant]   - Show finished games
//	chess serve               - Start SSH server for remote play
//	chess config [variant]    - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--db <path>     - Set database path (default: ~/.arcade/chess.db)
//	--verbose       - Log debug messages
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chess/internal/core"
	_ "github.com/vovakirdan/tui-chess/internal/games/chess" // registers the variants
	"github.com/vovakirdan/tui-chess/internal/registry"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chess",
	Short: "TUI Chess - two players, one terminal",
	Long: `TUI Chess is a hot-seat chess game for the terminal. Players take
turns clicking (or using the keyboard cursor) on the same board.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  results  - View finished games
  serve    - Start SSH server for remote play
  config   - Print the default config YAML

Examples:
  chess play
  chess play chess_strict
  chess menu --fps 60
  chess serve --ssh :2222
  chess results --limit 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/chess.db", "Path to results database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the CLI logger, writing to stderr.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

// checkVariant exits with a hint when id is not a registered variant.
func checkVariant(id string) {
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'chess list' to see available variants.")
		os.Exit(1)
	}
}
