package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chess/internal/config"
	"github.com/vovakirdan/tui-chess/internal/games/chess"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the default config YAML",
	Long: `Print the built-in configuration for a variant. Save it to
~/.arcade/configs/chess.yaml or ./configs/chess.yaml and edit it, or pass
it with --config.

Examples:
  chess config > ~/.arcade/configs/chess.yaml
  chess config chess_strict`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	variant := chess.VariantCasual
	if len(args) > 0 {
		variant = args[0]
	}
	checkVariant(variant)

	data := config.GetDefaultYAML(variant)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no default config for %q\n", variant)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
