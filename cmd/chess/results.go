package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chess/internal/storage"
)

var (
	flagLimit    int
	flagResultID string
	flagClear    bool
)

var resultsCmd = &cobra.Command{
	Use:   "results [variant]",
	Short: "Show finished games",
	Long: `Display the most recent finished games, newest first.
Without a variant, games of every variant are listed.

Examples:
  chess results
  chess results chess_strict --limit 5
  chess results --id 3f0c...        # one game with its final position
  chess results chess --clear       # delete all games of a variant`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of games to show")
	resultsCmd.Flags().StringVar(&flagResultID, "id", "", "Show a single game by ID")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all games of the variant")
}

func runResults(_ *cobra.Command, args []string) {
	variant := ""
	if len(args) > 0 {
		variant = args[0]
		checkVariant(variant)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagResultID != "":
		err = showResult(store, flagResultID)
	case flagClear:
		err = clearResults(store, variant)
	default:
		err = listResults(store, variant)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showResult(store *storage.Store, id string) error {
	r, err := store.ResultByID(id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no game with id %q", id)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Game     %s\n", r.ID)
	fmt.Printf("Variant  %s\n", r.Variant)
	fmt.Printf("Played   %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Winner   %s (%s)\n", r.Winner, r.EndReason)
	fmt.Printf("Plies    %d\n", r.Plies)
	fmt.Printf("Taken    white %d, black %d\n", r.WhiteCaptures, r.BlackCaptures)
	fmt.Printf("FEN      %s\n", r.FinalFEN)
	return nil
}

func clearResults(store *storage.Store, variant string) error {
	if variant == "" {
		return errors.New("--clear needs a variant")
	}
	if err := store.ClearResults(variant); err != nil {
		return err
	}
	fmt.Printf("Cleared all %s games.\n", variant)
	return nil
}

func listResults(store *storage.Store, variant string) error {
	results, err := store.RecentResults(variant, flagLimit)
	if err != nil {
		return err
	}

	title := "all variants"
	if variant != "" {
		title = variant
	}
	fmt.Printf("Recent games - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'chess play' and finish a game to see it here!")
		return nil
	}

	fmt.Printf("  %-8s  %-13s  %-6s  %-14s  %5s  %-16s\n", "ID", "Variant", "Winner", "Reason", "Plies", "Date")
	fmt.Printf("  %-8s  %-13s  %-6s  %-14s  %5s  %-16s\n", "--", "-------", "------", "------", "-----", "----")
	for _, r := range results {
		fmt.Printf("  %-8s  %-13s  %-6s  %-14s  %5d  %s\n",
			shortID(r.ID), r.Variant, r.Winner, r.EndReason, r.Plies,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if variant == "" {
		return nil
	}
	stats, err := store.GetVariantStats(variant)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Total: %d games, white %d, black %d, %d forfeits, avg %.1f plies\n",
		stats.Games, stats.WhiteWins, stats.BlackWins, stats.Forfeits, stats.AvgPlies)
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
