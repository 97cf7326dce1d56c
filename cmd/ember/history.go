package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ember-story/internal/platform/tui"
	"github.com/vovakirdan/ember-story/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryPlain bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past runs",
	Long: `Display recorded runs, newest first, with totals.

Output is an interactive table on a terminal and plain text otherwise.

Examples:
  ember history
  ember history --plain --limit 5
  ember history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to print in plain mode")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print plain text instead of the interactive table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the whole history")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagHistoryPlain && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		return tui.RunHistory(store, width, height)
	}

	return printHistory(store, flagHistoryLimit)
}

func printHistory(store *storage.Store, limit int) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	fmt.Println("Ember Story - runs")
	fmt.Println("==================")
	fmt.Println(tui.SummaryLine(stats))
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Printf("%-5s %-10s %-6s %-5s %-5s %s\n", "#", "Outcome", "Time", "Wood", "Story", "Date")
	for _, row := range tui.HistoryRows(runs) {
		fmt.Printf("%-5s %-10s %-6s %-5s %-5s %s\n", row[0], row[1], row[2], row[3], row[4], row[5])
	}
	return nil
}
