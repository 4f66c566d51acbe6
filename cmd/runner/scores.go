package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/guacamole-runner/internal/games/runner"
	"github.com/vovakirdan/guacamole-runner/internal/platform/tui"
	"github.com/vovakirdan/guacamole-runner/internal/registry"
	"github.com/vovakirdan/guacamole-runner/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best flights",
	Long: `Display the best flights for a mode (default: runner).

Examples:
  runner scores
  runner scores runner_editor --limit 20
  runner scores --tui
  runner scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every score of the mode")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of flights to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := runner.ModeRunner
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'runner list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		logger.Info("scores cleared", "mode", gameID)
		fmt.Printf("Cleared all scores for %s.\n", gameID)
		return
	}

	printScores(store, gameID)
}

func printScores(store *storage.Store, gameID string) {
	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	info, _ := registry.Info(gameID)
	fmt.Printf("Best Flights - %s\n", info.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No flights recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'runner play %s' to set the first score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Points", "Distance", "When")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "------", "--------", "----")
	for _, row := range tui.RunRows(runs) {
		fmt.Printf("  %-4s  %-10s  %-10s  %s\n", row[0], row[1], row[2], row[3])
	}

	if st, err := store.Stats(gameID); err == nil {
		fmt.Println()
		fmt.Println(tui.StatsLine(st))
		fmt.Printf("Ground covered: %s tiles\n", humanize.Comma(int64(st.TotalDistance)))
	}
}
