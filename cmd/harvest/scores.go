package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/harvest-defense/internal/games/harvest"
	"github.com/vovakirdan/harvest-defense/internal/platform/tui"
	"github.com/vovakirdan/harvest-defense/internal/registry"
	"github.com/vovakirdan/harvest-defense/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the best runs for a variant (default: harvest).

With -i the interactive scoreboard opens instead, covering every variant.

Examples:
  harvest scores
  harvest scores harvest_classic --limit 20
  harvest scores -i`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := harvest.IDHarvest
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q; run 'harvest list' to see them", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'harvest play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-7s  %-5s  %-7s  %-6s  %s\n", "Rank", "Harvest", "Kills", "Result", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-7s  %-5s  %-7s  %-6s  %s\n", "----", "-------", "-----", "------", "----", "----")
	for i, e := range scores {
		result := e.Outcome
		if result == "" {
			result = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-7s  %-5d  %-7s  %-6s  %s\n",
			i+1, fmt.Sprintf("%d%%", e.Score), e.Kills, result,
			formatDuration(e.Duration), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Runs: %d  Best: %d%%  Average: %.1f%%  Cleared: %d  Kills: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.Cleared, stats.TotalKills)
	}
	return nil
}
