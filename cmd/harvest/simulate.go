package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/harvest-defense/internal/config"
	"github.com/vovakirdan/harvest-defense/internal/core"
	"github.com/vovakirdan/harvest-defense/internal/games/harvest"
	"github.com/vovakirdan/harvest-defense/internal/games/harvest/sim"
)

var (
	flagTicks   int
	flagRuns    int
	flagVariant string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless autopilot sessions",
	Long: `Play sessions without a terminal using the built-in autopilot and
print a report. Each run uses seed+N, so a fixed --seed reproduces the
whole report.

Examples:
  harvest simulate
  harvest simulate --runs 50 --seed 42
  harvest simulate --variant harvest_classic --difficulty hard --ticks 36000`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 60*300, "Tick limit per run")
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of runs")
	simulateCmd.Flags().StringVar(&flagVariant, "variant", harvest.IDHarvest, "Variant to simulate")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, classic")
}

// simResult is one autopilot run.
type simResult struct {
	report core.RunReport
	ticks  int
	ended  bool
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	if flagVariant != harvest.IDHarvest && flagVariant != harvest.IDClassic {
		return fmt.Errorf("unknown variant %q; run 'harvest list' to see them", flagVariant)
	}
	if flagRuns < 1 || flagTicks < 1 {
		return fmt.Errorf("--runs and --ticks must be positive")
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := config.LoadHarvest(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		config.ApplyHarvestPreset(&cfg, preset)
	}

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}
	logger.Info("simulating", "variant", flagVariant, "runs", flagRuns, "ticks", flagTicks, "seed", base)

	results := make([]simResult, 0, flagRuns)
	for i := 0; i < flagRuns; i++ {
		r := simulateRun(flagVariant, cfg, base+int64(i), flagTicks)
		logger.Debug("run finished", "run", i+1, "seed", r.report.Seed,
			"outcome", r.report.Outcome, "score", r.report.Score, "ticks", r.ticks)
		results = append(results, r)
	}

	printReport(cmd, results)
	return nil
}

// simulateRun plays one autopilot session until it ends or hits the tick
// limit.
func simulateRun(variant string, cfg config.HarvestConfig, seed int64, limit int) simResult {
	g := harvest.NewWithConfig(variant, cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})

	var ap sim.Autopilot
	ticks := 0
	for ; ticks < limit; ticks++ {
		g.Drive(ap.Input(g.Sim()))
		if g.Sim().State() == sim.StateGameOver {
			break
		}
	}

	rep := g.Report()
	ended := g.Sim().State() == sim.StateGameOver
	if !ended {
		rep.Outcome = "timeout"
	}
	return simResult{report: rep, ticks: ticks, ended: ended}
}

func printReport(cmd *cobra.Command, results []simResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  %-4s  %-20s  %-8s  %-7s  %-5s  %-5s  %s\n", "Run", "Seed", "Result", "Harvest", "Cells", "Kills", "Time")
	fmt.Fprintf(out, "  %-4s  %-20s  %-8s  %-7s  %-5s  %-5s  %s\n", "---", "----", "------", "-------", "-----", "-----", "----")

	var total float64
	outcomes := map[string]int{}
	for i, r := range results {
		rep := r.report
		fmt.Fprintf(out, "  %-4d  %-20d  %-8s  %-7s  %-5d  %-5d  %s\n",
			i+1, rep.Seed, rep.Outcome, fmt.Sprintf("%d%%", rep.Score),
			rep.Cells, rep.Kills, formatDuration(rep.Duration))
		total += float64(rep.Score)
		outcomes[rep.Outcome]++
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Average harvest: %.1f%%  Cleared: %d  Caught: %d  Timed out: %d\n",
		total/float64(len(results)), outcomes["cleared"], outcomes["caught"], outcomes["timeout"])
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
