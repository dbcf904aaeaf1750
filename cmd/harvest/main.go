// harvest is a terminal arcade game: steer a combine across a crop field
// while its turret holds off the enemies closing in from the edges.
//
// Usage:
//
//	harvest list               - List the game variants
//	harvest play [variant]     - Play a variant (default: harvest)
//	harvest menu               - Pick a variant and difficulty interactively
//	harvest scores [variant]   - Show high scores
//	harvest simulate           - Run headless autopilot sessions
//	harvest config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.harvest/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Where interactive commands log (default: ~/.harvest/harvest.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/harvest-defense/internal/games/harvest"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Harvest Defense - bring in the crop, keep the raiders off",
	Long: `Harvest Defense is a terminal arcade game. You drive a combine
harvester across a field of crops; every cell you cut raises your score
and refills the turret mounted on the combine. Enemies spawn at the field
edges and home in on you. Shoot them down, grab the weapon crates they
drop, and clear the field before one of them reaches you.

Available commands:
  list      - Show the game variants
  play      - Play a variant directly
  menu      - Interactive variant and difficulty picker
  scores    - View high scores
  simulate  - Run headless autopilot sessions
  config    - Print the default configuration

Examples:
  harvest play
  harvest play harvest_classic --difficulty hard
  harvest menu
  harvest simulate --runs 20 --seed 7
  harvest config > ~/.harvest/configs/harvest.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.harvest/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.harvest/harvest.log", "Log file for interactive commands")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "harvest",
		Level:           level,
	})
	return logger, nil
}

// fileLogger opens the log file for commands that own the terminal.
// The returned closer must be called on exit.
func fileLogger() (*log.Logger, io.Closer, error) {
	path, err := expandHome(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
