package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/harvest-defense/internal/config"
	"github.com/vovakirdan/harvest-defense/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant and difficulty interactively",
	Long: `Start Harvest Defense in interactive menu mode.

Use arrow keys or j/k to pick a variant, left/right to change the
difficulty, Enter to play. After you quit a game you return to the menu.

Controls:
  Up/Down/j/k     - Pick variant
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Tab             - High scores
  Q               - Quit

Examples:
  harvest menu
  harvest menu --fps 30
  harvest menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := checkConfig(); err != nil {
		return err
	}

	logger, closer, err := fileLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	player := openSound(logger)
	defer player.Close()

	cfg := runtimeConfig()
	preset := config.DifficultyNormal

	// Menu loop
	for {
		result, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			return err
		}

		// Keep size and difficulty changes for the next round
		cfg = result.Config
		preset = result.Preset

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		if err := playSession(result.GameID, cfg, string(preset), store, player, logger); err != nil {
			return err
		}
	}
}
