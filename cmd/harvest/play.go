package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/harvest-defense/internal/config"
	"github.com/vovakirdan/harvest-defense/internal/core"
	"github.com/vovakirdan/harvest-defense/internal/games/harvest"
	"github.com/vovakirdan/harvest-defense/internal/platform/sound"
	"github.com/vovakirdan/harvest-defense/internal/platform/tui"
	"github.com/vovakirdan/harvest-defense/internal/registry"
	"github.com/vovakirdan/harvest-defense/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play Harvest Defense",
	Long: `Start playing the given variant (default: harvest).

Variants:
  harvest          - Crops of mixed height that keep growing back
  harvest_classic  - A flat field that stays cut

Controls:
  W/A/S/D, arrows  - Steer the combine
  Mouse            - Aim the turret
  Left click, F    - Fire
  Space/Enter      - Start (and restart after game over)
  P/Esc            - Pause
  M                - Mute
  Ctrl+Y           - Copy a run summary
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy     - Slower, sparser enemies and a bigger magazine
  normal   - The configured enemies, ramping up from 30% difficulty
  hard     - Faster, denser enemies and fewer drops
  classic  - Flat crops, no growth, no difficulty ramp

Examples:
  harvest play
  harvest play harvest_classic
  harvest play --difficulty hard
  harvest play --config ./my-field.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, classic")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := harvest.IDHarvest
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q; run 'harvest list' to see them", gameID)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
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

	return playSession(gameID, runtimeConfig(), flagDifficulty, store, player, logger)
}

// checkConfig fails early on a --config file the game would otherwise
// replace with the defaults.
func checkConfig() error {
	if flagConfig == "" {
		return nil
	}
	_, err := config.LoadHarvest(flagConfig)
	return err
}

// runtimeConfig sizes the session to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score log. The game still runs without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// openSound opens the speaker unless sound is muted or disabled in the
// config. Audio failures fall back to silence.
func openSound(logger *log.Logger) sound.Player {
	cfg, err := config.LoadHarvest(flagConfig)
	if err != nil {
		logger.Warn("config not loaded, using defaults", "error", err)
		cfg = config.DefaultHarvestConfig()
	}
	player, err := sound.Open(cfg.Sound.Enabled && !flagMute, cfg.Sound.Volume)
	if err != nil {
		logger.Warn("audio unavailable", "error", err)
	}
	return player
}

// playSession runs one variant in the TUI until the player quits.
func playSession(gameID string, cfg core.RuntimeConfig, preset string, store *storage.Store, player sound.Player, logger *log.Logger) error {
	// Set config path and difficulty before creation
	harvest.SetConfigPath(flagConfig)
	harvest.SetDifficultyPreset(preset)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger.Info("starting", "game", gameID, "difficulty", preset)
	return tui.Run(game, cfg, tui.Options{
		Store:  store,
		Sound:  player,
		Logger: logger,
	})
}
