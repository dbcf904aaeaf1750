package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseHarvest(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseHarvest(embedded) failed: %v", err)
	}
	want := DefaultHarvestConfig()

	if cfg.Field != want.Field {
		t.Errorf("field = %+v, want %+v", cfg.Field, want.Field)
	}
	if cfg.Crops != want.Crops {
		t.Errorf("crops = %+v, want %+v", cfg.Crops, want.Crops)
	}
	if cfg.Enemies != want.Enemies {
		t.Errorf("enemies = %+v, want %+v", cfg.Enemies, want.Enemies)
	}
	if cfg.Turret != want.Turret {
		t.Errorf("turret = %+v, want %+v", cfg.Turret, want.Turret)
	}
	if cfg.Bullets != want.Bullets {
		t.Errorf("bullets = %+v, want %+v", cfg.Bullets, want.Bullets)
	}
	if cfg.Difficulty != want.Difficulty {
		t.Errorf("difficulty = %+v, want %+v", cfg.Difficulty, want.Difficulty)
	}
	if cfg.Sound != want.Sound {
		t.Errorf("sound = %+v, want %+v", cfg.Sound, want.Sound)
	}
	for mode, w := range want.Items.Weights {
		if cfg.Items.Weights[mode] != w {
			t.Errorf("items.weights.%s = %d, want %d", mode, cfg.Items.Weights[mode], w)
		}
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultHarvestConfig().Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultHarvestConfig()
	cfg.Field.Width = 1
	cfg.Combine.Speed = 0
	cfg.Crops.InitialLevels = "random"
	cfg.Items.Weights = map[string]int{"laser": 5}
	cfg.Sound.Volume = 2

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() accepted a broken config")
	}
	for _, want := range []string{"field.width", "combine.speed", "crops.initial_levels", "laser", "sound.volume"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestValidateTimerFloors(t *testing.T) {
	cfg := DefaultHarvestConfig()
	cfg.Combine.Speed = 1e-10
	cfg.Enemies.SpawnIntervalSecs = 1e-12

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() accepted near-zero timer settings")
	}
	for _, want := range []string{"combine.speed", "enemies.spawn_interval_secs"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadHarvestCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harvest.yaml")
	data := "field:\n  width: 11\n  height: 7\ncombine:\n  speed: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHarvest(path)
	if err != nil {
		t.Fatalf("LoadHarvest() failed: %v", err)
	}
	if cfg.Field.Width != 11 || cfg.Field.Height != 7 {
		t.Errorf("field = %+v, want 11x7", cfg.Field)
	}
	if cfg.Combine.Speed != 4 {
		t.Errorf("combine.speed = %v, want 4", cfg.Combine.Speed)
	}
	// Untouched keys keep their defaults.
	if cfg.Turret.MaxAmmo != 20 {
		t.Errorf("turret.max_ammo = %d, want 20", cfg.Turret.MaxAmmo)
	}
}

func TestLoadHarvestErrors(t *testing.T) {
	if _, err := LoadHarvest(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("turret:\n  max_ammo: -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadHarvest(bad)
	if err == nil || !strings.Contains(err.Error(), "turret.max_ammo") {
		t.Errorf("LoadHarvest(bad) = %v, want max_ammo error", err)
	}
}

func TestApplyHarvestPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		level     float64
		levels    string
		growth    bool
		spawnSecs float64
	}{
		{DifficultyEasy, true, 0.0, "noise", true, 0.8},
		{DifficultyNormal, true, 0.3, "noise", true, 0.5},
		{DifficultyHard, true, 0.7, "noise", true, 0.35},
		{DifficultyClassic, false, 0.0, "flat", false, 0.5},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultHarvestConfig()
			ApplyHarvestPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("difficulty.enabled = %v, want %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("initial_level = %v, want %v", cfg.Difficulty.InitialLevel, tt.level)
			}
			if cfg.Crops.InitialLevels != tt.levels || cfg.Crops.Growth.Enabled != tt.growth {
				t.Errorf("crops = %+v", cfg.Crops)
			}
			if cfg.Enemies.SpawnIntervalSecs != tt.spawnSecs {
				t.Errorf("spawn interval = %v, want %v", cfg.Enemies.SpawnIntervalSecs, tt.spawnSecs)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config invalid: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf(`ParsePreset("") = %q, %v`, p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf(`ParsePreset("hard") = %q, %v`, p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultHarvestConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 0); got != 0 {
		t.Errorf("Level at start = %v, want 0", got)
	}
	if got := dm.Level(0, cfg.Progression.MaxAt/2); got != 0.5 {
		t.Errorf("Level halfway = %v, want 0.5", got)
	}
	if got := dm.Level(0, cfg.Progression.MaxAt*3); got != 1 {
		t.Errorf("Level past max = %v, want 1", got)
	}

	if got := dm.Speed(3, 0, cfg.Progression.MaxAt); got != 4.5 {
		t.Errorf("Speed at max = %v, want 4.5", got)
	}
	if got := dm.SpawnInterval(500*time.Millisecond, 0, 0); got != 500*time.Millisecond {
		t.Errorf("SpawnInterval at start = %v", got)
	}
	if got := dm.SpawnInterval(500*time.Millisecond, 0, cfg.Progression.MaxAt); got != 300*time.Millisecond {
		t.Errorf("SpawnInterval at max = %v, want 300ms", got)
	}

	dm.SetEnabled(false)
	dm.SetInitialLevel(0.7)
	if got := dm.Level(0, cfg.Progression.MaxAt); got != 0.7 {
		t.Errorf("fixed Level = %v, want 0.7", got)
	}
	if got := dm.Speed(3, 0, cfg.Progression.MaxAt); got != 3 {
		t.Errorf("disabled Speed = %v, want base 3", got)
	}
	if got := dm.SpawnInterval(500*time.Millisecond, 0, cfg.Progression.MaxAt); got != 500*time.Millisecond {
		t.Errorf("disabled SpawnInterval = %v, want base 500ms", got)
	}
}

func TestDifficultyHeldAtInitialLevel(t *testing.T) {
	cfg := DefaultHarvestConfig().Difficulty
	cfg.Enabled = true
	cfg.InitialLevel = 1
	cfg.Progression.Type = "none"
	dm := NewDifficultyManager(cfg)

	if got := dm.Speed(3, 0, 0); got != 4.5 {
		t.Errorf("Speed = %v, want 4.5 at level 1", got)
	}
	if got := dm.Speed(3, 50, cfg.Progression.MaxAt); got != 4.5 {
		t.Errorf("Speed later = %v, want 4.5", got)
	}
}
