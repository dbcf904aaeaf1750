package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "harvest.yaml"

// LoadHarvest loads the harvest configuration.
// Search order: customPath -> ~/.harvest/configs/harvest.yaml -> ./configs/harvest.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names. The result is validated.
func LoadHarvest(customPath string) (HarvestConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HarvestConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseHarvest(data)
		if err != nil {
			return HarvestConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseHarvest(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := ParseHarvest(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseHarvest(defaultHarvestYAML)
	if err != nil {
		return DefaultHarvestConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseHarvest decodes YAML over the defaults and validates the result.
func ParseHarvest(data []byte) (HarvestConfig, error) {
	cfg := DefaultHarvestConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HarvestConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return HarvestConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".harvest", "configs", filename)
}

// ApplyHarvestPreset modifies the config based on a difficulty preset.
func ApplyHarvestPreset(cfg *HarvestConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.SpawnIntervalSecs = 0.8
		cfg.Enemies.Speed = 2.5
		cfg.Turret.MaxAmmo = 30
	case DifficultyHard:
		cfg.Enemies.SpawnIntervalSecs = 0.35
		cfg.Enemies.Speed = 3.5
		cfg.Items.DropChance = 0.07
	case DifficultyClassic:
		cfg.Crops.InitialLevels = "flat"
		cfg.Crops.Growth.Enabled = false
	}
}

// ParsePreset resolves a preset name. The empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or classic)", name)
}
