package config

import (
	_ "embed"
)

//go:embed defaults/harvest.yaml
var defaultHarvestYAML []byte

// DefaultHarvestConfig returns the default harvest configuration.
// It mirrors defaults/harvest.yaml.
func DefaultHarvestConfig() HarvestConfig {
	return HarvestConfig{
		Field: FieldConfig{
			Width:  31,
			Height: 15,
		},
		Crops: CropsConfig{
			InitialLevels: "noise",
			Growth: GrowthConfig{
				Enabled:    true,
				BaseSecs:   8,
				SpreadSecs: 8,
			},
		},
		Combine: CombineConfig{
			Speed: 2,
		},
		Enemies: EnemiesConfig{
			SpawnIntervalSecs: 0.5,
			Speed:             3,
			HitRadiusSq:       0.1,
		},
		Turret: TurretConfig{
			CooldownSecs: 0.2,
			MaxAmmo:      20,
			AmmoPerCell:  1,
		},
		Bullets: BulletsConfig{
			Speed:       12,
			TTLSecs:     5,
			HitRadiusSq: 0.25,
		},
		Items: ItemsConfig{
			DropChance:     0.1,
			TTLSecs:        8,
			PickupRadiusSq: 0.36,
			Weights: map[string]int{
				"fast":    30,
				"shotgun": 25,
				"split":   25,
				"reverse": 10,
				"nuke":    10,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 18000, // 5 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnReduction:  0.4,
			},
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHarvestYAML
}
