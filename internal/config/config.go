// Package config provides YAML-based game configuration loading and
// difficulty management for Harvest Defense.
package config

// HarvestConfig contains all configuration for the harvest game.
type HarvestConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Crops      CropsConfig      `yaml:"crops"`
	Combine    CombineConfig    `yaml:"combine"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Turret     TurretConfig     `yaml:"turret"`
	Bullets    BulletsConfig    `yaml:"bullets"`
	Items      ItemsConfig      `yaml:"items"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Sound      SoundConfig      `yaml:"sound"`
}

// FieldConfig defines the crop grid size in cells.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CropsConfig defines how crops are laid out and grow.
type CropsConfig struct {
	InitialLevels string       `yaml:"initial_levels"` // "noise" or "flat"
	LayoutSeed    int64        `yaml:"layout_seed"`    // 0 = derive from the run seed
	Growth        GrowthConfig `yaml:"growth"`
}

// GrowthConfig defines per-cell crop growth.
type GrowthConfig struct {
	Enabled    bool    `yaml:"enabled"`
	BaseSecs   float64 `yaml:"base_secs"`
	SpreadSecs float64 `yaml:"spread_secs"`
}

// CombineConfig defines the harvester.
type CombineConfig struct {
	Speed float64 `yaml:"speed"` // cells per second
}

// EnemiesConfig defines the spawner and homing enemies.
type EnemiesConfig struct {
	SpawnIntervalSecs float64 `yaml:"spawn_interval_secs"`
	Speed             float64 `yaml:"speed"`
	HitRadiusSq       float64 `yaml:"hit_radius_sq"`
}

// TurretConfig defines firing and the ammo economy.
type TurretConfig struct {
	CooldownSecs float64 `yaml:"cooldown_secs"`
	MaxAmmo      int     `yaml:"max_ammo"`
	AmmoPerCell  int     `yaml:"ammo_per_cell"`
	OffsetX      float64 `yaml:"offset_x"`
	OffsetY      float64 `yaml:"offset_y"`
}

// BulletsConfig defines projectiles.
type BulletsConfig struct {
	Speed       float64 `yaml:"speed"`
	TTLSecs     float64 `yaml:"ttl_secs"`
	HitRadiusSq float64 `yaml:"hit_radius_sq"`
}

// ItemsConfig defines weapon pickups dropped by enemies.
type ItemsConfig struct {
	DropChance     float64        `yaml:"drop_chance"`
	TTLSecs        float64        `yaml:"ttl_secs"`
	PickupRadiusSq float64        `yaml:"pickup_radius_sq"`
	Weights        map[string]int `yaml:"weights"` // weapon mode name -> weight
}

// SoundConfig defines the synthesized sound cues.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// DifficultyConfig defines how enemy pressure ramps up during a session.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score percent or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed factor at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Fraction of the spawn interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyClassic DifficultyPreset = "classic"
)

// Presets lists every known preset.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyClassic}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyClassic
}
