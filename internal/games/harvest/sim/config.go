package sim

import (
	"math"
	"time"
)

// LevelMode selects how initial crop levels are assigned.
type LevelMode string

const (
	LevelsNoise LevelMode = "noise" // coherent noise of the cell coordinates
	LevelsFlat  LevelMode = "flat"  // every cell starts at level 1
)

// Config holds every tunable of the simulation. Durations are wall-clock
// time; distances are in grid cells.
type Config struct {
	Width, Height int

	Levels       LevelMode
	LayoutSeed   int64 // 0 = derive from the session seed
	Growth       bool
	GrowthBase   time.Duration
	GrowthSpread time.Duration

	CombineSpeed float64 // cells per second

	SpawnInterval time.Duration
	EnemySpeed    float64
	HitRadiusSq   float64

	Cooldown     time.Duration
	MaxAmmo      int
	AmmoPerCell  int
	TurretOffset [2]float64

	BulletSpeed       float64
	BulletTTL         time.Duration
	BulletHitRadiusSq float64

	DropChance     float64
	ItemTTL        time.Duration
	PickupRadiusSq float64
	DropWeights    map[WeaponMode]int
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		Width:  31,
		Height: 15,

		Levels:       LevelsNoise,
		Growth:       true,
		GrowthBase:   8 * time.Second,
		GrowthSpread: 8 * time.Second,

		CombineSpeed: 2,

		SpawnInterval: 500 * time.Millisecond,
		EnemySpeed:    3,
		HitRadiusSq:   0.1,

		Cooldown:    200 * time.Millisecond,
		MaxAmmo:     20,
		AmmoPerCell: 1,

		BulletSpeed:       12,
		BulletTTL:         5 * time.Second,
		BulletHitRadiusSq: 0.25,

		DropChance:     0.1,
		ItemTTL:        8 * time.Second,
		PickupRadiusSq: 0.36,
		DropWeights: map[WeaponMode]int{
			ModeFast:    30,
			ModeShotgun: 25,
			ModeSplit:   25,
			ModeReverse: 10,
			ModeNuke:    10,
		},
	}
}

// Timer bounds. A period outside them would overflow time.Duration or
// complete on every tick.
const (
	minPeriod     = time.Millisecond
	maxStepPeriod = time.Hour
)

// stepPeriod returns the time the combine spends crossing one cell.
func (c Config) stepPeriod() time.Duration {
	if c.CombineSpeed <= 0 || math.IsNaN(c.CombineSpeed) {
		return time.Second
	}
	p := float64(time.Second) / c.CombineSpeed
	if p > float64(maxStepPeriod) {
		return maxStepPeriod
	}
	return max(time.Duration(p), minPeriod)
}

// spawnPeriod returns the spawn interval, never shorter than minPeriod.
func spawnPeriod(d time.Duration) time.Duration {
	return max(d, minPeriod)
}
