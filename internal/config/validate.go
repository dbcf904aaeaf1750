package config

import (
	"errors"
	"fmt"
)

var validModes = map[string]bool{
	"base": true, "fast": true, "shotgun": true,
	"split": true, "reverse": true, "nuke": true,
}

// Lower bounds that keep the step and spawn timers meaningful.
const (
	minCombineSpeed = 0.01  // cells per second
	minSpawnSecs    = 0.001 // one spawn per millisecond
)

// Validate reports every problem in the configuration at once.
func (c HarvestConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width >= 3, "field.width must be at least 3, got %d", c.Field.Width)
	check(c.Field.Height >= 3, "field.height must be at least 3, got %d", c.Field.Height)

	switch c.Crops.InitialLevels {
	case "noise", "flat":
	default:
		errs = append(errs, fmt.Errorf("crops.initial_levels must be noise or flat, got %q", c.Crops.InitialLevels))
	}
	if c.Crops.Growth.Enabled {
		check(c.Crops.Growth.BaseSecs > 0, "crops.growth.base_secs must be positive")
		check(c.Crops.Growth.SpreadSecs >= 0, "crops.growth.spread_secs must not be negative")
	}

	check(c.Combine.Speed >= minCombineSpeed, "combine.speed must be at least %v, got %v", minCombineSpeed, c.Combine.Speed)

	check(c.Enemies.SpawnIntervalSecs >= minSpawnSecs, "enemies.spawn_interval_secs must be at least %v, got %v", minSpawnSecs, c.Enemies.SpawnIntervalSecs)
	check(c.Enemies.Speed >= 0, "enemies.speed must not be negative")
	check(c.Enemies.HitRadiusSq > 0, "enemies.hit_radius_sq must be positive")

	check(c.Turret.CooldownSecs >= 0, "turret.cooldown_secs must not be negative")
	check(c.Turret.MaxAmmo > 0, "turret.max_ammo must be positive")
	check(c.Turret.AmmoPerCell >= 0, "turret.ammo_per_cell must not be negative")

	check(c.Bullets.Speed > 0, "bullets.speed must be positive")
	check(c.Bullets.TTLSecs > 0, "bullets.ttl_secs must be positive")
	check(c.Bullets.HitRadiusSq > 0, "bullets.hit_radius_sq must be positive")

	check(c.Items.DropChance >= 0 && c.Items.DropChance <= 1, "items.drop_chance must be within [0, 1], got %v", c.Items.DropChance)
	check(c.Items.TTLSecs > 0, "items.ttl_secs must be positive")
	check(c.Items.PickupRadiusSq > 0, "items.pickup_radius_sq must be positive")
	for name, w := range c.Items.Weights {
		check(validModes[name], "items.weights: unknown weapon mode %q", name)
		check(w >= 0, "items.weights.%s must not be negative", name)
	}

	check(c.Difficulty.InitialLevel >= 0 && c.Difficulty.InitialLevel <= 1, "difficulty.initial_level must be within [0, 1]")
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type must be score, time or none, got %q", c.Difficulty.Progression.Type))
	}
	check(c.Sound.Volume >= 0 && c.Sound.Volume <= 1, "sound.volume must be within [0, 1], got %v", c.Sound.Volume)
	check(c.Difficulty.Scaling.SpawnReduction >= 0 && c.Difficulty.Scaling.SpawnReduction < 1, "difficulty.scaling.spawn_reduction must be within [0, 1)")

	return errors.Join(errs...)
}
