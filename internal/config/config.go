// Package config provides YAML-based configuration loading and difficulty
// presets for the snake engine.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid     GridConfig    `yaml:"grid"`
	Scoring  ScoringConfig `yaml:"scoring"`
	Speed    SpeedConfig   `yaml:"speed"`
	Armed    ArmedConfig   `yaml:"armed"`
	Settings Settings      `yaml:"settings"`
}

// GridConfig defines the board.
type GridConfig struct {
	Size int `yaml:"size"`
}

// ScoringConfig defines points and the best-score key.
type ScoringConfig struct {
	FoodReward   int    `yaml:"food_reward"`
	HighScoreKey string `yaml:"high_score_key"`
}

// SpeedConfig defines the movement period curve.
type SpeedConfig struct {
	Enabled       bool `yaml:"enabled"`
	BaseMS        int  `yaml:"base_ms"`
	MinMS         int  `yaml:"min_ms"`
	DecrementMS   int  `yaml:"decrement_ms"`
	PointsPerStep int  `yaml:"points_per_step"`
	BulletDivisor int  `yaml:"bullet_divisor"` // projectile period = move period / divisor
}

// ArmedConfig defines power-up and target spawning for armed mode.
type ArmedConfig struct {
	GunChance    float64 `yaml:"gun_chance"`
	GunAmmo      int     `yaml:"gun_ammo"`
	TargetChance float64 `yaml:"target_chance"`
	MaxTargets   int     `yaml:"max_targets"`
	TargetPoints int     `yaml:"target_points"`
	TargetHealth int     `yaml:"target_health"`
}

// Settings are the player-facing options.
type Settings struct {
	Walls bool   `yaml:"walls"`
	Mode  string `yaml:"mode"` // "classic" or "armed"
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Size < 8:
		return fmt.Errorf("%w: grid.size must be at least 8, got %d", ErrInvalidConfig, c.Grid.Size)
	case c.Scoring.FoodReward <= 0:
		return fmt.Errorf("%w: scoring.food_reward must be positive", ErrInvalidConfig)
	case c.Speed.BaseMS <= 0:
		return fmt.Errorf("%w: speed.base_ms must be positive", ErrInvalidConfig)
	case c.Speed.MinMS <= 0 || c.Speed.MinMS > c.Speed.BaseMS:
		return fmt.Errorf("%w: speed.min_ms must be in (0, base_ms]", ErrInvalidConfig)
	case c.Speed.DecrementMS < 0:
		return fmt.Errorf("%w: speed.decrement_ms must not be negative", ErrInvalidConfig)
	case c.Speed.PointsPerStep <= 0:
		return fmt.Errorf("%w: speed.points_per_step must be positive", ErrInvalidConfig)
	case c.Speed.BulletDivisor < 1 || c.Speed.BulletDivisor > c.Speed.MinMS:
		return fmt.Errorf("%w: speed.bullet_divisor must be in [1, min_ms]", ErrInvalidConfig)
	case c.Armed.GunChance < 0 || c.Armed.GunChance > 1:
		return fmt.Errorf("%w: armed.gun_chance must be in [0, 1]", ErrInvalidConfig)
	case c.Armed.TargetChance < 0 || c.Armed.TargetChance > 1:
		return fmt.Errorf("%w: armed.target_chance must be in [0, 1]", ErrInvalidConfig)
	case c.Armed.GunAmmo <= 0:
		return fmt.Errorf("%w: armed.gun_ammo must be positive", ErrInvalidConfig)
	case c.Armed.MaxTargets < 0:
		return fmt.Errorf("%w: armed.max_targets must not be negative", ErrInvalidConfig)
	}
	switch c.Settings.Mode {
	case "", "classic", "armed":
	default:
		return fmt.Errorf("%w: settings.mode must be classic or armed, got %q", ErrInvalidConfig, c.Settings.Mode)
	}
	return nil
}
