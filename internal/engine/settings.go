package engine

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Settings are the per-run tunables of the simulation.
type Settings struct {
	GridSize   int
	Walls      bool // true: leaving the board ends the run; false: wrap
	Mode       Mode
	FoodReward int
	Curve      Curve

	// BulletDivisor sets the projectile period as a fraction of the
	// movement period.
	BulletDivisor int

	GunChance    float64
	GunAmmo      int
	TargetChance float64
	MaxTargets   int
	TargetPoints int
	TargetHealth int
}

// DefaultSettings returns the stock rules: 20x20 board, walls on, classic.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultSnakeConfig())
}

// SettingsFromConfig converts a loaded config into engine settings.
func SettingsFromConfig(cfg config.SnakeConfig) Settings {
	mode, _ := ParseMode(cfg.Settings.Mode)
	return Settings{
		GridSize:   cfg.Grid.Size,
		Walls:      cfg.Settings.Walls,
		Mode:       mode,
		FoodReward: cfg.Scoring.FoodReward,
		Curve: Curve{
			Base:      time.Duration(cfg.Speed.BaseMS) * time.Millisecond,
			Min:       time.Duration(cfg.Speed.MinMS) * time.Millisecond,
			Decrement: time.Duration(cfg.Speed.DecrementMS) * time.Millisecond,
			Step:      cfg.Speed.PointsPerStep,
			Enabled:   cfg.Speed.Enabled,
		},
		BulletDivisor: cfg.Speed.BulletDivisor,
		GunChance:     cfg.Armed.GunChance,
		GunAmmo:       cfg.Armed.GunAmmo,
		TargetChance:  cfg.Armed.TargetChance,
		MaxTargets:    cfg.Armed.MaxTargets,
		TargetPoints:  cfg.Armed.TargetPoints,
		TargetHealth:  cfg.Armed.TargetHealth,
	}
}

// inBounds reports whether p lies on the board.
func (s Settings) inBounds(p Position) bool {
	return p.X >= 0 && p.X < s.GridSize && p.Y >= 0 && p.Y < s.GridSize
}

// wrap folds p back onto the board on every axis.
func (s Settings) wrap(p Position) Position {
	n := s.GridSize
	return Position{X: ((p.X % n) + n) % n, Y: ((p.Y % n) + n) % n}
}
