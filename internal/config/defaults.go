package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultHighScoreKey is the storage key of the best score.
const DefaultHighScoreKey = "snakeHighScore"

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size: 20,
		},
		Scoring: ScoringConfig{
			FoodReward:   10,
			HighScoreKey: DefaultHighScoreKey,
		},
		Speed: SpeedConfig{
			Enabled:       true,
			BaseMS:        150,
			MinMS:         60,
			DecrementMS:   10,
			PointsPerStep: 15,
			BulletDivisor: 3,
		},
		Armed: ArmedConfig{
			GunChance:    0.3,
			GunAmmo:      3,
			TargetChance: 0.4,
			MaxTargets:   3,
			TargetPoints: 25,
			TargetHealth: 1,
		},
		Settings: Settings{
			Walls: true,
			Mode:  "classic",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
