package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset returns the preset for a flag value. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return DifficultyNormal, false
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched; easy and hard turn the
// speed curve on.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Speed.Enabled = false
	case DifficultyEasy:
		cfg.Speed.Enabled = true
		cfg.Speed.BaseMS += 40
		cfg.Speed.DecrementMS = max(cfg.Speed.DecrementMS/2, 1)
		cfg.Armed.GunChance = min(cfg.Armed.GunChance*1.5, 1)
	case DifficultyHard:
		cfg.Speed.Enabled = true
		cfg.Speed.BaseMS = max(cfg.Speed.BaseMS-40, cfg.Speed.MinMS)
		cfg.Speed.PointsPerStep = max(cfg.Speed.PointsPerStep-5, 1)
		cfg.Armed.GunChance /= 2
	}
}
