package engine

import "time"

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	GridSize int
	Mode     Mode
	Walls    bool

	Snake     []Position
	Food      Position
	Direction Direction
	Score     int
	HighScore int
	NewBest   bool // run ended above the best score it started with
	GameOver  bool
	Reason    EndReason
	Paused    bool
	Active    bool

	MovePeriod       time.Duration
	ProjectilePeriod time.Duration
	SpeedLevel       int

	HasGun     bool
	Ammo       int
	Bullets    []Bullet
	GunPowerUp *GunPowerUp
	Targets    []Target

	QueuedIntents int
	MoveTicks     uint64
	BulletTicks   uint64
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	s := e.state.Clone()
	return Snapshot{
		GridSize:         e.cfg.GridSize,
		Mode:             e.cfg.Mode,
		Walls:            e.cfg.Walls,
		Snake:            s.Snake,
		Food:             s.Food,
		Direction:        s.Direction,
		Score:            s.Score,
		HighScore:        s.HighScore,
		NewBest:          s.GameOver && s.Score > e.prevBest,
		GameOver:         s.GameOver,
		Reason:           s.Reason,
		Paused:           e.paused,
		Active:           e.active,
		MovePeriod:       e.movePeriod,
		ProjectilePeriod: ProjectilePeriod(e.movePeriod, e.cfg.BulletDivisor),
		SpeedLevel:       e.cfg.Curve.Level(s.Score),
		HasGun:           s.HasGun,
		Ammo:             s.Ammo,
		Bullets:          s.Bullets,
		GunPowerUp:       s.GunPowerUp,
		Targets:          s.Targets,
		QueuedIntents:    e.queue.Len(),
		MoveTicks:        e.moveTicks,
		BulletTicks:      e.bulletTicks,
	}
}

// State returns a deep copy of the authoritative state.
func (e *Engine) State() State {
	return e.state.Clone()
}
