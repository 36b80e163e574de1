package engine

import "math/rand"

// occupancy marks blocked cells on a square board.
type occupancy struct {
	size  int
	cells []bool
}

func newOccupancy(size int) *occupancy {
	return &occupancy{size: size, cells: make([]bool, size*size)}
}

func (o *occupancy) block(p Position) {
	if p.X < 0 || p.X >= o.size || p.Y < 0 || p.Y >= o.size {
		return
	}
	o.cells[p.Y*o.size+p.X] = true
}

// pick returns a uniformly random free cell, or false when the board is full.
// The free set is built once per placement, so this never retries.
func (o *occupancy) pick(rng *rand.Rand) (Position, bool) {
	free := make([]Position, 0, len(o.cells))
	for i, taken := range o.cells {
		if !taken {
			free = append(free, Position{X: i % o.size, Y: i / o.size})
		}
	}
	if len(free) == 0 {
		return Position{}, false
	}
	return free[rng.Intn(len(free))], true
}

// placeFood picks a cell not covered by the snake.
func placeFood(s *State, size int, rng *rand.Rand) (Position, bool) {
	occ := newOccupancy(size)
	for _, seg := range s.Snake {
		occ.block(seg)
	}
	return occ.pick(rng)
}

// placeGun picks a cell clear of the snake and the food.
func placeGun(s *State, size int, rng *rand.Rand) (Position, bool) {
	occ := newOccupancy(size)
	for _, seg := range s.Snake {
		occ.block(seg)
	}
	occ.block(s.Food)
	return occ.pick(rng)
}

// placeTarget picks a cell clear of the snake, the food, the live gun
// power-up and every active target.
func placeTarget(s *State, size int, rng *rand.Rand) (Position, bool) {
	occ := newOccupancy(size)
	for _, seg := range s.Snake {
		occ.block(seg)
	}
	occ.block(s.Food)
	if s.GunPowerUp != nil && s.GunPowerUp.Active {
		occ.block(s.GunPowerUp.Position)
	}
	for _, t := range s.Targets {
		if t.Active {
			occ.block(t.Position)
		}
	}
	return occ.pick(rng)
}

// maybeSpawnGun rolls for a gun power-up. Only one may be live at a time.
func maybeSpawnGun(s *State, cfg Settings, rng *rand.Rand) {
	if s.GunPowerUp != nil && s.GunPowerUp.Active {
		return
	}
	if rng.Float64() >= cfg.GunChance {
		return
	}
	pos, ok := placeGun(s, cfg.GridSize, rng)
	if !ok {
		return
	}
	s.GunPowerUp = &GunPowerUp{Position: pos, Ammo: cfg.GunAmmo, Active: true}
}

// maybeSpawnTarget rolls for a target while under the active cap.
func maybeSpawnTarget(s *State, cfg Settings, rng *rand.Rand) {
	if s.activeTargets() >= cfg.MaxTargets {
		return
	}
	if rng.Float64() >= cfg.TargetChance {
		return
	}
	pos, ok := placeTarget(s, cfg.GridSize, rng)
	if !ok {
		return
	}
	health := cfg.TargetHealth
	if health < 1 {
		health = 1
	}
	s.Targets = append(s.Targets, Target{
		Position: pos,
		Health:   health,
		Points:   cfg.TargetPoints,
		Active:   true,
	})
}
