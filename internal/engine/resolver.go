package engine

import "math/rand"

// MoveResult describes what happened during one movement tick.
type MoveResult struct {
	Ate       bool
	PickedGun bool
	Ended     bool
}

// nextHead computes where the head goes and whether it hit a wall.
func nextHead(head Position, dir Direction, cfg Settings) (Position, bool) {
	p := head.Add(dir)
	if cfg.Walls {
		return p, !cfg.inBounds(p)
	}
	return cfg.wrap(p), false
}

// hitsBody reports whether p lands on a segment other than the tail.
// The tail cell is vacated this tick, so chasing it is legal.
func hitsBody(snake []Position, p Position) bool {
	for i := 0; i < len(snake)-1; i++ {
		if snake[i] == p {
			return true
		}
	}
	return false
}

// endRun marks the state finished and folds the score into the best score.
func endRun(s *State, reason EndReason) {
	s.GameOver = true
	s.Reason = reason
	s.HighScore = max(s.Score, s.HighScore)
}

// Move advances the snake one cell along the committed direction and
// returns the next state. prev is never modified.
func Move(prev State, cfg Settings, rng *rand.Rand) (State, MoveResult) {
	next := prev.Clone()
	var res MoveResult
	if next.GameOver || len(next.Snake) == 0 {
		return next, res
	}

	head, hitWall := nextHead(next.Head(), next.Direction, cfg)
	switch {
	case hitWall:
		endRun(&next, ReasonWall)
		res.Ended = true
		return next, res
	case hitsBody(next.Snake, head):
		endRun(&next, ReasonSelf)
		res.Ended = true
		return next, res
	}

	res.Ate = head == next.Food
	next.Snake = append([]Position{head}, next.Snake...)
	if !res.Ate {
		next.Snake = next.Snake[:len(next.Snake)-1]
	} else {
		next.Score += cfg.FoodReward
		food, ok := placeFood(&next, cfg.GridSize, rng)
		if !ok {
			endRun(&next, ReasonBoardFull)
			res.Ended = true
			return next, res
		}
		next.Food = food
	}

	if cfg.Mode != ModeArmed {
		return next, res
	}

	if res.Ate {
		maybeSpawnGun(&next, cfg, rng)
		maybeSpawnTarget(&next, cfg, rng)
	}
	if gun := next.GunPowerUp; gun != nil && gun.Active && gun.Position == head {
		next.Ammo += gun.Ammo
		next.HasGun = true
		next.GunPowerUp = nil
		res.PickedGun = true
	}
	return next, res
}
