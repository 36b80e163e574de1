package engine

// BulletResult describes what happened during one projectile tick.
type BulletResult struct {
	Hits      int
	Destroyed int
	Points    int
}

// Fire spawns a bullet at the head along the committed heading.
// It reports false, returning prev unchanged, when the snake cannot shoot.
func Fire(prev State) (State, bool) {
	if prev.GameOver || !prev.HasGun || prev.Ammo <= 0 || len(prev.Snake) == 0 {
		return prev, false
	}
	next := prev.Clone()
	next.Bullets = append(next.Bullets, Bullet{
		Position:  next.Head(),
		Direction: next.Direction,
		Active:    true,
	})
	next.Ammo--
	if next.Ammo <= 0 {
		next.Ammo = 0
		next.HasGun = false
	}
	return next, true
}

// AdvanceBullets moves every active bullet one cell and resolves hits.
// Bullets never wrap. Hitting the snake body absorbs the bullet without
// penalty; the head is exempt since bullets leave from it.
func AdvanceBullets(prev State, cfg Settings) (State, BulletResult) {
	next := prev.Clone()
	var res BulletResult
	if next.GameOver || len(next.Bullets) == 0 {
		return next, res
	}

	for i := range next.Bullets {
		b := &next.Bullets[i]
		if !b.Active {
			continue
		}
		b.Position = b.Position.Add(b.Direction)
		if !cfg.inBounds(b.Position) {
			b.Active = false
			continue
		}

		if t := activeTargetAt(next.Targets, b.Position); t != nil {
			b.Active = false
			res.Hits++
			t.Health--
			if t.Health <= 0 {
				t.Active = false
				next.Score += t.Points
				res.Destroyed++
				res.Points += t.Points
			}
			continue
		}

		for _, seg := range next.Snake[1:] {
			if seg == b.Position {
				b.Active = false
				break
			}
		}
	}

	next.Bullets = pruneBullets(next.Bullets)
	next.Targets = pruneTargets(next.Targets)
	return next, res
}

func activeTargetAt(targets []Target, p Position) *Target {
	for i := range targets {
		if targets[i].Active && targets[i].Position == p {
			return &targets[i]
		}
	}
	return nil
}

func pruneBullets(bullets []Bullet) []Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		if b.Active {
			kept = append(kept, b)
		}
	}
	return kept
}

func pruneTargets(targets []Target) []Target {
	kept := targets[:0]
	for _, t := range targets {
		if t.Active {
			kept = append(kept, t)
		}
	}
	return kept
}
