package engine

import "time"

// Curve maps a score to the movement tick period.
// The period drops by Decrement for every Step points and never goes below
// Min. A disabled curve always returns Base.
type Curve struct {
	Base      time.Duration
	Min       time.Duration
	Decrement time.Duration
	Step      int
	Enabled   bool
}

// MovePeriod returns the movement tick period for the given score.
func (c Curve) MovePeriod(score int) time.Duration {
	if !c.Enabled || c.Step <= 0 || score <= 0 {
		return c.clampMin(c.Base)
	}
	steps := score / c.Step
	return c.clampMin(c.Base - time.Duration(steps)*c.Decrement)
}

// ProjectilePeriod returns the bullet tick period for a movement period.
func ProjectilePeriod(movePeriod time.Duration, divisor int) time.Duration {
	if divisor <= 1 {
		return movePeriod
	}
	return movePeriod / time.Duration(divisor)
}

// Level returns how many speed steps the score has earned, for display.
func (c Curve) Level(score int) int {
	if c.Decrement <= 0 {
		return 0
	}
	return int((c.Base - c.MovePeriod(score)) / c.Decrement)
}

func (c Curve) clampMin(p time.Duration) time.Duration {
	if p < c.Min {
		return c.Min
	}
	return p
}
