package engine

import "time"

// TimerKind identifies one of the engine's two periodic tasks.
type TimerKind int

const (
	TimerMove TimerKind = iota
	TimerBullet
	timerCount
)

func (k TimerKind) String() string {
	switch k {
	case TimerMove:
		return "move"
	case TimerBullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// Token identifies one scheduled firing. A token whose generation no longer
// matches its timer was cancelled and is ignored by Engine.Tick.
type Token struct {
	Kind TimerKind
	Gen  uint64
}

// Scheduler delivers timer firings. Schedule must arrange for
// Engine.Tick(tok) to be called once, after the given delay, on the same
// goroutine that drives every other engine call. There is no cancel: the
// engine invalidates outstanding tokens itself.
type Scheduler interface {
	Schedule(tok Token, after time.Duration)
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(tok Token, after time.Duration)

// Schedule calls f(tok, after).
func (f SchedulerFunc) Schedule(tok Token, after time.Duration) {
	f(tok, after)
}

// timer tracks one periodic task.
type timer struct {
	gen     uint64
	running bool
}

// stop invalidates every outstanding firing.
func (t *timer) stop() {
	t.gen++
	t.running = false
}

// arm invalidates outstanding firings and returns a fresh token.
func (t *timer) arm(kind TimerKind) Token {
	t.gen++
	t.running = true
	return Token{Kind: kind, Gen: t.gen}
}

// accepts reports whether tok is the live token for this timer.
func (t *timer) accepts(tok Token) bool {
	return t.running && tok.Gen == t.gen
}
