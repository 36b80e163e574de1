package engine

import (
	"testing"
	"time"
)

// scheduled is one recorded Schedule call.
type scheduled struct {
	tok   Token
	after time.Duration
}

// fakeScheduler records requests; tests fire them by hand.
type fakeScheduler struct {
	calls []scheduled
}

func (f *fakeScheduler) Schedule(tok Token, after time.Duration) {
	f.calls = append(f.calls, scheduled{tok: tok, after: after})
}

// last returns the most recent request for kind.
func (f *fakeScheduler) last(t *testing.T, kind TimerKind) scheduled {
	t.Helper()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].tok.Kind == kind {
			return f.calls[i]
		}
	}
	t.Fatalf("no %s timer scheduled", kind)
	return scheduled{}
}

// count returns how many requests were made for kind.
func (f *fakeScheduler) count(kind TimerKind) int {
	n := 0
	for _, c := range f.calls {
		if c.tok.Kind == kind {
			n++
		}
	}
	return n
}

// fire delivers the most recent token for kind.
func (f *fakeScheduler) fire(t *testing.T, e *Engine, kind TimerKind) bool {
	t.Helper()
	return e.Tick(f.last(t, kind).tok)
}

// testSettings returns default rules with spawning disabled so tests
// control the board completely.
func testSettings(mode Mode) Settings {
	cfg := DefaultSettings()
	cfg.Mode = mode
	cfg.GunChance = 0
	cfg.TargetChance = 0
	return cfg
}

func newTestEngine(t *testing.T, cfg Settings, opts ...Option) (*Engine, *fakeScheduler) {
	t.Helper()
	sched := &fakeScheduler{}
	opts = append([]Option{WithSeed(42)}, opts...)
	return New(cfg, sched, opts...), sched
}

// place swaps in a hand-built state, keeping the direction trackers in sync.
func place(e *Engine, s State) {
	e.state = s
	e.lastApplied = s.Direction
}
