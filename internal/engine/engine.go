package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Engine owns one game: its state, the input queue and both timers.
// It is not safe for concurrent use; the host calls every method, Tick
// included, from a single goroutine.
type Engine struct {
	cfg      Settings
	rng      *rand.Rand
	sched    Scheduler
	store    HighScoreStore
	logger   *log.Logger
	observer func(Snapshot)

	state       State
	queue       InputQueue
	lastApplied Direction
	prevBest    int // best score when the run started

	active     bool
	paused     bool
	movePeriod time.Duration
	timers     [timerCount]timer

	moveTicks   uint64
	bulletTicks uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the engine's random source.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithHighScoreStore sets where the best score is read and written.
func WithHighScoreStore(store HighScoreStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithObserver registers a callback invoked after every state change.
func WithObserver(fn func(Snapshot)) Option {
	return func(e *Engine) {
		e.observer = fn
	}
}

// New creates an idle engine. Nothing is scheduled until ResetGame.
func New(cfg Settings, sched Scheduler, opts ...Option) *Engine {
	e := &Engine{
		cfg:   cfg,
		sched: sched,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.store == nil {
		e.store = &MemoryHighScore{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	best := e.loadHighScore()
	e.state = NewState(cfg.GridSize, best)
	e.prevBest = best
	e.lastApplied = e.state.Direction
	e.movePeriod = cfg.Curve.MovePeriod(0)
	return e
}

// Settings returns the rules the engine runs with.
func (e *Engine) Settings() Settings {
	return e.cfg
}

// ResetGame starts a fresh run: new state, empty queue, base speed,
// unpaused and active.
func (e *Engine) ResetGame() {
	best := e.loadHighScore()
	e.state = NewState(e.cfg.GridSize, best)
	e.prevBest = best
	e.queue.Clear()
	e.lastApplied = e.state.Direction
	e.movePeriod = e.cfg.Curve.MovePeriod(0)
	e.moveTicks = 0
	e.bulletTicks = 0
	e.paused = false
	e.active = true

	e.stopTimers()
	e.syncTimers()
	e.logger.Debug("game reset", "mode", e.cfg.Mode, "walls", e.cfg.Walls, "best", best)
	e.notify()
}

// TogglePause flips the pause flag. It does nothing once the run is over.
func (e *Engine) TogglePause() {
	if e.state.GameOver {
		return
	}
	e.paused = !e.paused
	e.syncTimers()
	e.notify()
}

// SetActive marks whether the play screen is showing. Timers only run while
// the engine is active.
func (e *Engine) SetActive(active bool) {
	if e.active == active {
		return
	}
	e.active = active
	e.syncTimers()
	e.notify()
}

// Enqueue buffers a direction intent. Intents queued while paused or
// inactive apply once the move timer runs again; after game over they are
// ignored. Reports whether the intent was queued.
func (e *Engine) Enqueue(d Direction) bool {
	if e.state.GameOver {
		return false
	}
	return e.queue.Enqueue(d, e.state.Direction)
}

// Shoot fires a bullet in armed mode. Reports whether a bullet was fired.
func (e *Engine) Shoot() bool {
	if e.cfg.Mode != ModeArmed || !e.running() {
		return false
	}
	next, ok := Fire(e.state)
	if !ok {
		return false
	}
	e.state = next
	e.notify()
	return true
}

// Tick handles a timer firing. Stale or cancelled tokens are ignored.
// Reports whether the token was live.
func (e *Engine) Tick(tok Token) bool {
	if tok.Kind < 0 || tok.Kind >= timerCount || !e.timers[tok.Kind].accepts(tok) {
		return false
	}

	switch tok.Kind {
	case TimerMove:
		e.moveTick()
	case TimerBullet:
		e.bulletTick()
	}

	// Re-arm unless the tick itself rescheduled or stopped the timer.
	if e.timers[tok.Kind].accepts(tok) {
		e.sched.Schedule(tok, e.period(tok.Kind))
	}
	e.notify()
	return true
}

func (e *Engine) moveTick() {
	e.moveTicks++
	cur := e.state
	if d, ok := e.queue.Next(e.lastApplied); ok {
		cur.Direction = d
		e.lastApplied = d
	}

	next, res := Move(cur, e.cfg, e.rng)
	e.state = next

	if res.Ended {
		e.finish()
		return
	}
	if res.PickedGun {
		e.logger.Debug("gun picked up", "ammo", next.Ammo)
	}
	if res.Ate {
		e.retime()
	}
}

func (e *Engine) bulletTick() {
	e.bulletTicks++
	next, res := AdvanceBullets(e.state, e.cfg)
	e.state = next
	if res.Destroyed > 0 {
		e.logger.Debug("target destroyed", "count", res.Destroyed, "points", res.Points)
		e.retime()
	}
}

// finish handles the end of a run: timers stop and a new best is persisted.
func (e *Engine) finish() {
	e.stopTimers()
	e.queue.Clear()
	e.logger.Info("game over",
		"score", e.state.Score,
		"best", e.state.HighScore,
		"reason", e.state.Reason,
		"length", len(e.state.Snake),
	)
	if e.state.Score <= e.prevBest {
		return
	}
	if err := e.store.SaveHighScore(e.state.HighScore); err != nil {
		e.logger.Warn("could not save high score", "score", e.state.HighScore, "error", err)
	}
}

// retime recomputes the movement period from the score. A changed period
// tears down and reschedules both timers together.
func (e *Engine) retime() {
	p := e.cfg.Curve.MovePeriod(e.state.Score)
	if p == e.movePeriod {
		return
	}
	e.logger.Debug("speed changed", "from", e.movePeriod, "to", p, "score", e.state.Score)
	e.movePeriod = p
	if e.running() {
		e.stopTimers()
		e.startTimers()
	}
}

// running reports whether timers should be live.
func (e *Engine) running() bool {
	return e.active && !e.paused && !e.state.GameOver
}

// syncTimers starts or stops both timers to match running().
func (e *Engine) syncTimers() {
	want := e.running()
	live := e.timers[TimerMove].running
	switch {
	case want && !live:
		e.startTimers()
	case !want && live:
		e.stopTimers()
	}
}

func (e *Engine) startTimers() {
	tok := e.timers[TimerMove].arm(TimerMove)
	e.sched.Schedule(tok, e.movePeriod)
	if e.cfg.Mode == ModeArmed {
		tok = e.timers[TimerBullet].arm(TimerBullet)
		e.sched.Schedule(tok, e.period(TimerBullet))
	}
}

func (e *Engine) stopTimers() {
	for i := range e.timers {
		e.timers[i].stop()
	}
}

func (e *Engine) period(kind TimerKind) time.Duration {
	if kind == TimerBullet {
		return ProjectilePeriod(e.movePeriod, e.cfg.BulletDivisor)
	}
	return e.movePeriod
}

func (e *Engine) loadHighScore() int {
	best, err := e.store.LoadHighScore()
	if err != nil {
		e.logger.Warn("could not load high score", "error", err)
		return e.state.HighScore
	}
	return max(best, 0)
}

func (e *Engine) notify() {
	if e.observer != nil {
		e.observer(e.Snapshot())
	}
}
