// Package engine implements the snake simulation: movement, collisions,
// spawning, the buffered input model and speed scaling.
// It renders nothing and has no terminal dependencies; a host drives it
// through the Scheduler interface and reads it through Snapshot.
package engine

// Position is a cell on the board.
type Position struct {
	X, Y int
}

// Add returns the position offset by one step in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction is a heading on the board.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit offset for the direction. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Mode selects which subsystems are active.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeArmed   Mode = "armed"
)

// ParseMode converts a config/CLI string into a Mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeClassic, "":
		return ModeClassic, true
	case ModeArmed, "guns":
		return ModeArmed, true
	default:
		return ModeClassic, false
	}
}

// GunPowerUp is a pickup that arms the snake.
type GunPowerUp struct {
	Position Position
	Ammo     int
	Active   bool
}

// Bullet travels one cell per projectile tick until it hits something or
// leaves the board.
type Bullet struct {
	Position  Position
	Direction Direction
	Active    bool
}

// Target is a destructible object worth Points when its Health reaches zero.
type Target struct {
	Position Position
	Health   int
	Points   int
	Active   bool
}

// EndReason explains why a run finished.
type EndReason string

const (
	ReasonNone      EndReason = ""
	ReasonWall      EndReason = "wall"
	ReasonSelf      EndReason = "self"
	ReasonBoardFull EndReason = "board_full"
)

// State is the authoritative game state. Ticks never mutate a State in
// place; they build the next one and the engine swaps it in.
type State struct {
	Snake     []Position // head at index 0
	Food      Position
	Direction Direction // committed heading
	GameOver  bool
	Reason    EndReason
	Score     int
	HighScore int

	// Armed mode only.
	HasGun     bool
	Ammo       int
	Bullets    []Bullet
	GunPowerUp *GunPowerUp
	Targets    []Target
}

// Head returns the snake's head.
func (s State) Head() Position {
	return s.Snake[0]
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := s
	c.Snake = append([]Position(nil), s.Snake...)
	c.Bullets = append([]Bullet(nil), s.Bullets...)
	c.Targets = append([]Target(nil), s.Targets...)
	if s.GunPowerUp != nil {
		gun := *s.GunPowerUp
		c.GunPowerUp = &gun
	}
	return c
}

// activeTargets counts targets still on the board.
func (s *State) activeTargets() int {
	n := 0
	for _, t := range s.Targets {
		if t.Active {
			n++
		}
	}
	return n
}

// NewState builds the starting layout for a board of the given size:
// a three-segment snake at the center heading up, food in the upper-left
// quadrant.
func NewState(gridSize, highScore int) State {
	cx, cy := gridSize/2, gridSize/2
	return State{
		Snake: []Position{
			{X: cx, Y: cy},
			{X: cx, Y: cy + 1},
			{X: cx, Y: cy + 2},
		},
		Food:      Position{X: gridSize / 4, Y: gridSize / 4},
		Direction: DirUp,
		HighScore: highScore,
	}
}
