package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// cellWidth is how many terminal columns one board cell takes. Two columns
// make board cells roughly square.
const cellWidth = 2

// hudHeight is the number of lines above the board frame.
const hudHeight = 2

// boardFrame returns the frame size of a grid, border included.
func boardFrame(gridSize int) (w, h int) {
	return gridSize*cellWidth + 2, gridSize + 2
}

// playLayout returns where the board frame goes on a screen, and false when
// the screen cannot fit it.
func playLayout(gridSize, screenW, screenH int) (core.Rect, bool) {
	w, h := boardFrame(gridSize)
	if w > screenW || h+hudHeight+1 > screenH {
		return core.Rect{}, false
	}
	r := core.Centered(w, h+hudHeight, screenW, screenH)
	r.Y += hudHeight
	r.H = h
	return r, true
}

// glyph is how one entity looks on the board.
type glyph struct {
	runes [cellWidth]rune
	color core.Color
}

var (
	glyphHead      = glyph{[cellWidth]rune{'█', '█'}, core.ColorBrightGreen}
	glyphBody      = glyph{[cellWidth]rune{'▓', '▓'}, core.ColorGreen}
	glyphDead      = glyph{[cellWidth]rune{'▓', '▓'}, core.ColorGray}
	glyphFood      = glyph{[cellWidth]rune{'●', ' '}, core.ColorRed}
	glyphGun       = glyph{[cellWidth]rune{'╤', '═'}, core.ColorYellow}
	glyphBullet    = glyph{[cellWidth]rune{'•', ' '}, core.ColorBrightYellow}
	glyphTarget    = glyph{[cellWidth]rune{'◎', ' '}, core.ColorMagenta}
	glyphTargetHit = glyph{[cellWidth]rune{'◎', ' '}, core.ColorOrange}
)

// drawCell paints a glyph at board position p inside frame.
func drawCell(s *core.Screen, frame core.Rect, p engine.Position, g glyph) {
	inner := frame.Inset(1)
	x := inner.X + p.X*cellWidth
	y := inner.Y + p.Y
	for i, r := range g.runes {
		if inner.Contains(x+i, y) {
			s.Set(x+i, y, r, g.color)
		}
	}
}

// drawBoard paints the frame and every entity of a snapshot. Later layers
// win: targets, power-up, food, snake, then bullets on top.
func drawBoard(s *core.Screen, frame core.Rect, snap engine.Snapshot) {
	border := core.ColorWhite
	if !snap.Walls {
		border = core.ColorGray
	}
	s.DrawBox(frame, border)
	if !snap.Walls {
		// Dotted edges mark a wrapping board.
		for x := frame.X + 2; x < frame.Right()-1; x += 2 {
			s.Set(x, frame.Y, '┄', border)
			s.Set(x, frame.Bottom()-1, '┄', border)
		}
	}

	for _, t := range snap.Targets {
		g := glyphTarget
		if t.Health > 1 {
			g = glyphTargetHit
		}
		drawCell(s, frame, t.Position, g)
	}
	if snap.GunPowerUp != nil && snap.GunPowerUp.Active {
		drawCell(s, frame, snap.GunPowerUp.Position, glyphGun)
	}
	drawCell(s, frame, snap.Food, glyphFood)

	for i := len(snap.Snake) - 1; i >= 0; i-- {
		g := glyphBody
		switch {
		case snap.GameOver:
			g = glyphDead
		case i == 0:
			g = glyphHead
		}
		drawCell(s, frame, snap.Snake[i], g)
	}

	for _, b := range snap.Bullets {
		drawCell(s, frame, b.Position, glyphBullet)
	}
}

// hudLine formats the status line shown above the board.
func hudLine(snap engine.Snapshot) string {
	parts := []string{
		fmt.Sprintf("SCORE %d", snap.Score),
		fmt.Sprintf("BEST %d", snap.HighScore),
		fmt.Sprintf("SPEED %dms L%d", snap.MovePeriod.Milliseconds(), snap.SpeedLevel),
	}
	if snap.Mode == engine.ModeArmed {
		parts = append(parts, fmt.Sprintf("AMMO %d", snap.Ammo))
	}
	return strings.Join(parts, "   ")
}

// modeLine names the rules in play.
func modeLine(snap engine.Snapshot) string {
	walls := "walls"
	if !snap.Walls {
		walls = "wrap"
	}
	return fmt.Sprintf("%s / %s", strings.ToUpper(string(snap.Mode)), walls)
}

// overlay is a centered dialog drawn over the board.
type overlay struct {
	title   string
	lines   []string
	options []string
	cursor  int
}

// drawOverlay paints o centered on frame.
func drawOverlay(s *core.Screen, frame core.Rect, o overlay) {
	w := len([]rune(o.title)) + 4
	for _, l := range o.lines {
		w = max(w, len([]rune(l))+4)
	}
	for _, opt := range o.options {
		w = max(w, len([]rune(opt))+6)
	}
	h := len(o.lines) + len(o.options) + 4
	if len(o.lines) > 0 && len(o.options) > 0 {
		h++
	}

	cx, cy := frame.Center()
	box := core.NewRect(cx-w/2, cy-h/2, w, h)
	s.FillRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorCyan)

	y := box.Y + 1
	drawCentered(s, box, y, o.title, core.ColorBrightYellow)
	y += 2
	for _, l := range o.lines {
		drawCentered(s, box, y, l, core.ColorWhite)
		y++
	}
	if len(o.lines) > 0 && len(o.options) > 0 {
		y++
	}
	for i, opt := range o.options {
		label, c := "  "+opt+"  ", core.ColorDefault
		if i == o.cursor {
			label, c = "> "+opt+" <", core.ColorBrightGreen
		}
		drawCentered(s, box, y, label, c)
		y++
	}
}

// drawCentered writes text centered inside box on row y.
func drawCentered(s *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := box.X + (box.W-len([]rune(text)))/2
	s.DrawText(x, y, text, c)
}
