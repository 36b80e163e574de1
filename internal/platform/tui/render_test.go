package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

func testSnapshot() engine.Snapshot {
	return engine.Snapshot{
		GridSize:   10,
		Mode:       engine.ModeClassic,
		Walls:      true,
		Snake:      []engine.Position{{X: 2, Y: 2}, {X: 2, Y: 3}},
		Food:       engine.Position{X: 5, Y: 5},
		Score:      40,
		HighScore:  90,
		MovePeriod: 130 * time.Millisecond,
		SpeedLevel: 2,
	}
}

func TestDrawBoard(t *testing.T) {
	s := core.NewScreen(30, 14)
	frame := core.NewRect(0, 0, 22, 12)

	drawBoard(s, frame, testSnapshot())

	if s.Get(0, 0) != '┌' || s.Get(21, 11) != '┘' {
		t.Error("board frame not drawn")
	}
	head := s.GetCell(1+2*cellWidth, 1+2)
	if head.Rune != '█' || head.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v", head)
	}
	body := s.GetCell(1+2*cellWidth, 1+3)
	if body.Rune != '▓' || body.Color != core.ColorGreen {
		t.Errorf("body cell = %+v", body)
	}
	if food := s.GetCell(1+5*cellWidth, 1+5); food.Rune != '●' {
		t.Errorf("food cell = %+v", food)
	}
}

func TestDrawBoardArmedEntities(t *testing.T) {
	snap := testSnapshot()
	snap.Mode = engine.ModeArmed
	snap.GunPowerUp = &engine.GunPowerUp{Position: engine.Position{X: 7, Y: 1}, Ammo: 3, Active: true}
	snap.Targets = []engine.Target{{Position: engine.Position{X: 8, Y: 8}, Health: 1, Points: 25, Active: true}}
	snap.Bullets = []engine.Bullet{{Position: engine.Position{X: 2, Y: 0}, Direction: engine.DirUp, Active: true}}

	s := core.NewScreen(30, 14)
	drawBoard(s, core.NewRect(0, 0, 22, 12), snap)

	if s.Get(1+7*cellWidth, 2) != '╤' {
		t.Error("gun power-up not drawn")
	}
	if s.Get(1+8*cellWidth, 9) != '◎' {
		t.Error("target not drawn")
	}
	if s.Get(1+2*cellWidth, 1) != '•' {
		t.Error("bullet not drawn")
	}
}

func TestDrawCellStaysInsideFrame(t *testing.T) {
	s := core.NewScreen(30, 14)
	frame := core.NewRect(0, 0, 22, 12)
	s.DrawBox(frame, core.ColorWhite)

	drawCell(s, frame, engine.Position{X: 10, Y: 0}, glyph{runes: [cellWidth]rune{'•', '•'}, color: core.ColorRed})
	drawCell(s, frame, engine.Position{X: 0, Y: 10}, glyph{runes: [cellWidth]rune{'•', '•'}, color: core.ColorRed})

	if s.Get(21, 1) != '│' {
		t.Errorf("right border overwritten with %q", s.Get(21, 1))
	}
	if s.Get(1, 11) != '─' {
		t.Errorf("bottom border overwritten with %q", s.Get(1, 11))
	}
}

func TestDrawBoardWrapBorder(t *testing.T) {
	snap := testSnapshot()
	snap.Walls = false

	s := core.NewScreen(30, 14)
	drawBoard(s, core.NewRect(0, 0, 22, 12), snap)

	if s.Get(2, 0) != '┄' {
		t.Errorf("wrap border = %q, expected dotted", s.Get(2, 0))
	}
	if s.GetCell(0, 0).Color != core.ColorGray {
		t.Error("wrap border should be gray")
	}
}

func TestDrawBoardGameOver(t *testing.T) {
	snap := testSnapshot()
	snap.GameOver = true

	s := core.NewScreen(30, 14)
	drawBoard(s, core.NewRect(0, 0, 22, 12), snap)

	if c := s.GetCell(1+2*cellWidth, 3); c.Color != core.ColorGray {
		t.Errorf("dead head color = %d, expected gray", c.Color)
	}
}

func TestHUDLine(t *testing.T) {
	snap := testSnapshot()
	line := hudLine(snap)
	for _, want := range []string{"SCORE 40", "BEST 90", "130ms", "L2"} {
		if !strings.Contains(line, want) {
			t.Errorf("hudLine() = %q, missing %q", line, want)
		}
	}
	if strings.Contains(line, "AMMO") {
		t.Error("classic HUD should not show ammo")
	}

	snap.Mode = engine.ModeArmed
	snap.Ammo = 2
	if line := hudLine(snap); !strings.Contains(line, "AMMO 2") {
		t.Errorf("armed hudLine() = %q, missing ammo", line)
	}
}

func TestPlayLayout(t *testing.T) {
	frame, ok := playLayout(20, 80, 30)
	if !ok {
		t.Fatal("20x20 board should fit 80x30")
	}
	w, h := boardFrame(20)
	if frame.W != w || frame.H != h {
		t.Errorf("frame = %+v, expected %dx%d", frame, w, h)
	}
	if frame.Y < hudHeight {
		t.Errorf("frame.Y = %d leaves no room for the HUD", frame.Y)
	}

	if _, ok := playLayout(20, 30, 10); ok {
		t.Error("20x20 board should not fit 30x10")
	}
}

func TestDrawOverlay(t *testing.T) {
	s := core.NewScreen(40, 20)
	frame := core.NewRect(0, 0, 40, 20)
	drawOverlay(s, frame, overlay{title: "PAUSED", options: pauseOptions, cursor: 1})

	out := s.String()
	if !strings.Contains(out, "PAUSED") {
		t.Error("overlay title missing")
	}
	if !strings.Contains(out, "> Main Menu <") {
		t.Errorf("selected option not marked:\n%s", out)
	}
	if !strings.Contains(out, "Resume") {
		t.Error("unselected option missing")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(5, 1)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cde", core.ColorGreen)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cde") {
		t.Errorf("RenderScreen() = %q, lost text", out)
	}
}
