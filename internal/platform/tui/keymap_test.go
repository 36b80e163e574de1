package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapping(t *testing.T) {
	km := DefaultGameKeyMap(engine.ModeArmed)

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionShoot},
		{"p", runeKey('p'), core.ActionPause},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %s, expected %s", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestShootDisabledInClassic(t *testing.T) {
	km := DefaultGameKeyMap(engine.ModeClassic)
	if got := km.MapKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}); got != core.ActionNone {
		t.Errorf("space in classic mode = %s, expected None", got)
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		action core.Action
		dir    engine.Direction
	}{
		{core.ActionUp, engine.DirUp},
		{core.ActionDown, engine.DirDown},
		{core.ActionLeft, engine.DirLeft},
		{core.ActionRight, engine.DirRight},
	}
	for _, tc := range tests {
		d, ok := directionFor(tc.action)
		if !ok || d != tc.dir {
			t.Errorf("directionFor(%s) = %s, %v, expected %s", tc.action, d, ok, tc.dir)
		}
	}
	if _, ok := directionFor(core.ActionShoot); ok {
		t.Error("Shoot should not map to a direction")
	}
}

func TestMenuKeyMapping(t *testing.T) {
	km := DefaultMenuKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKey(tc.msg); got != tc.expected {
			t.Errorf("MapKey(%q) = %d, expected %d", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestMoveCursorWraps(t *testing.T) {
	if got := moveCursor(0, 4, MenuActionUp); got != 3 {
		t.Errorf("up from 0 = %d, expected 3", got)
	}
	if got := moveCursor(3, 4, MenuActionDown); got != 0 {
		t.Errorf("down from 3 = %d, expected 0", got)
	}
	if got := moveCursor(2, 4, MenuActionSelect); got != 2 {
		t.Errorf("select moved cursor to %d", got)
	}
	if got := moveCursor(5, 0, MenuActionDown); got != 0 {
		t.Errorf("empty list cursor = %d, expected 0", got)
	}
}
