package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// PlayExit reports how the play screen was left.
type PlayExit int

const (
	ExitMenu PlayExit = iota // back to the main menu
	ExitQuit                 // leave the program
)

// Session is everything the play screen needs to run games.
type Session struct {
	Settings     engine.Settings
	Store        *storage.Store // nil runs without persistence
	HighScoreKey string
	Runtime      core.RuntimeConfig
	Logger       *log.Logger
}

var (
	pauseOptions    = []string{"Resume", "Main Menu"}
	gameOverOptions = []string{"Play Again", "Main Menu"}
)

// Model is the Bubble Tea model of the play screen. It owns one engine and
// drives its timers through tea.Tick.
type Model struct {
	engine   *engine.Engine
	sched    *teaScheduler
	store    *storage.Store
	logger   *log.Logger
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     GameKeyMap
	help     help.Model
	cursor   int // selected overlay option
	runSaved bool
	exit     PlayExit
	quitting bool
}

// NewModel creates the play screen for a session. The engine stays idle
// until Init.
func NewModel(sess Session) Model {
	logger := sess.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sched := &teaScheduler{}
	opts := []engine.Option{engine.WithLogger(logger)}
	if sess.Runtime.Seed != 0 {
		opts = append(opts, engine.WithSeed(sess.Runtime.Seed))
	}
	if sess.Store != nil {
		opts = append(opts, engine.WithHighScoreStore(storage.NewBestScore(sess.Store, sess.HighScoreKey)))
	}

	return Model{
		engine: engine.New(sess.Settings, sched, opts...),
		sched:  sched,
		store:  sess.Store,
		logger: logger,
		screen: core.NewScreen(sess.Runtime.ScreenW, max(sess.Runtime.ScreenH-1, 0)),
		config: sess.Runtime,
		keys:   DefaultGameKeyMap(sess.Settings.Mode),
		help:   help.New(),
	}
}

// Init starts the first run.
func (m Model) Init() tea.Cmd {
	m.engine.ResetGame()
	return m.sched.drain()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config = m.config.WithSize(msg.Width, msg.Height)
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case EngineTickMsg:
		m.engine.Tick(msg.Token)
		m.recordRun()
		return m, m.sched.drain()

	case tea.BlurMsg:
		m.engine.SetActive(false)
		return m, nil

	case tea.FocusMsg:
		m.engine.SetActive(true)
		return m, m.sched.drain()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		return m.leave(ExitQuit)
	}

	snap := m.engine.Snapshot()
	switch {
	case snap.GameOver:
		return m.handleOverlay(action, gameOverOptions)
	case snap.Paused:
		if action == core.ActionPause {
			m.engine.TogglePause()
			return m, m.sched.drain()
		}
		return m.handleOverlay(action, pauseOptions)
	}

	if d, ok := directionFor(action); ok {
		m.engine.Enqueue(d)
		return m, nil
	}
	switch action {
	case core.ActionShoot:
		m.engine.Shoot()
	case core.ActionPause:
		m.engine.TogglePause()
		m.cursor = 0
	}
	return m, m.sched.drain()
}

// handleOverlay navigates the pause and game-over dialogs.
func (m Model) handleOverlay(action core.Action, options []string) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionUp:
		m.cursor = moveCursor(m.cursor, len(options), MenuActionUp)
	case core.ActionDown:
		m.cursor = moveCursor(m.cursor, len(options), MenuActionDown)
	case core.ActionRestart:
		if m.engine.Snapshot().GameOver {
			return m.playAgain()
		}
	case core.ActionConfirm:
		switch options[m.cursor] {
		case "Resume":
			m.engine.TogglePause()
			return m, m.sched.drain()
		case "Play Again":
			return m.playAgain()
		case "Main Menu":
			return m.leave(ExitMenu)
		}
	}
	return m, nil
}

func (m Model) playAgain() (tea.Model, tea.Cmd) {
	m.engine.ResetGame()
	m.runSaved = false
	m.cursor = 0
	return m, m.sched.drain()
}

// leave deactivates the engine before the play screen goes away.
func (m Model) leave(exit PlayExit) (tea.Model, tea.Cmd) {
	m.engine.SetActive(false)
	m.exit = exit
	m.quitting = true
	return m, tea.Quit
}

// recordRun stores a finished run once.
func (m *Model) recordRun() {
	snap := m.engine.Snapshot()
	if !snap.GameOver || m.runSaved {
		return
	}
	m.runSaved = true
	m.cursor = 0
	if m.store == nil || snap.Score <= 0 {
		return
	}
	id, err := m.store.SaveRun(string(snap.Mode), snap.Score, len(snap.Snake), string(snap.Reason))
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "run_id", id, "score", snap.Score)
}

// saveScreenshot writes the current board as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw paints the current snapshot onto the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	snap := m.engine.Snapshot()

	frame, ok := playLayout(snap.GridSize, m.screen.Width(), m.screen.Height())
	if !ok {
		w, h := boardFrame(snap.GridSize)
		m.screen.DrawTextCentered(m.screen.Height()/2, "Terminal too small", core.ColorBrightRed)
		m.screen.DrawTextCentered(m.screen.Height()/2+1,
			fmt.Sprintf("need %dx%d", w, h+hudHeight+1), core.ColorGray)
		return
	}

	m.screen.DrawText(frame.X, frame.Y-hudHeight, hudLine(snap), core.ColorBrightYellow)
	mode := modeLine(snap)
	m.screen.DrawText(frame.Right()-len(mode), frame.Y-1, mode, core.ColorGray)
	drawBoard(m.screen, frame, snap)

	switch {
	case snap.GameOver:
		drawOverlay(m.screen, frame, gameOverOverlay(snap, m.cursor))
	case snap.Paused:
		drawOverlay(m.screen, frame, overlay{title: "PAUSED", options: pauseOptions, cursor: m.cursor})
	}
}

func gameOverOverlay(snap engine.Snapshot, cursor int) overlay {
	lines := []string{endReasonText(snap.Reason), fmt.Sprintf("Score: %d", snap.Score)}
	if snap.NewBest {
		lines = append(lines, "New High Score!")
	} else {
		lines = append(lines, fmt.Sprintf("Best: %d", snap.HighScore))
	}
	return overlay{title: "GAME OVER", lines: lines, options: gameOverOptions, cursor: cursor}
}

func endReasonText(r engine.EndReason) string {
	switch r {
	case engine.ReasonWall:
		return "You hit the wall"
	case engine.ReasonSelf:
		return "You bit yourself"
	case engine.ReasonBoardFull:
		return "No room left on the board"
	default:
		return ""
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	helpLine := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys))
	return RenderScreen(m.screen) + "\n" + lipgloss.PlaceHorizontal(m.screen.Width(), lipgloss.Center, helpLine)
}

// Exit reports how the screen was left.
func (m Model) Exit() PlayExit {
	return m.exit
}

// Run plays games until the player leaves the play screen.
func Run(sess Session) (PlayExit, error) {
	p := tea.NewProgram(
		NewModel(sess),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return ExitQuit, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return ExitQuit, nil
	}
	return m.Exit(), nil
}
