package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	optionWalls = iota
	optionMode
	optionBack
	optionCount
)

// OptionsModel lets the player toggle wall collision and the game mode.
type OptionsModel struct {
	settings config.Settings
	cursor   int
	width    int
	keys     MenuKeyMap
	help     help.Model
	done     bool
	quitting bool
}

// NewOptionsModel creates the options screen for the current settings.
func NewOptionsModel(settings config.Settings, width int) OptionsModel {
	if settings.Mode == "" {
		settings.Mode = "classic"
	}
	return OptionsModel{
		settings: settings,
		width:    width,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
	}
}

// Init initializes the model.
func (m OptionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m OptionsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp, MenuActionDown:
		m.cursor = moveCursor(m.cursor, optionCount, action)
	case MenuActionBack:
		m.done = true
		return m, tea.Quit
	case MenuActionSelect:
		switch m.cursor {
		case optionWalls:
			m.settings.Walls = !m.settings.Walls
		case optionMode:
			if m.settings.Mode == "armed" {
				m.settings.Mode = "classic"
			} else {
				m.settings.Mode = "armed"
			}
		case optionBack:
			m.done = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the options.
func (m OptionsModel) View() string {
	if m.done || m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("O P T I O N S"), m.width))
	b.WriteString("\n\n")

	walls := "On"
	if !m.settings.Walls {
		walls = "Off (wrap around)"
	}
	mode := "Classic"
	if m.settings.Mode == "armed" {
		mode = "Armed (guns & targets)"
	}

	rows := []string{
		fmt.Sprintf("Walls: %s", walls),
		fmt.Sprintf("Mode:  %s", mode),
		"Back",
	}
	for i, row := range rows {
		line := "  " + row
		if i == m.cursor {
			line = selectedStyle.Render("> " + row)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Settings returns the edited settings.
func (m OptionsModel) Settings() config.Settings {
	return m.settings
}

// IsQuitting returns true if the player wants to leave the program.
func (m OptionsModel) IsQuitting() bool {
	return m.quitting
}

// RunOptions shows the options screen and persists the result when a store
// is available. It reports whether the player asked to quit.
func RunOptions(store *storage.Store, settings config.Settings, cfg core.RuntimeConfig, logger *log.Logger) (config.Settings, bool, error) {
	p := tea.NewProgram(
		NewOptionsModel(settings, cfg.ScreenW),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return settings, false, err
	}

	m, ok := finalModel.(OptionsModel)
	if !ok {
		return settings, true, nil
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}
	updated := m.Settings()
	if store != nil && updated != settings {
		if err := store.SaveSettings(updated); err != nil {
			logger.Warn("could not save settings", "error", err)
		} else {
			logger.Debug("settings saved", "walls", updated.Walls, "mode", updated.Mode)
		}
	}
	return updated, m.IsQuitting(), nil
}
