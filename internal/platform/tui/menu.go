package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// MenuChoice is what the player picked on the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceOptions
	ChoiceScoreboard
	ChoiceQuit
)

// MenuItem is one entry of the main menu.
type MenuItem struct {
	Title  string
	Choice MenuChoice
}

var mainMenuItems = []MenuItem{
	{Title: "Play", Choice: ChoicePlay},
	{Title: "Options", Choice: ChoiceOptions},
	{Title: "Scoreboard", Choice: ChoiceScoreboard},
	{Title: "Quit", Choice: ChoiceQuit},
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	best     int
	settings config.Settings
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	choice   MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(best int, settings config.Settings, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:    mainMenuItems,
		best:     best,
		settings: settings,
		config:   cfg,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config = m.config.WithSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.choice = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp, MenuActionDown:
		m.cursor = moveCursor(m.cursor, len(m.items), action)

	case MenuActionSelect:
		m.choice = m.items[m.cursor].Choice
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	var b strings.Builder
	width := m.config.ScreenW

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S N A K E"), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtleStyle.Render(fmt.Sprintf("Best: %d", m.best)), width))
	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(settingsSummary(m.settings)), width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = selectedStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(m.help.View(m.keys)), width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, ChoiceNone while still choosing.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// settingsSummary describes the options in one line.
func settingsSummary(s config.Settings) string {
	walls := "walls on"
	if !s.Walls {
		walls = "wrap around"
	}
	mode := s.Mode
	if mode == "" {
		mode = "classic"
	}
	return fmt.Sprintf("%s, %s", mode, walls)
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the main menu and returns the selection.
func RunMenu(best int, settings config.Settings, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(best, settings, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}
	return MenuResult{Choice: m.Choice(), Config: m.Config()}, nil
}
