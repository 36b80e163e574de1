// Package tui provides the Bubble Tea client for the snake engine.
// It handles the terminal UI loop, input mapping and screen flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// EngineTickMsg delivers one engine timer firing back into the update loop.
type EngineTickMsg struct {
	Token engine.Token
}

// teaScheduler implements engine.Scheduler on top of tea.Tick. Requests made
// while handling a message are collected and returned as one command, so
// every engine call stays on the Bubble Tea goroutine.
type teaScheduler struct {
	pending []tea.Cmd
}

// Schedule queues a tick command for tok.
func (s *teaScheduler) Schedule(tok engine.Token, after time.Duration) {
	s.pending = append(s.pending, tea.Tick(after, func(time.Time) tea.Msg {
		return EngineTickMsg{Token: tok}
	}))
}

// drain returns the queued commands as a batch and resets the queue.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
