package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"simplesearch/internal/launcher"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.handleKey(msg)
		if m.ctrl.Done() {
			return m, tea.Quit
		}
		return m, nil

	case timeoutMsg:
		if m.ctrl.CheckTimeout() {
			return m, tea.Quit
		}
		return m, m.tickCmd()

	case pathChangedMsg:
		m.ctrl.Handle(launcher.Key(launcher.EventRefresh))
		return m, m.watchPathCmd()

	case watchErrMsg:
		m.logger.Warn("search path watcher error", "error", msg.error)
		return m, m.watchPathCmd()
	}

	return m, nil
}

// handleKey translates one key press into controller events
func (m Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Accept):
		m.ctrl.Handle(launcher.Key(launcher.EventAccept))
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.Handle(launcher.Key(launcher.EventCancel))
	case key.Matches(msg, m.keys.Complete):
		m.ctrl.Handle(launcher.Key(launcher.EventComplete))
	case key.Matches(msg, m.keys.Up):
		m.ctrl.Handle(launcher.Key(launcher.EventUp))
	case key.Matches(msg, m.keys.Down):
		m.ctrl.Handle(launcher.Key(launcher.EventDown))
	case key.Matches(msg, m.keys.Backspace):
		m.ctrl.Handle(launcher.Key(launcher.EventBackspace))
	case msg.Type == tea.KeySpace:
		m.ctrl.Handle(launcher.Char(' '))
	case msg.Type == tea.KeyRunes && !msg.Alt:
		// Pasted text arrives as one message with many runes.
		for _, r := range msg.Runes {
			m.ctrl.Handle(launcher.Char(r))
		}
	}
}
