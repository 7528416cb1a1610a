// Package tui renders a launcher session in the terminal and feeds key
// presses back into the launcher controller.
package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"simplesearch/internal/launcher"
	"simplesearch/internal/pathindex"
)

// ModelOptions configures a Model
type ModelOptions struct {
	// Controller is required.
	Controller *launcher.Controller

	// Watcher, if set, triggers a suggestion refresh when the search path changes.
	Watcher *pathindex.Watcher

	// Timeout is shown in the help footer.
	Timeout time.Duration

	Theme    string
	ShowHelp bool
	Logger   *slog.Logger
}

// Model is the Bubble Tea model for one launcher session
type Model struct {
	ctrl    *launcher.Controller
	watcher *pathindex.Watcher
	logger  *slog.Logger

	keys     KeyMap
	help     help.Model
	styles   Styles
	showHelp bool
	timeout  time.Duration

	width int
}

// NewModel creates a Model around an existing controller
func NewModel(opts ModelOptions) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	styles := NewStyles(opts.Theme)
	h := help.New()
	styles.applyHelp(&h)

	return Model{
		ctrl:     opts.Controller,
		watcher:  opts.Watcher,
		logger:   opts.Logger,
		keys:     DefaultKeyMap(),
		help:     h,
		styles:   styles,
		showHelp: opts.ShowHelp,
		timeout:  opts.Timeout,
	}
}

// Controller returns the wrapped controller
func (m Model) Controller() *launcher.Controller {
	return m.ctrl
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.watchPathCmd(),
	)
}

// Message types
type (
	timeoutMsg     time.Time
	pathChangedMsg struct{}
	watchErrMsg    struct{ error }
)

// tickCmd fires at the controller's inactivity deadline. Input moves the
// deadline, so a tick that arrives early just re-arms for the remainder.
func (m Model) tickCmd() tea.Cmd {
	remaining, ok := m.ctrl.Remaining()
	if !ok {
		return nil
	}
	if remaining <= 0 {
		remaining = time.Millisecond
	}
	return tea.Tick(remaining, func(t time.Time) tea.Msg {
		return timeoutMsg(t)
	})
}

// watchPathCmd waits for the next search-path change
func (m Model) watchPathCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		select {
		case <-w.Events:
			return pathChangedMsg{}
		case err := <-w.Errors:
			return watchErrMsg{err}
		}
	}
}
