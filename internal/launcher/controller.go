// Package launcher implements the launcher's input and selection state
// machine: it owns the line buffer and the suggestion list, re-derives
// suggestions after every edit, and turns an accepted line into a single
// command for the process launcher.
package launcher

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"simplesearch/internal/input"
	"simplesearch/internal/suggest"
)

// ErrNoLauncher is reported when a command is accepted but the controller
// was built without a launcher.
var ErrNoLauncher = errors.New("no launcher configured")

// Searcher finds executables for a prefix.
type Searcher interface {
	// Search replaces the contents of out with names starting with query.
	Search(query string, out *suggest.List)

	// Contains reports whether an executable named exactly name exists.
	Contains(name string) bool
}

// Launcher runs a composed command line. It must not wait for the command.
type Launcher interface {
	Launch(command string) error
}

// LauncherFunc adapts a function to Launcher.
type LauncherFunc func(command string) error

// Launch calls f(command).
func (f LauncherFunc) Launch(command string) error { return f(command) }

// SelectionPolicy decides which suggestion Complete and Accept use.
type SelectionPolicy string

const (
	// SelectFirst always uses the first suggestion, whatever is highlighted.
	SelectFirst SelectionPolicy = "first"

	// SelectHighlighted uses the highlighted suggestion.
	SelectHighlighted SelectionPolicy = "selected"
)

// Valid reports whether p is a known policy.
func (p SelectionPolicy) Valid() bool {
	return p == SelectFirst || p == SelectHighlighted
}

// Options configures a Controller.
type Options struct {
	MaxInputLength int
	MaxResults     int
	Timeout        time.Duration
	Policy         SelectionPolicy

	// Debug enables a trace line per handled event.
	Debug bool

	Logger *slog.Logger

	// Now is the clock used by the inactivity timer (default time.Now).
	Now func() time.Time
}

// Snapshot is an immutable copy of what the renderer needs to draw.
type Snapshot struct {
	Text        string
	Suggestions []string
	Selected    int
	State       State
}

// Controller owns one launcher session.
type Controller struct {
	buf      *input.Buffer
	list     *suggest.List
	index    Searcher
	launcher Launcher
	timer    *Timer
	policy   SelectionPolicy
	debug    bool
	logger   *slog.Logger

	state   State
	command string
	err     error
}

// New creates a controller in the Idle state.
func New(index Searcher, launcher Launcher, opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if !opts.Policy.Valid() {
		opts.Policy = SelectFirst
	}
	if launcher == nil {
		launcher = LauncherFunc(func(string) error { return ErrNoLauncher })
	}

	return &Controller{
		buf:      input.NewBuffer(opts.MaxInputLength),
		list:     suggest.NewList(opts.MaxResults),
		index:    index,
		launcher: launcher,
		timer:    NewTimer(opts.Timeout, opts.Now),
		policy:   opts.Policy,
		debug:    opts.Debug,
		logger:   opts.Logger.With("session", uuid.NewString()),
		state:    StateIdle,
	}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Done reports whether the session has ended.
func (c *Controller) Done() bool { return c.state.Terminal() }

// Command returns the command handed to the launcher, if any.
func (c *Controller) Command() string { return c.command }

// Err returns the launch error, if the launcher refused the command.
func (c *Controller) Err() error { return c.err }

// Text returns the current buffer contents.
func (c *Controller) Text() string { return c.buf.String() }

// Deadline returns when the session will time out, or the zero time when
// the inactivity timeout is disabled.
func (c *Controller) Deadline() time.Time { return c.timer.Deadline() }

// Remaining returns the time left before the inactivity timeout and whether
// a timeout applies at all.
func (c *Controller) Remaining() (time.Duration, bool) {
	return c.timer.Remaining(), c.timer.Enabled()
}

// Snapshot returns a copy of the visible state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Text:        c.buf.String(),
		Suggestions: c.list.Names(),
		Selected:    c.list.Selected(),
		State:       c.state,
	}
}

// CheckTimeout ends the session if the inactivity deadline has passed.
// It reports whether the session timed out.
func (c *Controller) CheckTimeout() bool {
	if c.Done() || !c.timer.Expired() {
		return false
	}
	c.Handle(Key(EventTimeout))
	return true
}

// Handle applies one event. Events after the session has ended are ignored.
func (c *Controller) Handle(ev Event) {
	if c.Done() {
		return
	}
	if ev.isInput() {
		c.timer.Touch()
	}
	if c.debug {
		c.logger.Debug("event", "kind", ev.Kind.String(), "char", string(ev.Char), "state", c.state.String())
	}

	switch ev.Kind {
	case EventChar:
		c.buf.Append(ev.Char)
		c.rederive()

	case EventBackspace:
		c.buf.Backspace()
		c.rederive()

	case EventDown:
		c.list.MoveDown()

	case EventUp:
		c.list.MoveUp()

	case EventComplete:
		if name, ok := c.pick(); ok {
			c.buf.ReplaceWith(name)
			c.rederive()
		}

	case EventAccept:
		c.accept()

	case EventCancel:
		c.finish(StateCancelled)

	case EventTimeout:
		c.finish(StateTimedOut)

	case EventRefresh:
		if c.state == StateDisplaying {
			c.rederive()
		}
	}
}

// rederive recomputes the suggestions for the current buffer.
func (c *Controller) rederive() {
	c.state = StateSearching
	text := c.buf.String()

	switch {
	case strings.ContainsFunc(text, unicode.IsSpace):
		// Only the first token is completed.
		c.list.Clear()
	case c.index.Contains(text):
		c.list.Clear()
	default:
		c.index.Search(text, c.list)
	}

	c.state = StateDisplaying
}

// pick returns the suggestion Complete and Accept act on.
func (c *Controller) pick() (string, bool) {
	if c.policy == SelectHighlighted {
		return c.list.SelectedName()
	}
	return c.list.First()
}

// accept composes the command line and hands it to the launcher.
func (c *Controller) accept() {
	text := c.buf.String()
	if text == "" {
		return
	}

	binary, rest := SplitCommand(text)
	if name, ok := c.pick(); ok {
		binary = name
	}
	if binary == "" {
		return
	}

	c.command = ComposeCommand(binary, rest)
	c.logger.Info("launching", "command", c.command)
	if err := c.launcher.Launch(c.command); err != nil {
		c.err = fmt.Errorf("launch %q: %w", c.command, err)
		c.logger.Error("launch failed", "command", c.command, "error", err)
	}
	c.finish(StateExecuted)
}

// finish enters a terminal state and releases the suggestions.
func (c *Controller) finish(s State) {
	c.list.Clear()
	c.state = s
	c.logger.Debug("session ended", "state", s.String())
}

// SplitCommand splits text into its first whitespace-delimited token and the
// remainder after the whitespace run that follows it.
func SplitCommand(text string) (binary, rest string) {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return text, ""
	}
	return text[:i], strings.TrimLeftFunc(text[i:], unicode.IsSpace)
}

// ComposeCommand joins a binary and its arguments with a single space.
func ComposeCommand(binary, rest string) string {
	if rest == "" {
		return binary
	}
	return binary + " " + rest
}
