// Package runner hands composed command lines to a command interpreter.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
)

// DefaultShell interprets launched command lines.
const DefaultShell = "/bin/sh"

// Launcher runs one command line without waiting for it.
type Launcher interface {
	Launch(command string) error
}

// Shell starts `<Path> -c <command>` in its own session and lets it go.
// The child's exit status is never collected.
type Shell struct {
	// Path to the interpreter (default /bin/sh).
	Path string

	// Stdout and Stderr for the child; nil discards.
	Stdout io.Writer
	Stderr io.Writer

	// Dir is the child's working directory (empty = current).
	Dir string

	Logger *slog.Logger
}

// Launch starts command and returns once the interpreter is running.
func (s *Shell) Launch(command string) error {
	path := s.Path
	if path == "" {
		path = DefaultShell
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cmd := exec.Command(path, "-c", command) //nolint:gosec // running the user's command is the point
	cmd.Dir = s.Dir
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", path, err)
	}
	logger.Info("started command", "shell", path, "pid", cmd.Process.Pid, "command", command)

	if err := cmd.Process.Release(); err != nil {
		logger.Warn("failed to release child", "pid", cmd.Process.Pid, "error", err)
	}
	return nil
}

// Deferred records a launch request so it can be started later, after the
// terminal has been handed back.
type Deferred struct {
	Next Launcher

	command string
	pending bool
}

// Launch records command. Only the last request is kept.
func (d *Deferred) Launch(command string) error {
	if d.Next == nil {
		return fmt.Errorf("deferred launch of %q: no launcher", command)
	}
	d.command = command
	d.pending = true
	return nil
}

// Command returns the recorded command and whether one is pending.
func (d *Deferred) Command() (string, bool) {
	return d.command, d.pending
}

// Flush hands the recorded command to Next. It is a no-op when nothing is
// pending, and each request is flushed at most once.
func (d *Deferred) Flush(ctx context.Context) error {
	if !d.pending {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	d.pending = false
	return d.Next.Launch(d.command)
}
