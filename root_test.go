package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplesearch/internal/config"
	"simplesearch/internal/launcher"
	"simplesearch/internal/runner"
	"simplesearch/internal/suggest"
)

// isolate keeps the standard config locations empty
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	chdir(t, t.TempDir())
}

func parse(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	opts := &rootOptions{}
	cmd := newRootCmd(opts)
	require.NoError(t, cmd.ParseFlags(args))
	return opts.config(cmd)
}

func TestConfigDefaults(t *testing.T) {
	isolate(t)

	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestConfigFlagOverrides(t *testing.T) {
	isolate(t)

	cfg, err := parse(t,
		"-d",
		"--max-input", "64",
		"--max-results", "5",
		"--timeout", "0",
		"--shell", "/bin/bash",
		"--theme", "latte",
		"--selection-policy", "selected",
		"--no-watch",
	)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 64, cfg.MaxInputLength)
	assert.Equal(t, 5, cfg.MaxResults)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, "/bin/bash", cfg.Shell)
	assert.Equal(t, "latte", cfg.Theme)
	assert.Equal(t, "selected", cfg.SelectionPolicy)
	assert.False(t, cfg.WatchPath)
}

func TestConfigFileThenFlags(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_results: 9\ntheme: frappe\n"), 0o644))

	cfg, err := parse(t, "--config", path, "--theme", "macchiato")
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.MaxResults, "file value kept")
	assert.Equal(t, "macchiato", cfg.Theme, "flag wins over file")
	assert.Equal(t, 256, cfg.MaxInputLength, "default kept")
}

func TestConfigUnsetFlagsDoNotOverrideFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: 30s\n"), 0o644))

	cfg, err := parse(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestConfigErrors(t *testing.T) {
	isolate(t)

	_, err := parse(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = parse(t, "--max-results", "0")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = parse(t, "--selection-policy", "last")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRejectsArguments(t *testing.T) {
	cmd := newRootCmd(&rootOptions{})
	cmd.SetArgs([]string{"ls"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}

func TestNewLogger(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "debug.log")

	logger, closeLog, err := newLogger(cfg)
	require.NoError(t, err)
	logger.Debug("hidden")
	closeLog()
	_, err = os.Stat(cfg.LogFile)
	assert.ErrorIs(t, err, os.ErrNotExist, "no log file without debug")

	cfg.Debug = true
	logger, closeLog, err = newLogger(cfg)
	require.NoError(t, err)
	logger.Debug("visible", "key", "value")
	closeLog()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
	assert.Contains(t, string(data), "key=value")
}

// staticSearcher suggests nothing and knows every name
type staticSearcher struct{}

func (staticSearcher) Search(_ string, out *suggest.List) { out.Clear() }
func (staticSearcher) Contains(string) bool               { return true }

func TestReportExecuted(t *testing.T) {
	var launched []string
	deferred := &runner.Deferred{Next: launcher.LauncherFunc(func(cmd string) error {
		launched = append(launched, cmd)
		return nil
	})}
	ctrl := launcher.New(staticSearcher{}, deferred, launcher.Options{})
	for _, r := range "echo hi" {
		ctrl.Handle(launcher.Char(r))
	}
	ctrl.Handle(launcher.Key(launcher.EventAccept))
	require.Equal(t, launcher.StateExecuted, ctrl.State())
	assert.Empty(t, launched, "nothing starts before the UI exits")

	var out bytes.Buffer
	require.NoError(t, report(context.Background(), &out, ctrl, deferred))
	assert.Contains(t, out.String(), "Executing: echo hi")
	assert.Equal(t, []string{"echo hi"}, launched)
}

func TestReportLaunchFailure(t *testing.T) {
	boom := errors.New("boom")
	deferred := &runner.Deferred{Next: launcher.LauncherFunc(func(string) error { return boom })}
	ctrl := launcher.New(staticSearcher{}, deferred, launcher.Options{})
	ctrl.Handle(launcher.Char('x'))
	ctrl.Handle(launcher.Key(launcher.EventAccept))

	err := report(context.Background(), &bytes.Buffer{}, ctrl, deferred)
	assert.ErrorIs(t, err, boom)
}

func TestReportTimedOut(t *testing.T) {
	now := time.Unix(0, 0)
	ctrl := launcher.New(staticSearcher{}, nil, launcher.Options{
		Timeout: time.Second,
		Now:     func() time.Time { return now },
	})
	now = now.Add(2 * time.Second)
	require.True(t, ctrl.CheckTimeout())

	var out bytes.Buffer
	require.NoError(t, report(context.Background(), &out, ctrl, &runner.Deferred{}))
	assert.Contains(t, out.String(), "Exiting due to inactivity timeout.")
}

func TestReportCancelledIsSilent(t *testing.T) {
	ctrl := launcher.New(staticSearcher{}, nil, launcher.Options{})
	ctrl.Handle(launcher.Key(launcher.EventCancel))

	var out bytes.Buffer
	require.NoError(t, report(context.Background(), &out, ctrl, &runner.Deferred{}))
	assert.Empty(t, out.String())
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
