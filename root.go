package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"simplesearch/internal/config"
	"simplesearch/internal/launcher"
	"simplesearch/internal/pathindex"
	"simplesearch/internal/runner"
	"simplesearch/internal/tui"
)

var errNotTerminal = errors.New("standard input is not a terminal")

// rootOptions holds the command-line flags
type rootOptions struct {
	configPath      string
	debug           bool
	maxInput        int
	maxResults      int
	timeout         time.Duration
	shell           string
	theme           string
	selectionPolicy string
	noWatch         bool
	showHelp        bool
	noColor         bool
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Type-ahead launcher for executables on your PATH",
		Long: `simplesearch is a one-line launcher: type a prefix, pick one of the
matching executables from your PATH, and press Enter to run it.

Keys:
  tab          complete to the suggestion
  up/down      move the highlight (also ctrl+k/ctrl+j)
  enter        run the command line
  esc          quit without running anything

Examples:
  # Launch with the defaults
  simplesearch

  # Enter and Tab use the highlighted suggestion, no idle timeout
  simplesearch --selection-policy selected --timeout 0`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			if opts.noColor || termenv.EnvNoColor() {
				disableColor()
			}
			return run(cmd.Context(), cfg, opts.showHelp, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "",
		"Path to config.yaml (default: search standard locations)")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false,
		"Write debug logs to the log file")
	cmd.Flags().IntVar(&opts.maxInput, "max-input", defaults.MaxInputLength,
		"Input buffer capacity")
	cmd.Flags().IntVar(&opts.maxResults, "max-results", defaults.MaxResults,
		"Maximum number of suggestions")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", defaults.Timeout,
		"Exit after this long without input (0 disables)")
	cmd.Flags().StringVar(&opts.shell, "shell", defaults.Shell,
		"Interpreter used to run the command line")
	cmd.Flags().StringVar(&opts.theme, "theme", defaults.Theme,
		"Colour theme: latte, frappe, macchiato or mocha")
	cmd.Flags().StringVar(&opts.selectionPolicy, "selection-policy", defaults.SelectionPolicy,
		`Suggestion used by Enter and Tab: "first" or "selected"`)
	cmd.Flags().BoolVar(&opts.noWatch, "no-watch", false,
		"Do not refresh suggestions when PATH directories change")
	cmd.Flags().BoolVar(&opts.showHelp, "keys", false,
		"Show the key help line")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false,
		"Disable colored output (also honours NO_COLOR)")

	return cmd
}

// config loads the config file and applies explicitly set flags on top.
// Priority: default < config file < flag.
func (o *rootOptions) config(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		if _, statErr := os.Stat(o.configPath); statErr != nil {
			return nil, fmt.Errorf("config file: %w", statErr)
		}
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.LoadFromDefaultPath()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = o.debug
	}
	if flags.Changed("max-input") {
		cfg.MaxInputLength = o.maxInput
	}
	if flags.Changed("max-results") {
		cfg.MaxResults = o.maxResults
	}
	if flags.Changed("timeout") {
		cfg.Timeout = o.timeout
	}
	if flags.Changed("shell") {
		cfg.Shell = o.shell
	}
	if flags.Changed("theme") {
		cfg.Theme = o.theme
	}
	if flags.Changed("selection-policy") {
		cfg.SelectionPolicy = o.selectionPolicy
	}
	if o.noWatch {
		cfg.WatchPath = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// disableColor turns off styling in both the UI and the exit messages
func disableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
	color.NoColor = true
}

// newLogger returns a debug-level file logger when debugging, otherwise a
// logger that discards everything. The terminal belongs to the UI.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if !cfg.Debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // log path from config
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

// run drives one launcher session in the terminal
func run(ctx context.Context, cfg *config.Config, showHelp bool, out io.Writer) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	index := pathindex.New(pathindex.Options{EnvVar: cfg.PathEnv, Logger: logger})

	var watcher *pathindex.Watcher
	if cfg.WatchPath {
		w, err := pathindex.NewWatcher(index.Dirs(), logger)
		if err != nil {
			logger.Warn("search path watcher unavailable", "error", err)
		} else {
			w.Start()
			defer func() { _ = w.Stop() }()
			watcher = w
		}
	}

	deferred := &runner.Deferred{Next: &runner.Shell{
		Path:   cfg.Shell,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}}

	ctrl := launcher.New(index, deferred, launcher.Options{
		MaxInputLength: cfg.MaxInputLength,
		MaxResults:     cfg.MaxResults,
		Timeout:        cfg.Timeout,
		Policy:         launcher.SelectionPolicy(cfg.SelectionPolicy),
		Debug:          cfg.Debug,
		Logger:         logger,
	})

	model := tui.NewModel(tui.ModelOptions{
		Controller: ctrl,
		Watcher:    watcher,
		Timeout:    cfg.Timeout,
		Theme:      cfg.Theme,
		ShowHelp:   showHelp,
		Logger:     logger,
	})

	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return report(ctx, out, ctrl, deferred)
}

// report prints the session outcome and starts the accepted command, now
// that the terminal has been restored.
func report(ctx context.Context, out io.Writer, ctrl *launcher.Controller, deferred *runner.Deferred) error {
	switch ctrl.State() {
	case launcher.StateExecuted:
		if err := ctrl.Err(); err != nil {
			return err
		}
		fmt.Fprintf(out, "Executing: %s\n", color.GreenString(ctrl.Command()))
		if err := deferred.Flush(ctx); err != nil {
			return fmt.Errorf("launch %q: %w", ctrl.Command(), err)
		}

	case launcher.StateTimedOut:
		fmt.Fprintln(out, color.YellowString("Exiting due to inactivity timeout."))
	}
	return nil
}
