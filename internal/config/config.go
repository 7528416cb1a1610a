package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// AppName names the config directory under ~/.config and $XDG_CONFIG_HOME.
const AppName = "simplesearch"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Themes lists the accepted catppuccin flavour names.
var Themes = []string{"latte", "frappe", "macchiato", "mocha"}

// Config holds the application configuration
type Config struct {
	// MaxInputLength is the input buffer capacity, including one reserved slot
	MaxInputLength int `yaml:"max_input_length"`

	// MaxResults caps the number of suggestions
	MaxResults int `yaml:"max_results"`

	// Timeout ends the session after this long without input (0 disables)
	Timeout time.Duration `yaml:"timeout"`

	// Debug enables verbose logging to LogFile
	Debug bool `yaml:"debug"`

	// LogFile receives logs when Debug is set
	LogFile string `yaml:"log_file"`

	// Shell interprets the accepted command line
	Shell string `yaml:"shell"`

	// PathEnv names the environment variable holding the search path
	PathEnv string `yaml:"path_env"`

	// Theme is the catppuccin flavour (latte, frappe, macchiato, mocha)
	Theme string `yaml:"theme"`

	// SelectionPolicy is "first" (Enter/Tab use the first suggestion) or
	// "selected" (they use the highlighted one)
	SelectionPolicy string `yaml:"selection_policy"`

	// WatchPath re-runs the search when search-path directories change
	WatchPath bool `yaml:"watch_path"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxInputLength:  256,
		MaxResults:      20,
		Timeout:         7 * time.Second,
		LogFile:         filepath.Join(os.TempDir(), AppName+".log"),
		Shell:           "/bin/sh",
		PathEnv:         "PATH",
		Theme:           "mocha",
		SelectionPolicy: "first",
		WatchPath:       true,
	}
}

// Load reads the config from a YAML file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) //nolint:gosec // config path from known locations
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if no config file
		}
		return nil, fmt.Errorf("failed to read config %s: %w", cleanPath, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", cleanPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", cleanPath, err)
	}

	return cfg, nil
}

// DefaultPaths returns the config locations checked by LoadFromDefaultPath, in order
func DefaultPaths() []string {
	paths := []string{
		"config.yaml",
		filepath.Join(os.Getenv("HOME"), ".config", AppName, "config.yaml"),
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, AppName, "config.yaml"))
	}

	return paths
}

// LoadFromDefaultPath attempts to load config from standard locations
func LoadFromDefaultPath() (*Config, error) {
	for _, path := range DefaultPaths() {
		cleanPath := filepath.Clean(path)
		if _, err := os.Stat(cleanPath); err == nil { //nolint:gosec // config path from known locations
			return Load(cleanPath)
		}
	}

	return DefaultConfig(), nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.MaxInputLength < 2 {
		return fmt.Errorf("%w: max_input_length must be at least 2, got %d", ErrInvalid, c.MaxInputLength)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("%w: max_results must be at least 1, got %d", ErrInvalid, c.MaxResults)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative, got %s", ErrInvalid, c.Timeout)
	}
	if c.Shell == "" {
		return fmt.Errorf("%w: shell must be set", ErrInvalid)
	}
	if c.PathEnv == "" {
		return fmt.Errorf("%w: path_env must be set", ErrInvalid)
	}
	if !c.validTheme() {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalid, c.Theme)
	}
	if c.SelectionPolicy != "first" && c.SelectionPolicy != "selected" {
		return fmt.Errorf("%w: selection_policy must be \"first\" or \"selected\", got %q", ErrInvalid, c.SelectionPolicy)
	}
	return nil
}

// validTheme returns true if Theme names a catppuccin flavour
func (c *Config) validTheme() bool {
	for _, t := range Themes {
		if c.Theme == t {
			return true
		}
	}
	return false
}
