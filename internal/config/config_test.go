package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxInputLength != 256 {
		t.Errorf("MaxInputLength = %d, want 256", cfg.MaxInputLength)
	}
	if cfg.MaxResults != 20 {
		t.Errorf("MaxResults = %d, want 20", cfg.MaxResults)
	}
	if cfg.Timeout != 7*time.Second {
		t.Errorf("Timeout = %s, want 7s", cfg.Timeout)
	}
	if cfg.Debug {
		t.Error("DefaultConfig should not enable debug")
	}
	if cfg.SelectionPolicy != "first" {
		t.Errorf("SelectionPolicy = %q, want first", cfg.SelectionPolicy)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero timeout disables", func(c *Config) { c.Timeout = 0 }, true},
		{"selected policy", func(c *Config) { c.SelectionPolicy = "selected" }, true},
		{"latte theme", func(c *Config) { c.Theme = "latte" }, true},
		{"input too small", func(c *Config) { c.MaxInputLength = 1 }, false},
		{"no results", func(c *Config) { c.MaxResults = 0 }, false},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, false},
		{"empty shell", func(c *Config) { c.Shell = "" }, false},
		{"empty path env", func(c *Config) { c.PathEnv = "" }, false},
		{"unknown theme", func(c *Config) { c.Theme = "neon" }, false},
		{"unknown policy", func(c *Config) { c.SelectionPolicy = "last" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("Validate() should fail")
				}
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("Validate() error %v should wrap ErrInvalid", err)
				}
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `max_input_length: 64
max_results: 5
timeout: 30s
debug: true
theme: frappe
selection_policy: selected
watch_path: false
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MaxInputLength != 64 {
		t.Errorf("Expected max_input_length 64, got %d", cfg.MaxInputLength)
	}
	if cfg.MaxResults != 5 {
		t.Errorf("Expected max_results 5, got %d", cfg.MaxResults)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %s", cfg.Timeout)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if cfg.Theme != "frappe" {
		t.Errorf("Expected theme 'frappe', got %q", cfg.Theme)
	}
	if cfg.SelectionPolicy != "selected" {
		t.Errorf("Expected selection_policy 'selected', got %q", cfg.SelectionPolicy)
	}
	if cfg.WatchPath {
		t.Error("Expected watch_path to be disabled")
	}

	// Unset keys keep their defaults
	if cfg.Shell != "/bin/sh" {
		t.Errorf("Expected default shell, got %q", cfg.Shell)
	}
	if cfg.PathEnv != "PATH" {
		t.Errorf("Expected default path_env, got %q", cfg.PathEnv)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("Load() should not error for missing file, got: %v", err)
	}

	if cfg.MaxResults != DefaultConfig().MaxResults {
		t.Error("Should return default config")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("max_results: [not, a, number]\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("max_results: 0\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := Load(configPath)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, want ErrInvalid", err)
	}
}

func TestLoadFromDefaultPathUsesXDG(t *testing.T) {
	home := t.TempDir()
	xdg := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", xdg)
	chdir(t, t.TempDir())

	dir := filepath.Join(xdg, AppName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("max_results: 3\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromDefaultPath()
	if err != nil {
		t.Fatalf("LoadFromDefaultPath() error = %v", err)
	}
	if cfg.MaxResults != 3 {
		t.Errorf("Expected max_results 3 from XDG config, got %d", cfg.MaxResults)
	}
}

func TestLoadFromDefaultPathFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	chdir(t, t.TempDir())

	cfg, err := LoadFromDefaultPath()
	if err != nil {
		t.Fatalf("LoadFromDefaultPath() error = %v", err)
	}
	if cfg.MaxResults != 20 {
		t.Errorf("Expected defaults, got max_results %d", cfg.MaxResults)
	}
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
