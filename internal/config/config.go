// Package config loads llmscape's TOML settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shayne-snap/llmscape/internal/catalog"
)

// EnvPath overrides the config file location.
const EnvPath = "LLMSCAPE_CONFIG"

// View names accepted by UIConfig.DefaultView and the --view flag.
const (
	ViewLarge = "llm"
	ViewSmall = "slm"
)

// Config holds llmscape configuration.
type Config struct {
	UI  UIConfig  `toml:"ui"`
	Log LogConfig `toml:"log"`
}

// UIConfig controls the gallery display.
type UIConfig struct {
	DefaultView     string `toml:"default_view"`     // "llm" or "slm"
	DefaultCategory string `toml:"default_category"` // initial tab of the slm view
	Emoji           bool   `toml:"emoji"`
	Color           bool   `toml:"color"`
	Mouse           bool   `toml:"mouse"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`  // TUI log file; empty means <config dir>/llmscape.log
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			DefaultView:     ViewLarge,
			DefaultCategory: catalog.CategoryLLM.String(),
			Emoji:           true,
			Color:           true,
			Mouse:           true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Dir returns the llmscape config directory.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "llmscape"), nil
}

// Path returns the config file path: $LLMSCAPE_CONFIG, else <config dir>/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Validate rejects unknown view, category and log level names.
func (c *Config) Validate() error {
	if _, err := ParseView(c.UI.DefaultView); err != nil {
		return err
	}
	if _, err := catalog.ParseCategory(c.UI.DefaultCategory); err != nil {
		return fmt.Errorf("default_category: %w", err)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Category returns the configured initial tab, falling back to llm.
func (c *Config) Category() catalog.Category {
	cat, err := catalog.ParseCategory(c.UI.DefaultCategory)
	if err != nil {
		return catalog.CategoryLLM
	}
	return cat
}

// LogFile returns the configured TUI log file or the default under Dir.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "llmscape.log"), nil
}

// ParseView normalises a view name.
func ParseView(s string) (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case ViewLarge, ViewSmall:
		return v, nil
	default:
		return "", fmt.Errorf("unknown view %q (want %s or %s)", s, ViewLarge, ViewSmall)
	}
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}
