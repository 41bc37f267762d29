// Package config loads the optional profile configuration. Precedence, lowest
// to highest: built-in defaults, furever.yaml in the profile directory,
// FUREVER_* environment variables (optionally from a .env file), CLI flags.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// State backend labels.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config is the profile configuration. Every field is optional; the zero
// field falls back to its default.
type Config struct {
	Theme        string `yaml:"theme,omitempty"`         // "light" or "dark"
	FontSize     int    `yaml:"font_size,omitempty"`     // base px, default 16
	Ambience     string `yaml:"ambience,omitempty"`      // track to start with
	DataDir      string `yaml:"data_dir,omitempty"`      // catalog override dir
	StateBackend string `yaml:"state_backend,omitempty"` // file | sqlite | memory
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:        "light",
		FontSize:     16,
		Ambience:     "None",
		StateBackend: BackendFile,
	}
}

// Load reads path over the defaults. A missing or unreadable file is not an
// error: configuration follows the same fail-open posture as the state slots,
// the worst a broken file can do is put you back on defaults.
func Load(path string) Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Debug("Config unreadable, using defaults", "path", path, "error", err)
		}
		return applyEnv(cfg)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		slog.Debug("Config unparsable, using defaults", "path", path, "error", err)
		return applyEnv(cfg)
	}
	cfg = merge(cfg, file)
	return applyEnv(cfg)
}

// merge overlays set fields of over onto base.
func merge(base, over Config) Config {
	if over.Theme != "" {
		base.Theme = over.Theme
	}
	if over.FontSize > 0 {
		base.FontSize = over.FontSize
	}
	if over.Ambience != "" {
		base.Ambience = over.Ambience
	}
	if over.DataDir != "" {
		base.DataDir = over.DataDir
	}
	if over.StateBackend != "" {
		base.StateBackend = over.StateBackend
	}
	return base
}

// applyEnv overlays FUREVER_* variables. A .env file in the working directory
// is loaded first without overriding the process environment.
func applyEnv(cfg Config) Config {
	_ = godotenv.Load() // absent .env is fine

	if v := os.Getenv("FUREVER_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("FUREVER_FONT_SIZE"); v != "" {
		if px, err := strconv.Atoi(v); err == nil && px > 0 {
			cfg.FontSize = px
		}
	}
	if v := os.Getenv("FUREVER_AMBIENCE"); v != "" {
		cfg.Ambience = v
	}
	if v := os.Getenv("FUREVER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("FUREVER_STATE_BACKEND"); v != "" {
		cfg.StateBackend = v
	}
	return cfg
}

// Validate rejects values no component could act on.
func (c Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "light", "dark":
	default:
		return fmt.Errorf("unknown theme %q (want light or dark)", c.Theme)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font size must be positive, got %d", c.FontSize)
	}
	switch c.StateBackend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown state backend %q (want file, sqlite or memory)", c.StateBackend)
	}
	return nil
}

// Dark reports whether the configured theme is dark.
func (c Config) Dark() bool {
	return strings.EqualFold(c.Theme, "dark")
}
