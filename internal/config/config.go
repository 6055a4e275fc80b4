package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/raphi011/clack/internal/storage"
)

// ThemeConfig holds theme/color configuration for the prompt UI
type ThemeConfig struct {
	Name    string `toml:"name"`    // preset family: "default", "dracula", "nord", "gruvbox", "catppuccin", "none"
	Mode    string `toml:"mode"`    // "auto", "light" or "dark"
	Primary string `toml:"primary"` // active prompt symbol and bar
	Accent  string `toml:"accent"`  // highlighted list item
	Success string `toml:"success"` // submitted prompt symbol
	Error   string `toml:"error"`   // cancelled prompt symbol
	Muted   string `toml:"muted"`   // bars, hints, placeholders
	Normal  string `toml:"normal"`  // standard text
	Info    string `toml:"info"`    // info log symbol
	Warning string `toml:"warning"` // validation errors
	Symbols string `toml:"symbols"` // "unicode" or "ascii"
}

// SpinnerConfig holds spinner configuration
type SpinnerConfig struct {
	Style string `toml:"style"` // "clack" or a bubbles spinner name ("dot", "line", ...)
}

// PromptConfig holds prompt behaviour configuration
type PromptConfig struct {
	Mask string `toml:"mask"` // password mask glyph, single character
}

// Config holds the clack configuration
type Config struct {
	Theme   ThemeConfig   `toml:"theme"`
	Spinner SpinnerConfig `toml:"spinner"`
	Prompt  PromptConfig  `toml:"prompt"`
}

// envOverrides are read from CLACK_* environment variables and win over
// values from config files.
type envOverrides struct {
	Theme     string `envconfig:"THEME"`
	ThemeMode string `envconfig:"THEME_MODE"`
	Symbols   string `envconfig:"SYMBOLS"`
	Spinner   string `envconfig:"SPINNER"`
	Mask      string `envconfig:"MASK"`
}

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "clack"

// DefaultSpinnerStyle is the spinner used when none is configured
const DefaultSpinnerStyle = "clack"

// Default returns the default configuration
func Default() Config {
	return Config{
		Theme: ThemeConfig{
			Name:    "default",
			Mode:    "auto",
			Symbols: "unicode",
		},
		Spinner: SpinnerConfig{
			Style: DefaultSpinnerStyle,
		},
	}
}

// Path returns the path to the global config file
func Path() (string, error) {
	dir, err := storage.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads config from ~/.config/clack/config.toml.
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from the given path. A missing file yields the
// defaults. Environment overrides are not applied; see Resolve.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	fillDefaults(&cfg)
	return cfg, nil
}

// applyEnv overlays CLACK_* environment variables onto cfg
func applyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	if env.Theme != "" {
		cfg.Theme.Name = env.Theme
	}
	if env.ThemeMode != "" {
		cfg.Theme.Mode = env.ThemeMode
	}
	if env.Symbols != "" {
		cfg.Theme.Symbols = env.Symbols
	}
	if env.Spinner != "" {
		cfg.Spinner.Style = env.Spinner
	}
	if env.Mask != "" {
		cfg.Prompt.Mask = env.Mask
	}
	return nil
}

// fillDefaults replaces empty values with their defaults
func fillDefaults(cfg *Config) {
	def := Default()
	if cfg.Theme.Name == "" {
		cfg.Theme.Name = def.Theme.Name
	}
	if cfg.Theme.Mode == "" {
		cfg.Theme.Mode = def.Theme.Mode
	}
	if cfg.Theme.Symbols == "" {
		cfg.Theme.Symbols = def.Theme.Symbols
	}
	if cfg.Spinner.Style == "" {
		cfg.Spinner.Style = def.Spinner.Style
	}
}

// MaskRune returns the configured password mask, or 0 if none is set.
func (c *Config) MaskRune() rune {
	if c.Prompt.Mask == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.Prompt.Mask)
	return r
}

const defaultConfig = `# clack configuration

[theme]
# Color preset: default, dracula, nord, gruvbox, catppuccin, none
name = "default"

# Light/dark variant: auto (detect terminal background), light, dark
mode = "auto"

# Glyph set: unicode or ascii (for terminals without box drawing glyphs)
symbols = "unicode"

# Individual colors override the preset (ANSI number or hex)
# primary = "62"
# accent  = "212"
# success = "82"
# error   = "196"
# muted   = "240"
# normal  = "252"
# info    = "244"
# warning = "214"

[spinner]
# clack, dot, line, minidot, jump, pulse, points, globe, moon, monkey,
# meter, hamburger, ellipsis
style = "clack"

[prompt]
# Password mask glyph (defaults to the glyph set's mask)
# mask = "*"

# Every setting can be overridden from the environment:
#   CLACK_THEME, CLACK_THEME_MODE, CLACK_SYMBOLS, CLACK_SPINNER, CLACK_MASK
# A .clack.toml in the working directory overrides this file.
`

// DefaultTOML returns the commented default config file.
func DefaultTOML() string {
	return defaultConfig
}

// Init creates a default config file at ~/.config/clack/config.toml
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	return path, writeDefault(path, force)
}

func writeDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}
	}

	if err := storage.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
