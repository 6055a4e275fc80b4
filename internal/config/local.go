package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-directory override file.
const LocalConfigFileName = ".clack.toml"

// LocalConfig holds per-directory configuration overrides from .clack.toml.
// Zero-value strings indicate "not set" (inherit from global).
type LocalConfig struct {
	Theme   ThemeConfig   `toml:"theme"`
	Spinner SpinnerConfig `toml:"spinner"`
	Prompt  PromptConfig  `toml:"prompt"`
}

// LoadLocal reads a .clack.toml config from the given directory.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(dir string) (*LocalConfig, error) {
	configFile := filepath.Join(dir, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	// Validation only looks at the fields that are set
	check := Config{Theme: local.Theme, Spinner: local.Spinner, Prompt: local.Prompt}
	if err := check.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configFile, err)
	}

	return &local, nil
}
