package config

import (
	"context"
	"fmt"
)

// configKey is the context key for the resolved Config
type configKey struct{}

// Resolve builds the effective config for dir: the global file at
// globalPath, then dir's .clack.toml, then CLACK_* environment overrides.
func Resolve(globalPath, dir string) (*Config, error) {
	global, err := LoadFile(globalPath)
	if err != nil {
		return nil, err
	}

	local, err := LoadLocal(dir)
	if err != nil {
		return nil, err
	}

	merged := *MergeLocal(&global, local)
	if err := applyEnv(&merged); err != nil {
		return nil, err
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("environment override: %w", err)
	}
	fillDefaults(&merged)

	return &merged, nil
}

// WithConfig returns a new context with the Config stored in it.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the Config from context.
// Returns the defaults if none is stored.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok {
		return cfg
	}
	def := Default()
	return &def
}
