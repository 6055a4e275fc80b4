package config

// MergeLocal merges a local per-directory config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global
	merged.Theme = mergeTheme(global.Theme, local.Theme)

	if local.Spinner.Style != "" {
		merged.Spinner.Style = local.Spinner.Style
	}
	if local.Prompt.Mask != "" {
		merged.Prompt.Mask = local.Prompt.Mask
	}

	return &merged
}

// mergeTheme replaces every theme field that is set locally.
func mergeTheme(global, local ThemeConfig) ThemeConfig {
	merged := global
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&merged.Name, local.Name},
		{&merged.Mode, local.Mode},
		{&merged.Primary, local.Primary},
		{&merged.Accent, local.Accent},
		{&merged.Success, local.Success},
		{&merged.Error, local.Error},
		{&merged.Muted, local.Muted},
		{&merged.Normal, local.Normal},
		{&merged.Info, local.Info},
		{&merged.Warning, local.Warning},
		{&merged.Symbols, local.Symbols},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
	return merged
}
