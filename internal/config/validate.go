package config

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Valid enum values for configuration fields.
var (
	ValidThemeNames    = []string{"default", "dracula", "nord", "gruvbox", "catppuccin", "none"}
	ValidThemeModes    = []string{"auto", "light", "dark"}
	ValidSymbolSets    = []string{"unicode", "ascii"}
	ValidSpinnerStyles = []string{
		"clack", "dot", "line", "minidot", "jump", "pulse", "points",
		"globe", "moon", "monkey", "meter", "hamburger", "ellipsis",
	}
)

// Validate checks enum fields and the password mask.
func (c *Config) Validate() error {
	if err := validateEnum(c.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return err
	}
	if err := validateEnum(c.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		return err
	}
	if err := validateEnum(c.Theme.Symbols, "theme.symbols", ValidSymbolSets); err != nil {
		return err
	}
	if err := validateEnum(c.Spinner.Style, "spinner.style", ValidSpinnerStyles); err != nil {
		return err
	}
	if n := utf8.RuneCountInString(c.Prompt.Mask); n > 1 {
		return fmt.Errorf("invalid prompt.mask %q: must be a single character", c.Prompt.Mask)
	}
	return nil
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
