// Package config handles loading and validation of clack configuration.
//
// Configuration is read from ~/.config/clack/config.toml, optionally
// overridden by a .clack.toml in the working directory and by environment
// variables.
//
// # Configuration Sources (highest priority first)
//
//   - CLACK_THEME, CLACK_THEME_MODE, CLACK_SYMBOLS, CLACK_SPINNER, CLACK_MASK
//   - .clack.toml in the working directory
//   - ~/.config/clack/config.toml
//   - Default values
//
// # Key Settings
//
//	[theme]
//	name = "nord"       # color preset family
//	mode = "auto"       # auto, light or dark
//	symbols = "ascii"   # glyph set for terminals without unicode glyphs
//	accent = "#ff79c6"  # any color can be overridden individually
//
//	[spinner]
//	style = "clack"     # or a bubbles spinner name such as "dot"
//
//	[prompt]
//	mask = "*"          # password mask glyph
//
// Unknown enum values are rejected with an error naming the allowed values.
package config
