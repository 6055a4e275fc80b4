// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions, theme presets and the glyph
// set so that prompts, the spinner and log messages look the same.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Primary colors used throughout the UI
var (
	// Primary marks the active prompt: its step symbol and bar (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for the active list item (pink)
	Accent color.Color = lipgloss.Color("212")

	// Success marks submitted prompts and finished spinners (green)
	Success color.Color = lipgloss.Color("82")

	// Error marks cancelled prompts and failed spinners (red)
	Error color.Color = lipgloss.Color("196")

	// Muted is used for bars, hints and placeholders (gray)
	Muted color.Color = lipgloss.Color("240")

	// Info is used for informational log symbols (gray)
	Info color.Color = lipgloss.Color("244")

	// Warning is used for validation errors (orange)
	Warning color.Color = lipgloss.Color("214")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// PrimaryStyle applies the primary color
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// InfoStyle applies the info color
	InfoStyle = lipgloss.NewStyle().Foreground(Info)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
)

// Text decoration styles
var (
	// CursorStyle renders the character under the text cursor
	CursorStyle = lipgloss.NewStyle().Reverse(true)

	// StrikeStyle renders the value of a cancelled prompt
	StrikeStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Strikethrough(true)

	// HighlightStyle for highlighting fuzzy matched characters
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Underline(true)
)
