package prompt

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Kind identifies the prompt variant that produced a View.
type Kind int

const (
	KindInput Kind = iota
	KindPassword
	KindConfirm
	KindSelect
	KindMultiSelect
)

// ItemView is a list item as handed to the formatter.
type ItemView struct {
	Label   string
	Hint    string
	Checked bool

	// Matched holds the byte offsets into Label of the runes the filter
	// matched.
	Matched []int
}

// View is everything a Formatter needs to draw one frame.
type View struct {
	Kind   Kind
	Prompt string
	State  State

	// Input and Password
	Text        string
	Placeholder string
	Mask        rune // Password only

	// Confirm
	Confirmed bool

	// Select and MultiSelect. Items holds the visible items while the
	// prompt is active, and every item once a MultiSelect is final.
	Items     []ItemView
	Filter    string
	Filtering bool

	// Cursor is the rune offset into Text, or the active index into Items.
	Cursor int

	// Width is the terminal width in columns, 0 if unknown.
	Width int
}

// Frame is formatted prompt text and the number of terminal rows it covers.
type Frame struct {
	Text  string
	Lines int
}

// NewFrame counts the rows text covers on a terminal width columns wide,
// counting wrapped lines by display width. Text should end in a newline
// so the next frame starts on a fresh row. Width 0 disables wrapping.
func NewFrame(text string, width int) Frame {
	if text == "" {
		return Frame{}
	}

	lines := 0
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		w := runewidth.StringWidth(ansi.Strip(line))
		if width <= 0 || w <= width {
			lines++
			continue
		}
		lines += (w + width - 1) / width
	}
	return Frame{Text: text, Lines: lines}
}
