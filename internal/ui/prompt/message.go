package prompt

import (
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/clack/internal/terminal"
	"github.com/raphi011/clack/internal/ui/styles"
)

// Messages prints the non-interactive parts of a prompt session.
type Messages struct {
	w     io.Writer
	theme Clack
}

// NewMessages returns a Messages writing to w.
func NewMessages(w io.Writer) *Messages {
	return &Messages{w: w}
}

// Log writes session messages to stderr.
var Log = NewMessages(terminal.Output())

func (m *Messages) write(s string) error {
	_, err := io.WriteString(m.w, s)
	return err
}

// Intro prints the session header.
func (m *Messages) Intro(title string) error { return m.write(m.theme.Intro(title)) }

// Outro prints the session footer.
func (m *Messages) Outro(msg string) error { return m.write(m.theme.Outro(msg)) }

// OutroCancel prints the footer of an aborted session.
func (m *Messages) OutroCancel(msg string) error { return m.write(m.theme.OutroCancel(msg)) }

// Note prints msg in a titled box.
func (m *Messages) Note(title, msg string) error { return m.write(m.theme.Note(title, msg)) }

func (m *Messages) Remark(msg string) error {
	return m.write(m.theme.Log(msg, styles.MutedStyle.Render(styles.CurrentSymbols().Bar)))
}

func (m *Messages) Info(msg string) error {
	return m.write(m.theme.Log(msg, styles.InfoStyle.Render(styles.CurrentSymbols().Info)))
}

func (m *Messages) Warning(msg string) error {
	return m.write(m.theme.Log(msg, styles.WarningStyle.Render(styles.CurrentSymbols().Warning)))
}

func (m *Messages) Error(msg string) error {
	return m.write(m.theme.Log(msg, styles.ErrorStyle.Render(styles.CurrentSymbols().Error)))
}

func (m *Messages) Success(msg string) error {
	return m.write(m.theme.Log(msg, styles.SuccessStyle.Render(styles.CurrentSymbols().Success)))
}

// Step prints a completed step, drawn like a submitted prompt.
func (m *Messages) Step(msg string) error {
	return m.write(m.theme.Log(msg, styles.SuccessStyle.Render(styles.CurrentSymbols().StepSubmit)))
}

// ClearScreen erases the screen and moves the cursor home.
func (m *Messages) ClearScreen() error {
	return m.write(ansi.EraseEntireScreen + ansi.CursorHomePosition)
}

// Intro prints the session header to stderr.
func Intro(title string) error { return Log.Intro(title) }

// Outro prints the session footer to stderr.
func Outro(msg string) error { return Log.Outro(msg) }

// OutroCancel prints the footer of an aborted session to stderr.
func OutroCancel(msg string) error { return Log.OutroCancel(msg) }

// Note prints msg in a titled box to stderr.
func Note(title, msg string) error { return Log.Note(title, msg) }

// ClearScreen clears the terminal.
func ClearScreen() error { return Log.ClearScreen() }
