package prompt

import (
	"strings"
	"unicode"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// editor is a single-line text buffer with a cursor counted in runes.
// The cursor is always within [0, len(buf)].
type editor struct {
	buf    []rune
	cursor int
}

func newEditor(text string) editor {
	buf := []rune(text)
	return editor{buf: buf, cursor: len(buf)}
}

func (e *editor) String() string { return string(e.buf) }

// insert adds s at the cursor, dropping control characters.
func (e *editor) insert(s string) bool {
	var add []rune
	for _, r := range s {
		if unicode.IsPrint(r) {
			add = append(add, r)
		}
	}
	if len(add) == 0 {
		return false
	}

	buf := make([]rune, 0, len(e.buf)+len(add))
	buf = append(buf, e.buf[:e.cursor]...)
	buf = append(buf, add...)
	buf = append(buf, e.buf[e.cursor:]...)
	e.buf = buf
	e.cursor += len(add)
	return true
}

// backspace deletes the rune before the cursor.
func (e *editor) backspace() bool {
	if e.cursor == 0 {
		return false
	}
	e.buf = append(e.buf[:e.cursor-1], e.buf[e.cursor:]...)
	e.cursor--
	return true
}

// del deletes the rune under the cursor.
func (e *editor) del() bool {
	if e.cursor >= len(e.buf) {
		return false
	}
	e.buf = append(e.buf[:e.cursor], e.buf[e.cursor+1:]...)
	return true
}

func (e *editor) clear() bool {
	if len(e.buf) == 0 {
		return false
	}
	e.buf = e.buf[:0]
	e.cursor = 0
	return true
}

func (e *editor) move(to int) {
	e.cursor = max(0, min(to, len(e.buf)))
}

// handleKey applies an editing key. Moving the cursor is not an edit.
func (e *editor) handleKey(msg tea.KeyPressMsg) action {
	switch {
	case key.Matches(msg, Keys.Backspace):
		return editAction(e.backspace())
	case key.Matches(msg, Keys.Delete):
		return editAction(e.del())
	case key.Matches(msg, Keys.ClearLine):
		return editAction(e.clear())
	case key.Matches(msg, Keys.Left):
		e.move(e.cursor - 1)
	case key.Matches(msg, Keys.Right):
		e.move(e.cursor + 1)
	case key.Matches(msg, Keys.Home):
		e.move(0)
	case key.Matches(msg, Keys.End):
		e.move(len(e.buf))
	case msg.Text != "" && msg.Mod&(tea.ModCtrl|tea.ModAlt) == 0:
		return editAction(e.insert(msg.Text))
	}
	return actionNone
}

// firstLine returns s up to the first line break.
func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}

func editAction(changed bool) action {
	if changed {
		return actionEdit
	}
	return actionNone
}
