package prompt

import (
	"errors"
	"io"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// keyMsg creates a tea.KeyPressMsg from a string key.
// Supports named keys like "enter", "up", "esc", "space", "ctrl+v" and
// single characters.
func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "home":
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case "end":
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "delete":
		return tea.KeyPressMsg{Code: tea.KeyDelete}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "ctrl+u":
		return tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl}
	case "ctrl+v":
		return tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl}
	default:
		r := []rune(key)
		if len(r) == 1 {
			return tea.KeyPressMsg{Code: r[0], Text: key}
		}
		return tea.KeyPressMsg{}
	}
}

// fakeTerminal replays scripted keys and records every frame.
type fakeTerminal struct {
	keys   []tea.KeyPressMsg
	frames []string
	prev   []int // prevLines passed with each frame
	width  int

	raw      bool
	entered  int
	left     int
	readErr  error
	writeErr error
}

func newFakeTerminal(keys ...string) *fakeTerminal {
	t := &fakeTerminal{}
	for _, k := range keys {
		t.keys = append(t.keys, keyMsg(k))
	}
	return t
}

func (t *fakeTerminal) ReadKey() (tea.KeyPressMsg, error) {
	if len(t.keys) == 0 {
		if t.readErr != nil {
			return tea.KeyPressMsg{}, t.readErr
		}
		return tea.KeyPressMsg{}, io.EOF
	}
	k := t.keys[0]
	t.keys = t.keys[1:]
	return k, nil
}

func (t *fakeTerminal) WriteFrame(text string, prevLines int) error {
	if t.writeErr != nil {
		return t.writeErr
	}
	t.frames = append(t.frames, ansi.Strip(text))
	t.prev = append(t.prev, prevLines)
	return nil
}

func (t *fakeTerminal) EnterRaw() error {
	t.raw = true
	t.entered++
	return nil
}

func (t *fakeTerminal) LeaveRaw() error {
	t.raw = false
	t.left++
	return nil
}

func (t *fakeTerminal) Width() int { return t.width }

// last returns the final frame.
func (t *fakeTerminal) last() string {
	if len(t.frames) == 0 {
		return ""
	}
	return t.frames[len(t.frames)-1]
}

// assertReleased fails the test if raw mode was not restored.
func (t *fakeTerminal) assertReleased(tb testing.TB) {
	tb.Helper()
	if t.raw || t.entered != t.left {
		tb.Errorf("raw mode not released: entered %d, left %d", t.entered, t.left)
	}
}

var errNotEmpty = errors.New("Value is required!")

func notEmpty(s string) error {
	if s == "" {
		return errNotEmpty
	}
	return nil
}
