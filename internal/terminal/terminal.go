package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"

	tea "charm.land/bubbletea/v2"
)

var (
	// ErrNotTerminal is returned by Open when stdin is not an interactive terminal.
	ErrNotTerminal = errors.New("not an interactive terminal")

	// ErrInterrupted is returned by ReadKey when the user presses ctrl+c.
	ErrInterrupted = errors.New("interrupted")
)

// noFd marks a TTY without a file descriptor (tests, pipes).
const noFd = ^uintptr(0)

// TTY reads key presses and writes frames.
type TTY struct {
	in    io.Reader
	out   io.Writer
	inFd  uintptr
	outFd uintptr

	state *term.State
	raw   bool

	input   *stream
	partial []byte // bytes of a U+FFFD being reassembled
}

// stream is one run of a uv.TerminalReader over the input. err is set
// before done is closed.
type stream struct {
	in     cancelReader
	events chan uv.Event
	done   chan struct{}
	stop   context.CancelFunc
	err    error
}

// cancelReader is the subset of cancelreader.CancelReader used here.
type cancelReader interface {
	io.ReadCloser
	Cancel() bool
}

// Open returns a TTY reading stdin and writing stderr.
// Returns ErrNotTerminal if stdin is not a terminal or TERM is "dumb".
func Open() (*TTY, error) {
	if !IsInteractive() {
		return nil, ErrNotTerminal
	}
	return &TTY{
		in:    os.Stdin,
		out:   colorprofile.NewWriter(os.Stderr, os.Environ()),
		inFd:  os.Stdin.Fd(),
		outFd: os.Stderr.Fd(),
	}, nil
}

// New returns a TTY over arbitrary streams. Raw mode only toggles the
// cursor and Width reports 0.
func New(in io.Reader, out io.Writer) *TTY {
	return &TTY{in: in, out: out, inFd: noFd, outFd: noFd}
}

// IsInteractive reports whether stdin is a terminal that can run prompts.
func IsInteractive() bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Output returns a writer to stderr that honors the terminal's color profile.
func Output() io.Writer {
	return colorprofile.NewWriter(os.Stderr, os.Environ())
}

// EnterRaw puts the terminal in raw mode and hides the cursor.
func (t *TTY) EnterRaw() error {
	if t.raw {
		return nil
	}
	if t.inFd != noFd {
		state, err := term.MakeRaw(t.inFd)
		if err != nil {
			return fmt.Errorf("enable raw mode: %w", err)
		}
		t.state = state
	}
	t.raw = true
	_, err := io.WriteString(t.out, ansi.HideCursor)
	return err
}

// LeaveRaw stops reading input, shows the cursor and restores the
// terminal mode saved by EnterRaw.
func (t *TTY) LeaveRaw() error {
	if !t.raw {
		return nil
	}
	t.raw = false
	t.stopReading()

	_, err := io.WriteString(t.out, ansi.ShowCursor)
	if t.state != nil {
		state := t.state
		t.state = nil
		if rerr := term.Restore(t.inFd, state); rerr != nil {
			return fmt.Errorf("restore terminal: %w", rerr)
		}
	}
	return err
}

// Width returns the terminal width in columns, or 0 if unknown.
func (t *TTY) Width() int {
	if t.outFd == noFd {
		return 0
	}
	w, _, err := term.GetSize(t.outFd)
	if err != nil {
		return 0
	}
	return w
}

// WriteFrame erases the prevLines rows written by the last frame and
// writes text in their place. Text is expected to end with a newline.
func (t *TTY) WriteFrame(text string, prevLines int) error {
	var b strings.Builder
	if prevLines > 0 {
		b.WriteString(ansi.CursorUp(prevLines))
		b.WriteByte('\r')
		b.WriteString(ansi.EraseScreenBelow)
	}
	// Raw mode disables output post-processing, so LF alone doesn't return the carriage
	b.WriteString(strings.ReplaceAll(text, "\n", "\r\n"))

	if _, err := io.WriteString(t.out, b.String()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// ReadKey blocks until the next key press. Events other than key presses
// (focus reports, unknown sequences) are skipped.
func (t *TTY) ReadKey() (tea.KeyPressMsg, error) {
	if err := t.startReading(); err != nil {
		return tea.KeyPressMsg{}, err
	}
	s := t.input
	for {
		select {
		case ev := <-s.events:
			if u, ok := ev.(uv.UnknownEvent); ok && t.replacement(u) {
				return tea.KeyPressMsg{Code: utf8.RuneError, Text: string(utf8.RuneError)}, nil
			}
			k, ok := ev.(uv.KeyPressEvent)
			if !ok {
				continue
			}
			t.partial = nil
			msg := tea.KeyPressMsg(k)
			if isInterrupt(msg) {
				return tea.KeyPressMsg{}, ErrInterrupted
			}
			return msg, nil
		case <-s.done:
			if s.err != nil {
				return tea.KeyPressMsg{}, fmt.Errorf("read key: %w", s.err)
			}
			return tea.KeyPressMsg{}, fmt.Errorf("read key: %w", io.ErrUnexpectedEOF)
		}
	}
}

// replacement reports whether ev completes a typed U+FFFD. The decoder
// cannot tell it from invalid UTF-8 and reports each of its bytes as an
// unknown event holding that byte as a rune.
func (t *TTY) replacement(ev uv.UnknownEvent) bool {
	var b byte
	if rs := []rune(string(ev)); len(ev) == 1 {
		b = ev[0]
	} else if len(rs) == 1 && rs[0] <= 0xff {
		b = byte(rs[0])
	}
	if b < utf8.RuneSelf {
		t.partial = nil
		return false
	}
	t.partial = append(t.partial, b)
	if !utf8.FullRune(t.partial) {
		return false
	}
	ok := string(t.partial) == string(utf8.RuneError)
	t.partial = nil
	return ok
}

// startReading starts the decoder on first use. It runs after raw mode
// is entered so the terminal delivers keys unbuffered.
func (t *TTY) startReading() error {
	if t.input != nil {
		return nil
	}
	in, err := uv.NewCancelReader(t.in)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &stream{
		in:     in,
		events: make(chan uv.Event),
		done:   make(chan struct{}),
		stop:   cancel,
	}
	r := uv.NewTerminalReader(in, os.Getenv("TERM"))
	go func() {
		s.err = r.StreamEvents(ctx, s.events)
		close(s.done)
	}()

	t.input = s
	return nil
}

// stopReading cancels the pending read so the next prompt gets every key.
// Events decoded after the cancel are discarded.
func (t *TTY) stopReading() {
	s := t.input
	if s == nil {
		return
	}
	t.input = nil
	t.partial = nil

	s.stop()
	s.in.Cancel()
	go func() {
		for {
			select {
			case <-s.events:
			case <-s.done:
				s.in.Close()
				return
			}
		}
	}()
}

func isInterrupt(k tea.KeyPressMsg) bool {
	return k.Code == 'c' && k.Mod == tea.ModCtrl
}
