// Package progress provides progress indication for long-running work.
//
// A Spinner animates a single line below the prompt bar while the caller
// does its work, then replaces it with a final success or failure line.
// The animation runs on its own goroutine; the caller must not write to
// the same terminal until the spinner is stopped.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"charm.land/bubbles/v2/spinner"
	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"go.uber.org/atomic"

	"github.com/raphi011/clack/internal/ui/styles"
)

// State is the lifecycle stage of a Spinner.
type State int

const (
	Stopped State = iota
	Running
	Failed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Failed:
		return "failed"
	default:
		return "stopped"
	}
}

// ClackInterval is the frame interval of the default spinner.
const ClackInterval = 80 * time.Millisecond

// Option configures a Spinner.
type Option func(*Spinner)

// WithClock sets the clock driving the animation.
func WithClock(c clock.Clock) Option {
	return func(s *Spinner) { s.clock = c }
}

// WithStyle sets the animation frames and interval.
func WithStyle(style spinner.Spinner) Option {
	return func(s *Spinner) { s.style = style }
}

// WithSymbols sets the glyphs for the bar and the final line.
func WithSymbols(sym styles.Symbols) Option {
	return func(s *Spinner) { s.symbols = sym }
}

// Spinner shows an indeterminate progress animation.
type Spinner struct {
	out     io.Writer
	clock   clock.Clock
	style   spinner.Spinner
	symbols styles.Symbols
	animate bool

	frame atomic.Int64

	mu      sync.Mutex
	state   State
	message string
	stop    chan struct{}
	done    chan struct{}
}

// NewSpinner returns a stopped spinner writing to out. When out is not a
// terminal the spinner prints its start and final lines without animating.
func NewSpinner(out io.Writer, opts ...Option) *Spinner {
	sym := styles.CurrentSymbols()
	s := &Spinner{
		out:     out,
		clock:   clock.New(),
		symbols: sym,
		style:   ClackStyle(sym),
		animate: isTerminal(out),
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.style.Frames) == 0 {
		s.style = ClackStyle(s.symbols)
	}
	if s.style.FPS <= 0 {
		s.style.FPS = ClackInterval
	}
	return s
}

// ClackStyle returns the default animation for a glyph set.
func ClackStyle(sym styles.Symbols) spinner.Spinner {
	return spinner.Spinner{Frames: sym.SpinnerFrames, FPS: ClackInterval}
}

// styleNames maps config names to animations.
var styleNames = map[string]spinner.Spinner{
	"dot":       spinner.Dot,
	"line":      spinner.Line,
	"minidot":   spinner.MiniDot,
	"jump":      spinner.Jump,
	"pulse":     spinner.Pulse,
	"points":    spinner.Points,
	"globe":     spinner.Globe,
	"moon":      spinner.Moon,
	"monkey":    spinner.Monkey,
	"meter":     spinner.Meter,
	"hamburger": spinner.Hamburger,
	"ellipsis":  spinner.Ellipsis,
}

// StyleByName returns the animation for a spinner.style config value.
// "clack" and unknown names return the default for the current glyph set.
func StyleByName(name string) spinner.Spinner {
	if style, ok := styleNames[name]; ok {
		return style
	}
	return ClackStyle(styles.CurrentSymbols())
}

// Start shows msg next to the animation. It does nothing if the spinner
// is already running.
func (s *Spinner) Start(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Running {
		return
	}
	s.state = Running
	s.message = msg
	s.frame.Store(0)

	fmt.Fprintln(s.out, styles.MutedStyle.Render(s.symbols.Bar))
	if s.animate {
		fmt.Fprint(s.out, ansi.HideCursor)
		s.draw()
	} else {
		fmt.Fprintf(s.out, "%s  %s\n", s.glyph(), msg)
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.spin(s.clock.Ticker(s.style.FPS), s.stop, s.done)
}

// SetMessage replaces the message while running.
func (s *Spinner) SetMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.message = msg
	if s.state == Running && s.animate {
		s.draw()
	}
}

// Stop ends the animation and prints msg as a success.
func (s *Spinner) Stop(msg string) {
	s.finish(Stopped, styles.SuccessStyle.Render(s.symbols.StepSubmit), msg)
}

// Error ends the animation and prints msg as a failure.
func (s *Spinner) Error(msg string) {
	s.finish(Failed, styles.ErrorStyle.Render(s.symbols.StepCancel), msg)
}

// finish waits for the worker to exit so no frame is drawn after the
// final line.
func (s *Spinner) finish(state State, glyph, msg string) {
	s.mu.Lock()
	if s.state != Running {
		s.mu.Unlock()
		return
	}
	s.state = state
	stop, done := s.stop, s.done
	s.mu.Unlock()

	close(stop)
	<-done

	s.mu.Lock()
	defer s.mu.Unlock()

	s.message = msg
	if s.animate {
		fmt.Fprint(s.out, "\r"+ansi.EraseEntireLine)
	}
	fmt.Fprintf(s.out, "%s  %s\n", glyph, msg)
	if s.animate {
		fmt.Fprint(s.out, ansi.ShowCursor)
	}
}

// Frame returns the index of the current animation frame.
func (s *Spinner) Frame() int64 {
	return s.frame.Load()
}

// State returns the lifecycle stage.
func (s *Spinner) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Message returns the current message.
func (s *Spinner) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

func (s *Spinner) spin(ticker *clock.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.state == Running {
				s.frame.Inc()
				if s.animate {
					s.draw()
				}
			}
			s.mu.Unlock()
		}
	}
}

// draw overwrites the spinner line. Callers hold mu.
func (s *Spinner) draw() {
	fmt.Fprintf(s.out, "\r%s%s  %s", ansi.EraseEntireLine, s.glyph(), s.message)
}

func (s *Spinner) glyph() string {
	frames := s.style.Frames
	return styles.PrimaryStyle.Render(frames[int(s.frame.Load())%len(frames)])
}

// isTerminal reports whether w writes to a TTY.
func isTerminal(w io.Writer) bool {
	if cw, ok := w.(*colorprofile.Writer); ok {
		w = cw.Forward
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
