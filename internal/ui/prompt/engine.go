package prompt

import (
	"errors"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/multierr"
)

var (
	// ErrCancelled is returned when the user presses esc.
	ErrCancelled = errors.New("prompt cancelled")

	// ErrNoItems is returned by list prompts that have nothing to choose from.
	ErrNoItems = errors.New("prompt has no items")
)

// Outcome is the lifecycle stage of a prompt.
type Outcome int

const (
	Active Outcome = iota
	Submitted
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Submitted:
		return "submitted"
	case Cancelled:
		return "cancelled"
	default:
		return "active"
	}
}

// State is the part of a prompt's state owned by the loop.
type State struct {
	Outcome Outcome
	Error   string // last validation failure, cleared on the next edit
}

// Validator checks a submitted value. A non-nil error keeps the prompt
// active and its message is shown under the input.
type Validator[V any] func(V) error

// Terminal reads keys and draws frames.
type Terminal interface {
	ReadKey() (tea.KeyPressMsg, error)
	// WriteFrame erases the prevLines rows of the last frame and writes text.
	WriteFrame(text string, prevLines int) error
	EnterRaw() error
	LeaveRaw() error
	// Width is the terminal width in columns, 0 if unknown.
	Width() int
}

// Formatter renders a prompt view into a frame. Every prompt uses Clack
// unless another Formatter is set on it.
type Formatter interface {
	Format(View) Frame
}

// action is what a variant asks of the loop after a key press.
type action int

const (
	actionNone   action = iota
	actionEdit          // value changed, clears the validation error
	actionSubmit        // value should be validated and submitted
)

// variant is implemented by each prompt kind.
type variant[V any] interface {
	handleKey(tea.KeyPressMsg) action
	// value returns the candidate result; an error is a validation failure.
	value() (V, error)
	view(State) View
}

// step applies one key press to the loop state. The returned value is
// only meaningful once the outcome is Submitted.
func step[V any](st State, msg tea.KeyPressMsg, v variant[V], validate Validator[V]) (State, V) {
	var zero V

	if key.Matches(msg, Keys.Cancel) {
		st.Outcome = Cancelled
		return st, zero
	}

	switch v.handleKey(msg) {
	case actionEdit:
		st.Error = ""
	case actionSubmit:
		val, err := v.value()
		if err == nil && validate != nil {
			err = validate(val)
		}
		if err != nil {
			st.Error = err.Error()
			return st, zero
		}
		st.Error = ""
		st.Outcome = Submitted
		return st, val
	}
	return st, zero
}

// run drives v until it is submitted or cancelled. Raw mode is held for
// the whole loop and released on every return path. A nil f means Clack.
func run[V any](t Terminal, f Formatter, v variant[V], validate Validator[V]) (result V, err error) {
	var zero V
	if f == nil {
		f = Clack{}
	}

	if err := t.EnterRaw(); err != nil {
		return zero, err
	}
	defer func() {
		err = multierr.Append(err, t.LeaveRaw())
	}()

	var (
		st   State
		prev int
	)
	draw := func() error {
		view := v.view(st)
		view.Width = t.Width()
		frame := f.Format(view)
		if err := t.WriteFrame(frame.Text, prev); err != nil {
			return err
		}
		prev = frame.Lines
		return nil
	}

	for st.Outcome == Active {
		if err := draw(); err != nil {
			return zero, err
		}
		msg, err := t.ReadKey()
		if err != nil {
			return zero, err
		}
		st, result = step(st, msg, v, validate)
	}

	// The terminal frame replaces the last active one and stays on screen
	if err := draw(); err != nil {
		return zero, err
	}

	if st.Outcome == Cancelled {
		return zero, ErrCancelled
	}
	return result, nil
}
