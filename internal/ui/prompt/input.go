package prompt

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
)

// Input prompts for a single line of text and parses it into V.
type Input[V any] struct {
	prompt      string
	placeholder string
	initial     string
	parse       func(string) (V, error)
	validate    Validator[V]
	paste       func() (string, error)
	format      Formatter
}

// NewInput returns a text prompt whose value is the typed string.
func NewInput(prompt string) *Input[string] {
	return NewParsedInput(prompt, func(s string) (string, error) { return s, nil })
}

// NewParsedInput returns a text prompt that converts the typed text with
// parse. A parse error is shown like a validation error.
func NewParsedInput[V any](prompt string, parse func(string) (V, error)) *Input[V] {
	return &Input[V]{
		prompt: prompt,
		parse:  parse,
		paste:  clipboard.ReadAll,
	}
}

// Placeholder sets the hint shown while the input is empty.
// It is never part of the value.
func (i *Input[V]) Placeholder(s string) *Input[V] {
	i.placeholder = s
	return i
}

// Default pre-fills the input with s.
func (i *Input[V]) Default(s string) *Input[V] {
	i.initial = s
	return i
}

// Validate sets the check run on every submission.
func (i *Input[V]) Validate(fn Validator[V]) *Input[V] {
	i.validate = fn
	return i
}

// Paste sets the source read by ctrl+v. Nil disables pasting.
func (i *Input[V]) Paste(fn func() (string, error)) *Input[V] {
	i.paste = fn
	return i
}

// Formatter sets how frames are drawn.
func (i *Input[V]) Formatter(f Formatter) *Input[V] {
	i.format = f
	return i
}

// Interact runs the prompt on the process terminal.
func (i *Input[V]) Interact() (V, error) {
	return interact(i.Run)
}

// Run runs the prompt on t.
func (i *Input[V]) Run(t Terminal) (V, error) {
	p := &textPrompt[V]{
		kind:        KindInput,
		prompt:      i.prompt,
		placeholder: i.placeholder,
		ed:          newEditor(i.initial),
		parse:       i.parse,
		paste:       i.paste,
	}
	return run[V](t, i.format, p, i.validate)
}

// textPrompt is the variant behind Input and Password.
type textPrompt[V any] struct {
	kind        Kind
	prompt      string
	placeholder string
	mask        rune
	ed          editor
	parse       func(string) (V, error)
	paste       func() (string, error)
}

func (p *textPrompt[V]) handleKey(msg tea.KeyPressMsg) action {
	switch {
	case key.Matches(msg, Keys.Submit):
		return actionSubmit
	case key.Matches(msg, Keys.Paste):
		if p.paste == nil {
			return actionNone
		}
		text, err := p.paste()
		if err != nil {
			return actionNone
		}
		return editAction(p.ed.insert(firstLine(text)))
	}
	return p.ed.handleKey(msg)
}

func (p *textPrompt[V]) value() (V, error) {
	return p.parse(p.ed.String())
}

func (p *textPrompt[V]) view(st State) View {
	return View{
		Kind:        p.kind,
		Prompt:      p.prompt,
		State:       st,
		Text:        p.ed.String(),
		Cursor:      p.ed.cursor,
		Placeholder: p.placeholder,
		Mask:        p.mask,
	}
}
