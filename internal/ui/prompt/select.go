package prompt

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Select asks for one item from a list.
type Select[T comparable] struct {
	prompt     string
	items      []Item[T]
	initial    T
	hasInitial bool
	filter     bool
	format     Formatter
}

// NewSelect returns an empty single-choice prompt.
func NewSelect[T comparable](prompt string) *Select[T] {
	return &Select[T]{prompt: prompt}
}

// Item appends an item. The hint is shown only while the item is active.
func (s *Select[T]) Item(value T, label, hint string) *Select[T] {
	s.items = append(s.items, Item[T]{Value: value, Label: label, Hint: hint})
	return s
}

// Items appends several items.
func (s *Select[T]) Items(items ...Item[T]) *Select[T] {
	s.items = append(s.items, items...)
	return s
}

// InitialValue makes the first item holding v active.
// The first item stays active when none matches.
func (s *Select[T]) InitialValue(v T) *Select[T] {
	s.initial = v
	s.hasInitial = true
	return s
}

// Filter enables narrowing the list by typing. While filtering, letters
// go to the filter so only the arrow keys navigate.
func (s *Select[T]) Filter(on bool) *Select[T] {
	s.filter = on
	return s
}

// Formatter sets how frames are drawn.
func (s *Select[T]) Formatter(f Formatter) *Select[T] {
	s.format = f
	return s
}

// Interact runs the prompt on the process terminal.
func (s *Select[T]) Interact() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrNoItems
	}
	return interact(s.Run)
}

// Run runs the prompt on t.
func (s *Select[T]) Run(t Terminal) (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrNoItems
	}
	initial := 0
	if s.hasInitial {
		initial = indexOf(s.items, s.initial)
	}
	p := &selectPrompt[T]{
		prompt: s.prompt,
		list:   newList(s.items, s.filter, initial),
	}
	return run[T](t, s.format, p, nil)
}

type selectPrompt[T comparable] struct {
	prompt string
	list   *list[T]
}

func (p *selectPrompt[T]) handleKey(msg tea.KeyPressMsg) action {
	if key.Matches(msg, Keys.Submit) {
		if _, ok := p.list.active(); !ok {
			return actionNone
		}
		return actionSubmit
	}
	act, _ := p.list.handleKey(msg)
	return act
}

func (p *selectPrompt[T]) value() (T, error) {
	idx, _ := p.list.active()
	return p.list.items[idx].Value, nil
}

func (p *selectPrompt[T]) view(st State) View {
	return p.list.view(View{Kind: KindSelect, Prompt: p.prompt, State: st}, nil)
}
