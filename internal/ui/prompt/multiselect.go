package prompt

import (
	"errors"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// errNoneSelected is the validation failure of a required MultiSelect.
var errNoneSelected = errors.New("Please select at least one option.")

// MultiSelect asks for any number of items from a list. The result keeps
// the order of the items, not the order they were checked in.
type MultiSelect[T comparable] struct {
	prompt   string
	items    []Item[T]
	initial  []T
	required bool
	filter   bool
	validate Validator[[]T]
	format   Formatter
}

// NewMultiSelect returns an empty multiple-choice prompt.
func NewMultiSelect[T comparable](prompt string) *MultiSelect[T] {
	return &MultiSelect[T]{prompt: prompt}
}

// Item appends an item. The hint is shown only while the item is active.
func (m *MultiSelect[T]) Item(value T, label, hint string) *MultiSelect[T] {
	m.items = append(m.items, Item[T]{Value: value, Label: label, Hint: hint})
	return m
}

// Items appends several items.
func (m *MultiSelect[T]) Items(items ...Item[T]) *MultiSelect[T] {
	m.items = append(m.items, items...)
	return m
}

// InitialValues pre-checks every item holding one of vs.
func (m *MultiSelect[T]) InitialValues(vs ...T) *MultiSelect[T] {
	m.initial = append(m.initial, vs...)
	return m
}

// Required rejects an empty submission.
func (m *MultiSelect[T]) Required(on bool) *MultiSelect[T] {
	m.required = on
	return m
}

// Filter enables narrowing the list by typing.
func (m *MultiSelect[T]) Filter(on bool) *MultiSelect[T] {
	m.filter = on
	return m
}

// Validate sets an extra check run on every submission.
func (m *MultiSelect[T]) Validate(fn Validator[[]T]) *MultiSelect[T] {
	m.validate = fn
	return m
}

// Formatter sets how frames are drawn.
func (m *MultiSelect[T]) Formatter(f Formatter) *MultiSelect[T] {
	m.format = f
	return m
}

// Interact runs the prompt on the process terminal.
func (m *MultiSelect[T]) Interact() ([]T, error) {
	if len(m.items) == 0 {
		return nil, ErrNoItems
	}
	return interact(m.Run)
}

// Run runs the prompt on t.
func (m *MultiSelect[T]) Run(t Terminal) ([]T, error) {
	if len(m.items) == 0 {
		return nil, ErrNoItems
	}

	checked := make(map[int]bool)
	for _, v := range m.initial {
		for i, it := range m.items {
			if it.Value == v {
				checked[i] = true
			}
		}
	}

	p := &multiSelectPrompt[T]{
		prompt:   m.prompt,
		list:     newList(m.items, m.filter, 0),
		checked:  checked,
		required: m.required,
	}
	return run[[]T](t, m.format, p, m.validate)
}

type multiSelectPrompt[T comparable] struct {
	prompt   string
	list     *list[T]
	checked  map[int]bool
	required bool
}

func (p *multiSelectPrompt[T]) handleKey(msg tea.KeyPressMsg) action {
	switch {
	case key.Matches(msg, Keys.Submit):
		return actionSubmit
	case key.Matches(msg, Keys.Toggle):
		idx, ok := p.list.active()
		if !ok {
			return actionNone
		}
		p.checked[idx] = !p.checked[idx]
		return actionEdit
	case !p.list.filtering && key.Matches(msg, Keys.ToggleAll):
		p.toggleAll()
		return actionEdit
	}
	act, _ := p.list.handleKey(msg)
	return act
}

// toggleAll checks every visible item, or unchecks them if all are checked.
func (p *multiSelectPrompt[T]) toggleAll() {
	all := true
	for _, idx := range p.list.visible {
		if !p.checked[idx] {
			all = false
			break
		}
	}
	for _, idx := range p.list.visible {
		p.checked[idx] = !all
	}
}

func (p *multiSelectPrompt[T]) value() ([]T, error) {
	var vs []T
	for i, it := range p.list.items {
		if p.checked[i] {
			vs = append(vs, it.Value)
		}
	}
	if p.required && len(vs) == 0 {
		return nil, errNoneSelected
	}
	return vs, nil
}

func (p *multiSelectPrompt[T]) view(st State) View {
	return p.list.view(View{Kind: KindMultiSelect, Prompt: p.prompt, State: st}, p.checked)
}
