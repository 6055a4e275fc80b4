package prompt

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"
)

// Item is a selectable value with its label and an optional hint.
type Item[T comparable] struct {
	Value T
	Label string
	Hint  string
}

// itemSource implements fuzzy.Source over item labels.
type itemSource[T comparable] []Item[T]

func (s itemSource[T]) String(i int) string { return s[i].Label }
func (s itemSource[T]) Len() int            { return len(s) }

// list tracks the active item of a list prompt and its optional filter.
type list[T comparable] struct {
	items     []Item[T]
	visible   []int         // indices into items, best match first while filtering
	cursor    int           // index into visible
	matched   map[int][]int // label byte offsets the filter matched, by item
	filtering bool
	filter    editor
}

func newList[T comparable](items []Item[T], filtering bool, initial int) *list[T] {
	l := &list[T]{items: items, filtering: filtering}
	l.applyFilter()
	l.cursor = max(0, min(initial, len(l.visible)-1))
	return l
}

// indexOf returns the first item holding v, or 0.
func indexOf[T comparable](items []Item[T], v T) int {
	for i, it := range items {
		if it.Value == v {
			return i
		}
	}
	return 0
}

// active returns the index into items under the cursor.
// ok is false when the filter matches nothing.
func (l *list[T]) active() (int, bool) {
	if len(l.visible) == 0 {
		return 0, false
	}
	return l.visible[l.cursor], true
}

// handleKey moves the cursor and edits the filter. It reports whether
// the key was consumed.
func (l *list[T]) handleKey(msg tea.KeyPressMsg) (action, bool) {
	if l.filtering {
		switch {
		case key.Matches(msg, Keys.Backspace):
			if l.filter.backspace() {
				l.applyFilter()
				return actionEdit, true
			}
			return actionNone, true
		case msg.Text != "" && msg.Text != " " && msg.Mod&(tea.ModCtrl|tea.ModAlt) == 0:
			if l.filter.insert(msg.Text) {
				l.applyFilter()
				return actionEdit, true
			}
			return actionNone, true
		}
	}

	switch {
	case key.Matches(msg, Keys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
		return actionNone, true
	case key.Matches(msg, Keys.Down):
		if l.cursor < len(l.visible)-1 {
			l.cursor++
		}
		return actionNone, true
	}
	return actionNone, false
}

func (l *list[T]) applyFilter() {
	query := l.filter.String()
	l.visible = l.visible[:0]
	l.matched = nil
	if query == "" {
		for i := range l.items {
			l.visible = append(l.visible, i)
		}
	} else {
		l.matched = make(map[int][]int)
		for _, m := range fuzzy.FindFrom(query, itemSource[T](l.items)) {
			l.visible = append(l.visible, m.Index)
			l.matched[m.Index] = m.MatchedIndexes
		}
	}
	l.cursor = 0
}

// view fills the list fields of v. Once a multiple-choice answer is final
// every item is listed in order, so checked items hidden by the filter
// still appear in the answer.
func (l *list[T]) view(v View, checked map[int]bool) View {
	if checked != nil && v.State.Outcome != Active {
		v.Items = make([]ItemView, len(l.items))
		for i, it := range l.items {
			v.Items[i] = ItemView{Label: it.Label, Hint: it.Hint, Checked: checked[i]}
		}
		return v
	}

	v.Items = make([]ItemView, len(l.visible))
	for i, idx := range l.visible {
		it := l.items[idx]
		v.Items[i] = ItemView{Label: it.Label, Hint: it.Hint, Checked: checked[idx], Matched: l.matched[idx]}
	}
	v.Cursor = l.cursor
	v.Filtering = l.filtering
	v.Filter = l.filter.String()
	return v
}
