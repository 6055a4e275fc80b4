package prompt

import "charm.land/bubbles/v2/key"

// KeyMap holds the key bindings shared by the prompts.
type KeyMap struct {
	Submit key.Binding
	Cancel key.Binding

	// Lists
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding

	// Confirm
	Yes    key.Binding
	No     key.Binding
	Switch key.Binding

	// Text editing
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Backspace key.Binding
	Delete    key.Binding
	ClearLine key.Binding
	Paste     key.Binding
}

// Keys is the active key map.
var Keys = DefaultKeyMap()

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle")),
		ToggleAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle all")),

		Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:     key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
		Switch: key.NewBinding(key.WithKeys("left", "right", "tab", "h", "l"), key.WithHelp("←/→", "switch")),

		Left:      key.NewBinding(key.WithKeys("left", "ctrl+b")),
		Right:     key.NewBinding(key.WithKeys("right", "ctrl+f")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d")),
		ClearLine: key.NewBinding(key.WithKeys("ctrl+u")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v")),
	}
}

// ListHelp returns the bindings shown in list prompt help.
func (k KeyMap) ListHelp(multi bool) []key.Binding {
	if multi {
		return []key.Binding{k.Up, k.Down, k.Toggle, k.ToggleAll, k.Submit, k.Cancel}
	}
	return []key.Binding{k.Up, k.Down, k.Submit, k.Cancel}
}
