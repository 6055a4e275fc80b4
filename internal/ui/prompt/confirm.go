package prompt

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Confirm asks a yes/no question. y and n answer without enter.
type Confirm struct {
	prompt  string
	initial bool
	format  Formatter
}

// NewConfirm returns a confirm prompt defaulting to yes.
func NewConfirm(prompt string) *Confirm {
	return &Confirm{prompt: prompt, initial: true}
}

// InitialValue sets the preselected answer.
func (c *Confirm) InitialValue(v bool) *Confirm {
	c.initial = v
	return c
}

// Formatter sets how frames are drawn.
func (c *Confirm) Formatter(f Formatter) *Confirm {
	c.format = f
	return c
}

// Interact runs the prompt on the process terminal.
func (c *Confirm) Interact() (bool, error) {
	return interact(c.Run)
}

// Run runs the prompt on t.
func (c *Confirm) Run(t Terminal) (bool, error) {
	return run[bool](t, c.format, &confirmPrompt{prompt: c.prompt, yes: c.initial}, nil)
}

type confirmPrompt struct {
	prompt string
	yes    bool
}

func (p *confirmPrompt) handleKey(msg tea.KeyPressMsg) action {
	switch {
	case key.Matches(msg, Keys.Yes):
		p.yes = true
		return actionSubmit
	case key.Matches(msg, Keys.No):
		p.yes = false
		return actionSubmit
	case key.Matches(msg, Keys.Switch):
		p.yes = !p.yes
		return actionEdit
	case key.Matches(msg, Keys.Submit):
		return actionSubmit
	}
	return actionNone
}

func (p *confirmPrompt) value() (bool, error) {
	return p.yes, nil
}

func (p *confirmPrompt) view(st State) View {
	return View{
		Kind:      KindConfirm,
		Prompt:    p.prompt,
		State:     st,
		Confirmed: p.yes,
	}
}
