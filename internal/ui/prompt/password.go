package prompt

import (
	"github.com/atotto/clipboard"

	"github.com/raphi011/clack/internal/ui/styles"
)

// Password prompts for text without echoing it. Every character is drawn
// as the mask glyph; the value itself is never masked.
type Password struct {
	prompt   string
	mask     rune
	validate Validator[string]
	format   Formatter
}

// NewPassword returns a masked text prompt.
func NewPassword(prompt string) *Password {
	return &Password{prompt: prompt}
}

// Mask sets the glyph drawn for each character. Zero uses the glyph set's mask.
func (p *Password) Mask(r rune) *Password {
	p.mask = r
	return p
}

// Validate sets the check run on every submission.
func (p *Password) Validate(fn Validator[string]) *Password {
	p.validate = fn
	return p
}

// Formatter sets how frames are drawn.
func (p *Password) Formatter(f Formatter) *Password {
	p.format = f
	return p
}

// Interact runs the prompt on the process terminal.
func (p *Password) Interact() (string, error) {
	return interact(p.Run)
}

// Run runs the prompt on t.
func (p *Password) Run(t Terminal) (string, error) {
	mask := p.mask
	if mask == 0 {
		mask = styles.CurrentSymbols().PasswordMask
	}
	v := &textPrompt[string]{
		kind:   KindPassword,
		prompt: p.prompt,
		mask:   mask,
		ed:     newEditor(""),
		parse:  func(s string) (string, error) { return s, nil },
		paste:  clipboard.ReadAll,
	}
	return run[string](t, p.format, v, p.validate)
}
