package prompt

import "github.com/raphi011/clack/internal/terminal"

// interact runs fn on the process TTY.
func interact[V any](fn func(Terminal) (V, error)) (V, error) {
	tty, err := terminal.Open()
	if err != nil {
		var zero V
		return zero, err
	}
	return fn(tty)
}
