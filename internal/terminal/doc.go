// Package terminal connects prompts to a real TTY.
//
// A TTY decodes stdin with the ultraviolet terminal reader (the decoder
// behind bubbletea) into key presses, and writes prompt frames to stderr,
// erasing the previous frame before each redraw. Output goes through a colorprofile writer so styles
// degrade to what the terminal supports (including NO_COLOR).
//
// Ctrl+C is not delivered as a key: ReadKey returns ErrInterrupted so the
// caller can restore the terminal and exit.
package terminal
