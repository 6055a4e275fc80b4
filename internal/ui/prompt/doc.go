// Package prompt provides clack style interactive prompts.
//
// Every prompt is driven by the same loop: draw a frame, read one key,
// let the prompt variant update its value, and on submit run the
// validator. Esc cancels at any time and is reported as [ErrCancelled].
// When the loop ends the final frame (the answer, or the struck-through
// cancelled value) is written once and left on screen.
//
// Available prompts:
//   - [Input]: single-line text, optionally parsed into another type
//   - [Password]: masked text input
//   - [Confirm]: yes/no, y and n answer immediately
//   - [Select]: one item from a list
//   - [MultiSelect]: any number of items from a list
//
// Prompts draw on a [Terminal] and format frames with a [Formatter].
// Interact uses the process TTY and the [Clack] formatter; Run accepts
// any Terminal, which is how the tests script key presses.
//
// The package also prints the non-interactive pieces of a session:
// [Intro], [Outro], [OutroCancel], [Note] and the [Log] messages.
package prompt
