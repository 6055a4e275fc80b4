// Package output provides context-aware output for clack.
// Stdout carries prompt results so scripts can capture them
// (name=$(clack input "Name?")). Prompts and diagnostics use stderr.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type ctxKey struct{}

// Printer writes prompt results to stdout, either as plain lines or as
// JSON when enabled.
type Printer struct {
	w    io.Writer
	json bool
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer, asJSON bool) *Printer {
	return &Printer{w: w, json: asJSON}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the Printer from context.
// Returns a plain Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Value writes a single result: the value as JSON, or its plain text form.
func (p *Printer) Value(v any) error {
	if p.json {
		return p.encode(v)
	}
	_, err := fmt.Fprintln(p.w, v)
	return err
}

// Lines writes a list result: a JSON array, or one item per line.
func (p *Printer) Lines(items []string) error {
	if p.json {
		if items == nil {
			items = []string{}
		}
		return p.encode(items)
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(p.w, item); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	return enc.Encode(v)
}

// JSON reports whether results are written as JSON.
func (p *Printer) JSON() bool {
	return p.json
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
