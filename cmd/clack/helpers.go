package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/bubbles/v2/key"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/ui/prompt"
)

// parseItems parses "value[:label[:hint]]" arguments. The label defaults
// to the value. Colons in the hint are kept.
func parseItems(args []string) ([]prompt.Item[string], error) {
	items := make([]prompt.Item[string], 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, ":", 3)
		if parts[0] == "" {
			return nil, fmt.Errorf("invalid item %q: value must not be empty", arg)
		}
		item := prompt.Item[string]{Value: parts[0], Label: parts[0]}
		if len(parts) > 1 && parts[1] != "" {
			item.Label = parts[1]
		}
		if len(parts) > 2 {
			item.Hint = parts[2]
		}
		items = append(items, item)
	}
	return items, nil
}

// messages returns session messages written to the command's stderr,
// downsampled to what the terminal supports.
func messages(cmd *cobra.Command) *prompt.Messages {
	return prompt.NewMessages(stderr(cmd))
}

func stderr(cmd *cobra.Command) io.Writer {
	return colorprofile.NewWriter(cmd.ErrOrStderr(), os.Environ())
}

// required rejects empty answers.
func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("Value is required!")
	}
	return nil
}

// keyHelp renders bindings as "key action" pairs for help text.
func keyHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
