package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/config"
	"github.com/raphi011/clack/internal/ui/progress"
	"github.com/raphi011/clack/internal/ui/prompt"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "demo",
		Short:   "Walk through every prompt",
		GroupID: GroupMessage,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := messages(cmd)
			err := runDemo(cmd, m, clock.New())
			if errors.Is(err, prompt.ErrCancelled) {
				_ = m.OutroCancel("Operation cancelled.")
			}
			return err
		},
	}
}

// runDemo is a project scaffolding session that only pretends to work.
func runDemo(cmd *cobra.Command, m *prompt.Messages, clk clock.Clock) error {
	cfg := config.FromContext(cmd.Context())

	if err := m.Intro(" create-app "); err != nil {
		return err
	}

	path, err := prompt.NewInput("Where should we create your project?").
		Placeholder("./sparkling-solid").
		Validate(func(s string) error {
			if !strings.HasPrefix(s, "./") {
				return errors.New("Please enter a relative path")
			}
			return nil
		}).
		Interact()
	if err != nil {
		return err
	}

	if _, err := prompt.NewPassword("Provide a password").
		Mask(cfg.MaskRune()).
		Validate(required).
		Interact(); err != nil {
		return err
	}

	kind, err := prompt.NewSelect[string]("Pick a project type").
		Item("ts", "TypeScript", "").
		Item("js", "JavaScript", "").
		Item("coffee", "CoffeeScript", "oh no").
		Interact()
	if err != nil {
		return err
	}

	tools, err := prompt.NewMultiSelect[string]("Select additional tools").
		Item("eslint", "ESLint", "recommended").
		Item("prettier", "Prettier", "").
		Item("gh-action", "GitHub Actions", "").
		InitialValues("eslint").
		Interact()
	if err != nil {
		return err
	}

	install, err := prompt.NewConfirm("Install dependencies?").Interact()
	if err != nil {
		return err
	}

	if install {
		s := progress.NewSpinner(stderr(cmd),
			progress.WithClock(clk),
			progress.WithStyle(progress.StyleByName(cfg.Spinner.Style)))
		s.Start("Installing via npm")
		<-clk.After(2 * time.Second)
		s.Stop("Installed via npm")
	}

	if err := m.Note("Next steps.", fmt.Sprintf("cd %s\nnpm run dev", path)); err != nil {
		return err
	}
	if len(tools) > 0 {
		if err := m.Info(fmt.Sprintf("%s project with %s", kind, strings.Join(tools, ", "))); err != nil {
			return err
		}
	}
	return m.Outro("Problems? https://example.com/issues")
}
