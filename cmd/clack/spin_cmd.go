package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/raphi011/clack/internal/cmd"
	"github.com/raphi011/clack/internal/config"
	"github.com/raphi011/clack/internal/ui/progress"
)

func newSpinCmd() *cobra.Command {
	var (
		message string
		done    string
		failed  string
		style   string
	)

	cmd := &cobra.Command{
		Use:     "spin [flags] -- <command> [args...]",
		Short:   "Run a command behind a spinner",
		GroupID: GroupPrompt,
		Args:    cobra.MinimumNArgs(1),
		Long: heredoc.Doc(`
			Run a command while showing a spinner.

			The command's output is captured and only printed if it fails.
			clack exits with the command's exit status.
		`),
		Example: heredoc.Doc(`
			clack spin -m "Installing dependencies" -d "Installed" -- npm install
			clack spin --style dot -- make build
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if style == "" {
				style = config.FromContext(ctx).Spinner.Style
			}
			if message == "" {
				message = strings.Join(args, " ")
			}
			if done == "" {
				done = message
			}

			w := stderr(cmd)
			s := progress.NewSpinner(w, progress.WithStyle(progress.StyleByName(style)))
			return runSpinning(ctx, s, w, args, message, done, failed)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Message shown while running (default: the command)")
	cmd.Flags().StringVarP(&done, "done", "d", "", "Message shown on success (default: the running message)")
	cmd.Flags().StringVar(&failed, "failed", "", "Message shown on failure (default: the error)")
	cmd.Flags().StringVar(&style, "style", "", "Spinner style (default from config)")

	return cmd
}

// exitError carries a child process exit status.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.code)
}

// runSpinning runs args while s spins. The child's combined output is
// replayed on w, the spinner's writer, when it fails.
func runSpinning(ctx context.Context, s *progress.Spinner, w io.Writer, args []string, message, done, failed string) error {
	s.Start(message)
	out, err := cmd.CombinedContext(ctx, "", args[0], args[1:]...)
	if err == nil {
		s.Stop(done)
		return nil
	}

	if failed == "" {
		failed = fmt.Sprintf("%s: %v", message, err)
	}
	s.Error(failed)

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		err = &exitError{code: max(ee.ExitCode(), 1)}
	}
	if _, werr := w.Write(out); werr != nil {
		err = multierr.Append(err, fmt.Errorf("replay output: %w", werr))
	}
	return err
}
