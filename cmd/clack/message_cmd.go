package main

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/ui/prompt"
)

func newIntroCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "intro <title>",
		Short:   "Print the header of a prompt session",
		GroupID: GroupMessage,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return messages(cmd).Intro(args[0])
		},
	}
}

func newOutroCmd() *cobra.Command {
	var cancel bool

	cmd := &cobra.Command{
		Use:     "outro <message>",
		Short:   "Print the footer of a prompt session",
		GroupID: GroupMessage,
		Args:    cobra.ExactArgs(1),
		Example: heredoc.Doc(`
			clack outro "You're all set!"
			clack outro --cancel "Operation cancelled."
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cancel {
				return messages(cmd).OutroCancel(args[0])
			}
			return messages(cmd).Outro(args[0])
		},
	}

	cmd.Flags().BoolVarP(&cancel, "cancel", "c", false, "Use the failure style")

	return cmd
}

func newNoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "note <title> <message>",
		Short:   "Print a message in a titled box",
		GroupID: GroupMessage,
		Args:    cobra.ExactArgs(2),
		Example: heredoc.Doc(`
			clack note "Next steps." "cd my-app
			npm install"
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return messages(cmd).Note(args[0], args[1])
		},
	}
}

// logLevels maps level names to message printers.
var logLevels = map[string]func(*prompt.Messages, string) error{
	"remark":  (*prompt.Messages).Remark,
	"info":    (*prompt.Messages).Info,
	"warning": (*prompt.Messages).Warning,
	"warn":    (*prompt.Messages).Warning,
	"error":   (*prompt.Messages).Error,
	"success": (*prompt.Messages).Success,
	"step":    (*prompt.Messages).Step,
}

func newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "log <level> <message>",
		Short:     "Print a styled status message",
		GroupID:   GroupMessage,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"remark", "info", "warning", "error", "success", "step"},
		Long: heredoc.Doc(`
			Print a message with a level symbol.

			Levels: remark, info, warning (warn), error, success, step.
		`),
		Example: heredoc.Doc(`
			clack log info "Fetching packages"
			clack log step "Created package.json"
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			logFn, ok := logLevels[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("unknown log level %q (available: remark, info, warning, error, success, step)", args[0])
			}
			return logFn(messages(cmd), args[1])
		},
	}
}

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "clear",
		Short:   "Clear the terminal",
		GroupID: GroupMessage,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return messages(cmd).ClearScreen()
		},
	}
}
