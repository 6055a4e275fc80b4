package main

import (
	"errors"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/config"
	"github.com/raphi011/clack/internal/log"
	"github.com/raphi011/clack/internal/output"
	"github.com/raphi011/clack/internal/ui/prompt"
)

func newInputCmd() *cobra.Command {
	var (
		placeholder string
		def         string
		require     bool
		integer     bool
	)

	cmd := &cobra.Command{
		Use:     "input <question>",
		Short:   "Ask for a line of text",
		GroupID: GroupPrompt,
		Args:    cobra.ExactArgs(1),
		Long: heredoc.Doc(`
			Ask for a single line of text and print it.

			Editing keys: ←/→ move, home/end jump, ctrl+u clears the line,
			ctrl+v pastes from the clipboard.
		`),
		Example: heredoc.Doc(`
			clack input "Project name?" --placeholder my-app --required
			clack input "How many workers?" --int --default 4
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if integer {
				n, err := prompt.NewParsedInput(args[0], parseInt).
					Placeholder(placeholder).
					Default(def).
					Interact()
				if err != nil {
					return err
				}
				return out.Value(n)
			}

			in := prompt.NewInput(args[0]).Placeholder(placeholder).Default(def)
			if require {
				in.Validate(required)
			}
			s, err := in.Interact()
			if err != nil {
				return err
			}
			log.FromContext(ctx).Debug("input submitted", "length", len(s))
			return out.Value(s)
		},
	}

	cmd.Flags().StringVarP(&placeholder, "placeholder", "p", "", "Hint shown while the input is empty")
	cmd.Flags().StringVarP(&def, "default", "d", "", "Pre-filled text")
	cmd.Flags().BoolVarP(&require, "required", "r", false, "Reject an empty answer")
	cmd.Flags().BoolVar(&integer, "int", false, "Only accept whole numbers")

	return cmd
}

// parseInt is the parse step of numeric input.
func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("Please enter a whole number")
	}
	return n, nil
}

func newPasswordCmd() *cobra.Command {
	var (
		mask    string
		require bool
	)

	cmd := &cobra.Command{
		Use:     "password <question>",
		Short:   "Ask for a secret without echoing it",
		GroupID: GroupPrompt,
		Args:    cobra.ExactArgs(1),
		Example: heredoc.Doc(`
			token=$(clack password "API token?" --required)
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p := prompt.NewPassword(args[0]).Mask(config.FromContext(ctx).MaskRune())
			if mask != "" {
				p.Mask([]rune(mask)[0])
			}
			if require {
				p.Validate(required)
			}
			s, err := p.Interact()
			if err != nil {
				return err
			}
			return output.FromContext(ctx).Value(s)
		},
	}

	cmd.Flags().StringVarP(&mask, "mask", "m", "", "Glyph drawn for each character")
	cmd.Flags().BoolVarP(&require, "required", "r", false, "Reject an empty answer")

	return cmd
}

func newConfirmCmd() *cobra.Command {
	var (
		def      bool
		exitCode bool
	)

	cmd := &cobra.Command{
		Use:     "confirm <question>",
		Short:   "Ask a yes/no question",
		GroupID: GroupPrompt,
		Args:    cobra.ExactArgs(1),
		Long: heredoc.Doc(`
			Ask a yes/no question and print true or false.

			y and n answer immediately; ←/→ or tab switch the answer.
		`),
		Example: heredoc.Doc(`
			clack confirm "Install dependencies?"
			clack confirm "Deploy?" --default=false --exit-code && ./deploy.sh
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := prompt.NewConfirm(args[0]).InitialValue(def).Interact()
			if err != nil {
				return err
			}
			if exitCode {
				if !ok {
					return errDeclined
				}
				return nil
			}
			return output.FromContext(cmd.Context()).Value(ok)
		},
	}

	cmd.Flags().BoolVarP(&def, "default", "d", true, "Preselected answer")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "Print nothing; exit 1 on no")

	return cmd
}

// errDeclined is returned by confirm --exit-code when the answer is no.
var errDeclined = errors.New("declined")

func newSelectCmd() *cobra.Command {
	var (
		initial string
		filter  bool
	)

	cmd := &cobra.Command{
		Use:     "select <question> <value[:label[:hint]]>...",
		Short:   "Ask for one item from a list",
		GroupID: GroupPrompt,
		Args:    cobra.MinimumNArgs(2),
		Long: heredoc.Docf(`
			Ask for one item and print its value.

			Each item is value, value:label or value:label:hint. The hint
			is shown next to the active item only.

			Keys: %s
		`, keyHelp(prompt.Keys.ListHelp(false))),
		Example: heredoc.Doc(`
			clack select "Pick a project type" ts:TypeScript js:JavaScript "coffee:CoffeeScript:oh no"
			clack select "Branch?" $(git branch --format='%(refname:short)') --filter
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItems(args[1:])
			if err != nil {
				return err
			}

			s := prompt.NewSelect[string](args[0]).Items(items...).Filter(filter)
			if cmd.Flags().Changed("initial") {
				s.InitialValue(initial)
			}
			v, err := s.Interact()
			if err != nil {
				return err
			}
			return output.FromContext(cmd.Context()).Value(v)
		},
	}

	cmd.Flags().StringVarP(&initial, "initial", "i", "", "Value of the initially active item")
	cmd.Flags().BoolVarP(&filter, "filter", "f", false, "Narrow the list by typing")

	return cmd
}

func newMultiSelectCmd() *cobra.Command {
	var (
		initial []string
		require bool
		filter  bool
	)

	cmd := &cobra.Command{
		Use:     "multiselect <question> <value[:label[:hint]]>...",
		Short:   "Ask for any number of items from a list",
		Aliases: []string{"multi"},
		GroupID: GroupPrompt,
		Args:    cobra.MinimumNArgs(2),
		Long: heredoc.Docf(`
			Ask for any number of items and print their values, one per
			line, in the order the items were given.

			Keys: %s
		`, keyHelp(prompt.Keys.ListHelp(true))),
		Example: heredoc.Doc(`
			clack multiselect "Select additional tools" "eslint:ESLint:recommended" prettier:Prettier gh-action:"GitHub Actions"
			clack multiselect "Targets?" linux darwin windows --initial linux --required --json
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItems(args[1:])
			if err != nil {
				return err
			}

			vs, err := prompt.NewMultiSelect[string](args[0]).
				Items(items...).
				InitialValues(initial...).
				Required(require).
				Filter(filter).
				Interact()
			if err != nil {
				return err
			}
			return output.FromContext(cmd.Context()).Lines(vs)
		},
	}

	cmd.Flags().StringSliceVarP(&initial, "initial", "i", nil, "Values checked at the start")
	cmd.Flags().BoolVarP(&require, "required", "r", false, "Require at least one item")
	cmd.Flags().BoolVarP(&filter, "filter", "f", false, "Narrow the list by typing")

	return cmd
}
