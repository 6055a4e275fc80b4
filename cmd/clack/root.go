package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/config"
	"github.com/raphi011/clack/internal/log"
	"github.com/raphi011/clack/internal/output"
	"github.com/raphi011/clack/internal/terminal"
	"github.com/raphi011/clack/internal/ui/prompt"
	"github.com/raphi011/clack/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	asJSON  bool
)

// exitCancelled is the exit status for esc and ctrl+c, as for SIGINT.
const exitCancelled = 130

// Command group IDs for organizing help output
const (
	GroupPrompt  = "prompt"
	GroupMessage = "message"
	GroupConfig  = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clack",
	Short: "Pretty interactive prompts for shell scripts",
	Long: heredoc.Doc(`
		clack asks questions in the terminal and prints the answers.

		Prompts are drawn on stderr and the answer is written to stdout,
		so clack composes with shell scripts:

		  name=$(clack input "Project name?" --required)

		Esc cancels a prompt; clack then exits with status 130.
	`),
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Flags are parsed now, so the logger and printer can be built
		ctx := cmd.Context()
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))
		ctx = output.WithPrinter(ctx, output.New(os.Stdout, asJSON))
		cmd.SetContext(ctx)

		cfg := config.FromContext(ctx)
		log.FromContext(ctx).Debug("config loaded",
			"theme", cfg.Theme.Name, "mode", cfg.Theme.Mode, "symbols", cfg.Theme.Symbols, "spinner", cfg.Spinner.Style)
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "clack: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	cfg := loadConfig(workDir)
	styles.Init(cfg.Theme)

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx = config.WithConfig(ctx, cfg)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// loadConfig resolves the effective config, falling back to defaults
// with a warning when a config file is invalid.
func loadConfig(workDir string) *config.Config {
	path, err := config.Path()
	if err == nil {
		cfg, rerr := config.Resolve(path, workDir)
		if rerr == nil {
			return cfg
		}
		err = rerr
	}
	fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	def := config.Default()
	return &def
}

// exitCode reports err and maps it to the process exit status.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	switch {
	case errors.Is(err, prompt.ErrCancelled), errors.Is(err, terminal.ErrInterrupted):
		return exitCancelled
	case errors.Is(err, errDeclined):
		return 1
	case errors.Is(err, terminal.ErrNotTerminal):
		fmt.Fprintln(os.Stderr, "clack: prompts need an interactive terminal (stdin is not a TTY)")
		return 1
	}
	fmt.Fprintln(os.Stderr, err)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Run 'clack -h' for help")
	return 1
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output and external commands")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print answers as JSON")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupPrompt, Title: "Prompt Commands:"},
		&cobra.Group{ID: GroupMessage, Title: "Message Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Prompt commands
	rootCmd.AddCommand(newInputCmd())
	rootCmd.AddCommand(newPasswordCmd())
	rootCmd.AddCommand(newConfirmCmd())
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newMultiSelectCmd())
	rootCmd.AddCommand(newSpinCmd())

	// Message commands
	rootCmd.AddCommand(newIntroCmd())
	rootCmd.AddCommand(newOutroCmd())
	rootCmd.AddCommand(newNoteCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newClearCmd())
	rootCmd.AddCommand(newDemoCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
