package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/raphi011/clack/internal/config"
	"github.com/raphi011/clack/internal/log"
	"github.com/raphi011/clack/internal/output"
	"github.com/raphi011/clack/internal/ui/static"
	"github.com/raphi011/clack/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: heredoc.Doc(`
			Manage clack configuration.

			Global config: ~/.config/clack/config.toml
			Local config:  .clack.toml (in the working directory)
		`),
		Example: heredoc.Doc(`
			  clack config init     # Create default global config
			  clack config show     # Show effective config
			  clack config path     # Print the global config path
			  clack config themes   # List color presets
		`),
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigThemesCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: heredoc.Doc(`
			  clack config init      # Create global config
			  clack config init -f   # Overwrite existing config
			  clack config init -s   # Print config to stdout
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			if stdout {
				_, err := io.WriteString(out.Writer(), config.DefaultTOML())
				return err
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}
			log.FromContext(cmd.Context()).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`
			Show the effective configuration after merging the global file,
			the local .clack.toml and CLACK_* environment overrides.
		`),
		Example: heredoc.Doc(`
			  clack config show          # TOML
			  clack config show --json   # JSON
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			if out.JSON() {
				return out.Value(cfg)
			}
			return toml.NewEncoder(out.Writer()).Encode(cfg)
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			if local {
				dir, err := filepath.Abs(".")
				if err != nil {
					return err
				}
				return out.Value(filepath.Join(dir, config.LocalConfigFileName))
			}

			path, err := config.Path()
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			return out.Value(path)
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Print the local .clack.toml path instead")

	return cmd
}

func newConfigThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available color presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			if out.JSON() {
				return out.Lines(styles.PresetNames())
			}
			current := config.FromContext(ctx).Theme.Name
			_, err := io.WriteString(out.Writer(), static.RenderTable(static.PresetHeaders, static.PresetRows(current)))
			return err
		},
	}
}
