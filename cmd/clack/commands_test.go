package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphi011/clack/internal/config"
	"github.com/raphi011/clack/internal/log"
	"github.com/raphi011/clack/internal/output"
	"github.com/raphi011/clack/internal/ui/progress"
)

// testContext returns a context carrying cfg, a quiet logger and a
// printer writing to the returned buffer.
func testContext(t *testing.T, cfg *config.Config, asJSON bool) (context.Context, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	ctx := config.WithConfig(context.Background(), cfg)
	ctx = log.WithLogger(ctx, log.New(io.Discard, false, true))
	ctx = output.WithPrinter(ctx, output.New(&out, asJSON))
	return ctx, &out
}

// execute runs cmd with args and returns what it wrote to stderr.
func execute(t *testing.T, ctx context.Context, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var stderr bytes.Buffer
	cmd.SetContext(ctx)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return ansi.Strip(stderr.String()), err
}

func TestMessageCommands(t *testing.T) {
	t.Parallel()

	def := config.Default()
	ctx, _ := testContext(t, &def, false)

	tests := []struct {
		name string
		cmd  func() *cobra.Command
		args []string
		want string
	}{
		{"intro", newIntroCmd, []string{" create-app "}, "┌   create-app \n"},
		{"outro", newOutroCmd, []string{"Done"}, "│\n└  Done\n\n"},
		{"outro cancel", newOutroCmd, []string{"--cancel", "Stopped"}, "│\n└  Stopped\n\n"},
		{"log info", newLogCmd, []string{"info", "Fetching"}, "│\n●  Fetching\n"},
		{"log is case insensitive", newLogCmd, []string{"WARN", "Careful"}, "│\n▲  Careful\n"},
		{"log multiline", newLogCmd, []string{"step", "one\ntwo"}, "│\n◇  one\n│  two\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := execute(t, ctx, tt.cmd(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogCmd_UnknownLevel(t *testing.T) {
	t.Parallel()

	def := config.Default()
	ctx, _ := testContext(t, &def, false)

	_, err := execute(t, ctx, newLogCmd(), "shout", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown log level "shout"`)
}

func TestNoteCmd(t *testing.T) {
	t.Parallel()

	def := config.Default()
	ctx, _ := testContext(t, &def, false)

	got, err := execute(t, ctx, newNoteCmd(), "Next steps.", "cd app")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[1], "◇  Next steps. "))
	assert.Equal(t, "│  cd app       │", lines[3])
}

func TestConfigShow(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Theme.Name = "nord"
	cfg.Spinner.Style = "dot"

	t.Run("toml", func(t *testing.T) {
		t.Parallel()
		ctx, out := testContext(t, &cfg, false)

		_, err := execute(t, ctx, newConfigCmd(), "show")
		require.NoError(t, err)

		var got config.Config
		_, err = toml.Decode(out.String(), &got)
		require.NoError(t, err)
		assert.Equal(t, cfg, got)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		ctx, out := testContext(t, &cfg, true)

		_, err := execute(t, ctx, newConfigCmd(), "show")
		require.NoError(t, err)

		var got config.Config
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, "nord", got.Theme.Name)
		assert.Equal(t, "dot", got.Spinner.Style)
	})
}

func TestConfigInit_Stdout(t *testing.T) {
	t.Parallel()

	def := config.Default()
	ctx, out := testContext(t, &def, false)

	_, err := execute(t, ctx, newConfigCmd(), "init", "--stdout")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTOML(), out.String())
}

func TestConfigThemes(t *testing.T) {
	t.Parallel()

	def := config.Default()

	t.Run("table", func(t *testing.T) {
		t.Parallel()
		ctx, out := testContext(t, &def, false)

		_, err := execute(t, ctx, newConfigCmd(), "themes")
		require.NoError(t, err)
		got := ansi.Strip(out.String())
		assert.Contains(t, got, "NAME")
		for _, name := range config.ValidThemeNames {
			assert.Contains(t, got, name)
		}
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		ctx, out := testContext(t, &def, true)

		_, err := execute(t, ctx, newConfigCmd(), "themes")
		require.NoError(t, err)
		var got []string
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, config.ValidThemeNames, got)
	})
}

func TestCompletionCmd(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "clack"}
	root.AddGroup(&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"})
	root.AddCommand(newCompletionCmd())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"completion", "bash"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "bash completion")

	root.SetArgs([]string{"completion", "tcsh"})
	assert.Error(t, root.Execute())
}

func TestRunSpinning(t *testing.T) {
	t.Parallel()

	def := config.Default()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		ctx, _ := testContext(t, &def, false)
		var buf bytes.Buffer
		s := progress.NewSpinner(&buf)

		err := runSpinning(ctx, s, &buf, []string{"true"}, "Building", "Built", "")
		require.NoError(t, err)
		assert.Contains(t, ansi.Strip(buf.String()), "◇  Built\n")
		assert.Equal(t, progress.Stopped, s.State())
	})

	t.Run("child exit status", func(t *testing.T) {
		t.Parallel()
		ctx, _ := testContext(t, &def, false)
		var buf bytes.Buffer
		s := progress.NewSpinner(&buf)

		err := runSpinning(ctx, s, &buf, []string{"sh", "-c", "echo compile error; exit 3"}, "Building", "Built", "Build failed")
		var ee *exitError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, 3, ee.code)
		assert.Equal(t, 3, exitCode(err))
		assert.Contains(t, ansi.Strip(buf.String()), "■  Build failed\n")
		assert.Contains(t, buf.String(), "compile error\n")
		assert.Equal(t, progress.Failed, s.State())
	})

	t.Run("missing binary", func(t *testing.T) {
		t.Parallel()
		ctx, _ := testContext(t, &def, false)
		var buf bytes.Buffer
		s := progress.NewSpinner(&buf)

		err := runSpinning(ctx, s, &buf, []string{"clack-no-such-binary"}, "Building", "Built", "")
		require.Error(t, err)
		var ee *exitError
		assert.False(t, errors.As(err, &ee))
		assert.Contains(t, ansi.Strip(buf.String()), "Building: ")
	})

	t.Run("replay write error", func(t *testing.T) {
		t.Parallel()
		ctx, _ := testContext(t, &def, false)
		s := progress.NewSpinner(io.Discard)

		err := runSpinning(ctx, s, failingWriter{}, []string{"sh", "-c", "echo oops; exit 2"}, "Building", "Built", "")
		assert.ErrorIs(t, err, errWriteFailed)
		assert.Equal(t, 2, exitCode(err))
	})
}

var errWriteFailed = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWriteFailed }
