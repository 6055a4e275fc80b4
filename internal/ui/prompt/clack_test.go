package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphi011/clack/internal/ui/styles"
)

func format(v View) string {
	return ansi.Strip(Clack{}.Format(v).Text)
}

func TestClack_InputStates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state State
		want  string
	}{
		{"active", State{}, "│\n◆  Name?\n│  Ada \n└\n"},
		{"error", State{Error: "Too short"}, "│\n▲  Name?\n│  Ada \n└  Too short\n"},
		{"submitted", State{Outcome: Submitted}, "│\n◇  Name?\n│  Ada\n│\n"},
		{"cancelled", State{Outcome: Cancelled}, "│\n■  Name?\n│  Ada\n└  Operation cancelled.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := View{Kind: KindInput, Prompt: "Name?", State: tt.state, Text: "Ada", Cursor: 3}
			assert.Equal(t, tt.want, format(v))
		})
	}
}

func TestClack_LineCountStable(t *testing.T) {
	t.Parallel()

	v := View{Kind: KindInput, Prompt: "Name?", Text: "x", Cursor: 1}
	active := Clack{}.Format(v)
	v.State.Error = "bad"
	failed := Clack{}.Format(v)

	assert.Equal(t, 4, active.Lines)
	assert.Equal(t, active.Lines, failed.Lines)
}

func TestClack_Password(t *testing.T) {
	t.Parallel()

	v := View{Kind: KindPassword, Prompt: "Secret?", Text: "héllo", Cursor: 5, Mask: '▪'}
	out := format(v)
	assert.Contains(t, out, "▪▪▪▪▪")
	assert.NotContains(t, out, "héllo")
}

func TestClack_Placeholder(t *testing.T) {
	t.Parallel()

	v := View{Kind: KindInput, Prompt: "Name?", Placeholder: "Not sure"}
	assert.Contains(t, format(v), "│  Not sure\n")

	v.State.Outcome = Submitted
	assert.NotContains(t, format(v), "Not sure")
}

func TestClack_Confirm(t *testing.T) {
	t.Parallel()

	v := View{Kind: KindConfirm, Prompt: "Continue?", Confirmed: true}
	assert.Contains(t, format(v), "● Yes / ○ No")

	v.Confirmed = false
	assert.Contains(t, format(v), "○ Yes / ● No")

	v.State.Outcome = Submitted
	assert.Contains(t, format(v), "│  No\n")
}

func TestClack_Select(t *testing.T) {
	t.Parallel()

	v := View{
		Kind:   KindSelect,
		Prompt: "Pick",
		Items: []ItemView{
			{Label: "TypeScript"},
			{Label: "CoffeeScript", Hint: "oh no"},
		},
		Cursor: 1,
	}
	want := "│\n◆  Pick\n│  ○ TypeScript\n│  ● CoffeeScript (oh no)\n└\n"
	assert.Equal(t, want, format(v))

	v.State.Outcome = Submitted
	assert.Equal(t, "│\n◇  Pick\n│  CoffeeScript\n│\n", format(v))
}

func TestClack_MultiSelect(t *testing.T) {
	t.Parallel()

	v := View{
		Kind:   KindMultiSelect,
		Prompt: "Tools",
		Items: []ItemView{
			{Label: "ESLint", Hint: "recommended", Checked: true},
			{Label: "Prettier"},
			{Label: "GitHub Actions", Checked: true},
		},
		Cursor: 1,
	}
	out := format(v)
	assert.Contains(t, out, "│  ◼ ESLint\n")
	assert.Contains(t, out, "│  ◻ Prettier\n")
	assert.NotContains(t, out, "recommended")

	v.State.Outcome = Submitted
	assert.Contains(t, format(v), "│  ESLint, GitHub Actions\n")
}

func TestClack_FilterHighlight(t *testing.T) {
	t.Parallel()

	v := View{
		Kind:      KindSelect,
		Prompt:    "Pick",
		Filtering: true,
		Filter:    "be",
		Items: []ItemView{
			{Label: "Beta", Matched: []int{0, 1}},
			{Label: "Über", Matched: []int{2, 3}},
		},
	}
	out := Clack{}.Format(v).Text

	assert.Contains(t, out, styles.HighlightStyle.Render("Be"))
	assert.Contains(t, out, styles.AccentStyle.Render("ta"))
	assert.Contains(t, out, styles.MutedStyle.Render("Ü"))
	assert.Contains(t, out, styles.HighlightStyle.Render("be"))
	assert.Contains(t, out, styles.MutedStyle.Render("r"))
	assert.Contains(t, ansi.Strip(out), "│  ● Beta\n│  ○ Über\n")
}

func TestClack_ActiveLabelAccent(t *testing.T) {
	t.Parallel()

	v := View{
		Kind:   KindMultiSelect,
		Prompt: "Tools",
		Items:  []ItemView{{Label: "ESLint"}, {Label: "Prettier"}},
		Cursor: 1,
	}
	out := Clack{}.Format(v).Text

	assert.Contains(t, out, styles.AccentStyle.Render("Prettier"))
	assert.Contains(t, out, styles.MutedStyle.Render("ESLint"))
}

func TestClack_Messages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	m := NewMessages(&buf)

	require.NoError(t, m.Intro("create-my-app"))
	require.NoError(t, m.Info("installing"))
	require.NoError(t, m.Step("done\nall good"))
	require.NoError(t, m.Outro("You're all set!"))

	want := strings.Join([]string{
		"┌  create-my-app",
		"│",
		"●  installing",
		"│",
		"◇  done",
		"│  all good",
		"│",
		"└  You're all set!",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, ansi.Strip(buf.String()))
}

func TestClack_Note(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(Clack{}.Note("Next", "cd app\nnpm install"))
	want := strings.Join([]string{
		"│",
		"◇  Next ────────╮",
		"│               │",
		"│  cd app       │",
		"│  npm install  │",
		"│               │",
		"├───────────────╯",
		"",
	}, "\n")
	assert.Equal(t, want, out)

	// Every row of the box has the same width
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")[1:]
	for _, l := range lines {
		assert.Equal(t, ansi.StringWidth(lines[0]), ansi.StringWidth(l), "row %q", l)
	}
}

func TestClack_ClearScreen(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewMessages(&buf).ClearScreen())
	assert.Equal(t, ansi.EraseEntireScreen+ansi.CursorHomePosition, buf.String())
}
