package prompt

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectTypes() *Select[string] {
	return NewSelect[string]("Pick a project type").
		Item("ts", "TypeScript", "").
		Item("js", "JavaScript", "").
		Item("coffee", "CoffeeScript", "oh no")
}

func TestSelect_Scenario(t *testing.T) {
	t.Parallel()

	term := newFakeTerminal("down", "down", "enter")
	got, err := projectTypes().Run(term)
	require.NoError(t, err)
	assert.Equal(t, "coffee", got)
	assert.Contains(t, term.last(), "CoffeeScript")
	term.assertReleased(t)
}

func TestSelect_ClampNoWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"up at top is no-op", []string{"up", "enter"}, "ts"},
		{"down past end clamps", []string{"down", "down", "down", "down", "enter"}, "coffee"},
		{"vim keys", []string{"j", "j", "k", "enter"}, "js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := projectTypes().Run(newFakeTerminal(tt.keys...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestList_CursorStaysInRange(t *testing.T) {
	t.Parallel()

	items := []Item[int]{{Value: 1, Label: "one"}, {Value: 2, Label: "two"}, {Value: 3, Label: "three"}}
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 100; run++ {
		l := newList(items, false, rng.Intn(len(items)))
		for i := 0; i < 30; i++ {
			before := l.cursor
			k := "up"
			if rng.Intn(2) == 0 {
				k = "down"
			}
			l.handleKey(keyMsg(k))
			if l.cursor < 0 || l.cursor >= len(items) {
				t.Fatalf("cursor %d out of range", l.cursor)
			}
			if k == "up" && before == 0 && l.cursor != 0 {
				t.Fatal("up at index 0 must be a no-op")
			}
			if k == "down" && before == len(items)-1 && l.cursor != before {
				t.Fatal("down at the last index must be a no-op")
			}
		}
	}
}

func TestSelect_InitialValue(t *testing.T) {
	t.Parallel()

	got, err := projectTypes().InitialValue("js").Run(newFakeTerminal("enter"))
	require.NoError(t, err)
	assert.Equal(t, "js", got)

	got, err = projectTypes().InitialValue("rust").Run(newFakeTerminal("enter"))
	require.NoError(t, err)
	assert.Equal(t, "ts", got, "unknown initial value falls back to the first item")
}

func TestSelect_HintOnlyForActive(t *testing.T) {
	t.Parallel()

	term := newFakeTerminal("down", "down", "up", "enter")
	_, err := projectTypes().Run(term)
	require.NoError(t, err)

	assert.NotContains(t, term.frames[0], "oh no")
	assert.Contains(t, term.frames[2], "oh no")
	assert.NotContains(t, term.frames[3], "oh no")
}

func TestSelect_NoItems(t *testing.T) {
	t.Parallel()

	term := newFakeTerminal("enter")
	_, err := NewSelect[string]("Empty").Run(term)
	assert.ErrorIs(t, err, ErrNoItems)
	assert.Zero(t, term.entered, "terminal must not be touched")

	_, err = NewSelect[string]("Empty").Interact()
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestSelect_Filter(t *testing.T) {
	t.Parallel()

	term := newFakeTerminal("c", "o", "f", "enter")
	got, err := projectTypes().Filter(true).Run(term)
	require.NoError(t, err)
	assert.Equal(t, "coffee", got)
	assert.Contains(t, term.frames[3], "/ cof")
}

func TestSelect_FilterLettersDoNotNavigate(t *testing.T) {
	t.Parallel()

	// j and k go to the filter, so "java" narrows to JavaScript
	term := newFakeTerminal("j", "a", "v", "a", "enter")
	got, err := projectTypes().Filter(true).Run(term)
	require.NoError(t, err)
	assert.Equal(t, "js", got)
}

func TestSelect_FilterNoMatchIgnoresEnter(t *testing.T) {
	t.Parallel()

	term := newFakeTerminal("z", "z", "enter", "backspace", "backspace", "enter")
	got, err := projectTypes().Filter(true).Run(term)
	require.NoError(t, err)
	assert.Equal(t, "ts", got)

	var sawEmpty bool
	for _, f := range term.frames {
		if strings.Contains(f, "No matching items") {
			sawEmpty = true
		}
	}
	assert.True(t, sawEmpty)
}
