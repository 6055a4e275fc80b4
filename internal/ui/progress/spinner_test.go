package progress

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"charm.land/bubbles/v2/spinner"
	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raphi011/clack/internal/ui/styles"
)

// syncBuffer is a bytes.Buffer safe for the spinner worker and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// tickUntil advances the mock clock until cond holds.
func tickUntil(t *testing.T, mock *clock.Mock, interval time.Duration, cond func() bool) {
	t.Helper()
	require.Eventually(t, func() bool {
		mock.Add(interval)
		return cond()
	}, 2*time.Second, time.Millisecond)
}

func TestSpinner_Liveness(t *testing.T) {
	t.Parallel()

	mock := clock.NewMock()
	var out syncBuffer
	s := NewSpinner(&out, WithClock(mock))

	s.Start("Installing")
	require.Equal(t, Running, s.State())

	seen := map[int64]bool{s.Frame(): true}
	tickUntil(t, mock, ClackInterval, func() bool {
		seen[s.Frame()] = true
		return len(seen) >= 3
	})

	s.Stop("Installed")
	assert.Equal(t, Stopped, s.State())

	// No frame changes once stopped
	frame := s.Frame()
	for i := 0; i < 10; i++ {
		mock.Add(ClackInterval)
	}
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, frame, s.Frame())
}

func TestSpinner_NonTerminalOutput(t *testing.T) {
	t.Parallel()

	mock := clock.NewMock()
	var out syncBuffer
	s := NewSpinner(&out, WithClock(mock), WithSymbols(styles.UnicodeSymbols()))

	s.Start("Installing")
	mock.Add(5 * ClackInterval)
	s.Stop("Installed")

	want := "│\n◒  Installing\n◇  Installed\n"
	assert.Equal(t, want, ansi.Strip(out.String()))
}

func TestSpinner_Error(t *testing.T) {
	t.Parallel()

	var out syncBuffer
	s := NewSpinner(&out, WithClock(clock.NewMock()), WithSymbols(styles.UnicodeSymbols()))

	s.Start("Deploying")
	s.Error("Deploy failed")

	assert.Equal(t, Failed, s.State())
	assert.True(t, strings.HasSuffix(ansi.Strip(out.String()), "■  Deploy failed\n"))
}

func TestSpinner_AnimatedRedraw(t *testing.T) {
	t.Parallel()

	mock := clock.NewMock()
	var out syncBuffer
	s := NewSpinner(&out, WithClock(mock), WithStyle(spinner.Spinner{Frames: []string{"a", "b"}, FPS: time.Second}))
	s.animate = true

	s.Start("Working")
	tickUntil(t, mock, time.Second, func() bool { return s.Frame() >= 1 })
	s.SetMessage("Still working")
	s.Stop("Done")

	got := out.String()
	assert.Contains(t, got, ansi.EraseEntireLine)
	assert.Contains(t, got, ansi.ShowCursor)
	assert.Contains(t, ansi.Strip(got), "a  Working")
	assert.Contains(t, ansi.Strip(got), "b  Working")
	assert.Contains(t, ansi.Strip(got), "Still working")
	assert.Equal(t, "Done", s.Message())
}

func TestSpinner_CallsOutsideRunningAreNoOps(t *testing.T) {
	t.Parallel()

	var out syncBuffer
	s := NewSpinner(&out, WithClock(clock.NewMock()))

	s.Stop("never started")
	s.Error("never started")
	assert.Empty(t, out.String())
	assert.Equal(t, Stopped, s.State())

	s.Start("once")
	s.Start("twice")
	s.Stop("done")
	s.Stop("again")
	assert.Equal(t, 1, strings.Count(ansi.Strip(out.String()), "done"))
	assert.NotContains(t, out.String(), "twice")
}

func TestStyleByName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, spinner.Dot.Frames, StyleByName("dot").Frames)
	assert.Equal(t, ClackInterval, StyleByName("clack").FPS)
	assert.NotEmpty(t, StyleByName("unknown").Frames)
}
