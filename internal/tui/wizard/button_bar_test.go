package wizard

import (
	"testing"

	"github.com/mark3labs/ideaeval/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func TestButtonBar_FocusSkipsDisabled(t *testing.T) {
	t.Parallel()

	bar := NewButtonBar(CreateBackNextButtons(false, false))
	require.Equal(t, ButtonNone, bar.FocusedButton())

	require.True(t, bar.FocusFirst())
	require.Equal(t, ButtonNext, bar.FocusedButton())

	require.False(t, bar.FocusPrev(), "Back is disabled")
	require.Equal(t, ButtonNone, bar.FocusedButton())

	require.True(t, bar.FocusLast())
	require.Equal(t, ButtonNext, bar.FocusedButton())
	require.False(t, bar.FocusNext())
}

func TestButtonBar_FinishOnLastStep(t *testing.T) {
	t.Parallel()

	bar := NewButtonBar(CreateBackNextButtons(true, true))
	require.True(t, bar.FocusFirst())
	require.Equal(t, ButtonBack, bar.FocusedButton())
	require.True(t, bar.FocusNext())
	require.Equal(t, ButtonFinish, bar.FocusedButton())

	out := testfixtures.Plain(bar.Render())
	require.Contains(t, out, "← Back")
	require.Contains(t, out, "Finish")

	bar.Blur()
	require.Equal(t, ButtonNone, bar.FocusedButton())
}

func TestButtonBar_Empty(t *testing.T) {
	t.Parallel()
	require.Empty(t, NewButtonBar(nil).Render())
}

func TestRenderHintBar(t *testing.T) {
	t.Parallel()

	out := testfixtures.Plain(renderHintBar("↑↓", "navigate", "enter", "next"))
	require.Equal(t, "↑↓ navigate • enter next", out)
	require.Empty(t, renderHintBar("odd"))
}
