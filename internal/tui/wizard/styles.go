package wizard

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/ideaeval/internal/tui/theme"
)

// renderHintBar renders a hint bar with the given key-description pairs.
// Example: renderHintBar("↑↓", "navigate", "enter", "next")
// Returns: "↑↓ navigate • enter next"
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	sep := " " + s.HintSeparator.Render("•") + " "

	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		parts = append(parts, s.HintKey.Render(pairs[i])+" "+s.HintDesc.Render(pairs[i+1]))
	}

	return strings.Join(parts, sep)
}

// renderKeyHints renders a hint bar from key bindings' help text.
func renderKeyHints(bindings ...key.Binding) string {
	pairs := make([]string, 0, len(bindings)*2)
	for _, b := range bindings {
		h := b.Help()
		pairs = append(pairs, h.Key, h.Desc)
	}
	return renderHintBar(pairs...)
}

// inputStyles returns the textinput styling shared by every text field.
func inputStyles() textinput.Styles {
	t := theme.Current()
	return textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Tertiary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.BgOverlay)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	}
}

// displayName returns the idea name for headings, with a placeholder when
// the name is blank.
func displayName(name string, index int) string {
	if strings.TrimSpace(name) == "" {
		return "(unnamed idea " + strconv.Itoa(index+1) + ")"
	}
	return name
}
