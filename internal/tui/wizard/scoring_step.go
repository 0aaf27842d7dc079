package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/ideaeval/internal/evaluation"
	"github.com/mark3labs/ideaeval/internal/tui/theme"
)

// criteriaPerIdea is the number of selector rows under each idea.
var criteriaPerIdea = len(evaluation.Criteria)

// ScoringStep renders a 1-5 selector per criterion for every idea. The
// cursor walks the flattened (idea, criterion) rows.
type ScoringStep struct {
	cursor  int
	focused bool
	width   int
	height  int
}

// NewScoringStep creates the scoring step.
func NewScoringStep() *ScoringStep {
	return &ScoringStep{focused: true, width: 60, height: 20}
}

// Init resets nothing; the cursor survives going back and forth.
func (c *ScoringStep) Init() tea.Cmd {
	return nil
}

// Focus gives the selector keyboard focus.
func (c *ScoringStep) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur removes keyboard focus.
func (c *ScoringStep) Blur() {
	c.focused = false
}

// SetSize updates the dimensions for the step.
func (c *ScoringStep) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Cursor returns the idea index and criterion under the cursor.
func (c *ScoringStep) Cursor() (int, evaluation.Criterion) {
	return c.cursor / criteriaPerIdea, evaluation.Criteria[c.cursor%criteriaPerIdea]
}

// Update handles selector keys and returns the resulting state.
func (c *ScoringStep) Update(msg tea.Msg, s evaluation.State) (evaluation.State, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	rows := len(s.Ideas) * criteriaPerIdea
	if c.cursor >= rows {
		c.cursor = rows - 1
	}
	idx, crit := c.Cursor()
	current := s.Ideas[idx].Score(crit)

	switch {
	case key.Matches(keyMsg, keys.Up):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if c.cursor < rows-1 {
			c.cursor++
		}
	case key.Matches(keyMsg, keys.Left):
		if current > evaluation.MinScore {
			s = s.SetScoreValue(idx, crit, current-1)
		} else if current == evaluation.Unset {
			s = s.SetScoreValue(idx, crit, evaluation.MinScore)
		}
	case key.Matches(keyMsg, keys.Right):
		if current < evaluation.MaxScore {
			s = s.SetScoreValue(idx, crit, current+1)
		}
	case key.Matches(keyMsg, keys.Clear):
		s = s.SetScoreValue(idx, crit, evaluation.Unset)
	case key.Matches(keyMsg, keys.Confirm):
		return s, func() tea.Msg { return NextStepMsg{} }
	default:
		// Digit keys select a rating directly
		if text := keyMsg.String(); len(text) == 1 && text[0] >= '1' && text[0] <= '5' {
			s = s.SetScore(idx, crit, text)
		}
	}

	return s, nil
}

// View renders each idea with its five selectors.
func (c *ScoringStep) View(s evaluation.State) string {
	st := theme.Current().S()

	labelWidth := 0
	for _, name := range evaluation.CriterionNames() {
		labelWidth = max(labelWidth, lipgloss.Width(name))
	}

	var lines []string
	cursorLine := 0
	for idx, idea := range s.Ideas {
		if idx > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, st.Heading.Render(displayName(idea.Name, idx)))

		for ci, crit := range evaluation.Criteria {
			row := idx*criteriaPerIdea + ci
			label := st.Label
			marker := "  "
			if row == c.cursor && c.focused {
				label = st.LabelFocused
				marker = "▸ "
				cursorLine = len(lines)
			}
			name := fmt.Sprintf("%-*s", labelWidth, crit.String())
			lines = append(lines, marker+label.Render(name)+"  "+renderChoices(idea.Score(crit)))
		}
	}

	var b strings.Builder
	b.WriteString(st.Heading.Render(evaluation.StepScore.String()))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visibleWindow(lines, cursorLine, c.height-4), "\n"))
	b.WriteString("\n\n")
	b.WriteString(renderHintBar(
		"↑↓", "criterion",
		"←→/1-5", "rate",
		"0", "clear",
		"enter", "next",
	))

	return b.String()
}

// renderChoices renders the 1..5 options with the selected one highlighted.
func renderChoices(selected evaluation.Score) string {
	st := theme.Current().S()
	cells := make([]string, 0, evaluation.MaxScore)
	for _, choice := range evaluation.ScoreChoices() {
		label := strconv.Itoa(int(choice))
		if choice == selected {
			cells = append(cells, st.ChoiceSelected.Render(label))
		} else {
			cells = append(cells, st.Choice.Render(label))
		}
	}
	return strings.Join(cells, "")
}

// visibleWindow returns at most height lines, scrolled so focus stays in view.
func visibleWindow(lines []string, focus, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	start := focus - height/2
	if start < 0 {
		start = 0
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return lines[start : start+height]
}
