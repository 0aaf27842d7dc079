package wizard

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/ideaeval/internal/evaluation"
	"github.com/mark3labs/ideaeval/internal/logger"
	"github.com/mark3labs/ideaeval/internal/tui/theme"
)

// IdeasStep collects idea names, one text input per idea.
type IdeasStep struct {
	inputs     []textinput.Model
	focusIndex int
	focused    bool
	width      int
	height     int
}

// NewIdeasStep creates the collection step for the ideas in s.
func NewIdeasStep(s evaluation.State) *IdeasStep {
	step := &IdeasStep{width: 60, height: 20, focused: true}
	step.sync(s)
	return step
}

func newIdeaInput(width int) textinput.Model {
	input := textinput.New()
	input.Placeholder = "Enter idea name"
	input.Prompt = "› "
	input.SetStyles(inputStyles())
	input.SetWidth(width)
	return input
}

// sync makes the inputs mirror the state's ideas. Inputs are only ever
// appended since ideas cannot be removed.
func (i *IdeasStep) sync(s evaluation.State) {
	for len(i.inputs) < len(s.Ideas) {
		i.inputs = append(i.inputs, newIdeaInput(i.inputWidth()))
	}
	for idx, idea := range s.Ideas {
		if i.inputs[idx].Value() != idea.Name {
			i.inputs[idx].SetValue(idea.Name)
		}
	}
	if i.focusIndex >= len(i.inputs) {
		i.focusIndex = len(i.inputs) - 1
	}
}

func (i *IdeasStep) inputWidth() int {
	w := i.width - 6
	if w < 20 {
		w = 20
	}
	return w
}

// Init focuses the current input.
func (i *IdeasStep) Init() tea.Cmd {
	return i.Focus()
}

// Focus gives keyboard focus to the current input.
func (i *IdeasStep) Focus() tea.Cmd {
	i.focused = true
	return i.updateFocus()
}

// Blur removes focus from every input.
func (i *IdeasStep) Blur() {
	i.focused = false
	for idx := range i.inputs {
		i.inputs[idx].Blur()
	}
}

// FocusIndex returns the index of the idea being edited.
func (i *IdeasStep) FocusIndex() int {
	return i.focusIndex
}

// SetSize updates the dimensions for the step.
func (i *IdeasStep) SetSize(width, height int) {
	i.width = width
	i.height = height
	for idx := range i.inputs {
		i.inputs[idx].SetWidth(i.inputWidth())
	}
}

func (i *IdeasStep) updateFocus() tea.Cmd {
	var cmd tea.Cmd
	for idx := range i.inputs {
		if idx == i.focusIndex && i.focused {
			cmd = i.inputs[idx].Focus()
		} else {
			i.inputs[idx].Blur()
		}
	}
	return cmd
}

// Update handles input for the step and returns the resulting state.
func (i *IdeasStep) Update(msg tea.Msg, s evaluation.State) (evaluation.State, tea.Cmd) {
	switch msg := msg.(type) {
	case IdeasEditedMsg:
		s = applyEditedNames(s, msg.Names)
		i.sync(s)
		logger.Debug("Applied %d names from editor, %d ideas now", len(msg.Names), len(s.Ideas))
		return s, i.updateFocus()

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.AddIdea):
			s = s.AddIdea()
			i.sync(s)
			i.focusIndex = len(i.inputs) - 1
			logger.Debug("Added idea %d", len(s.Ideas))
			return s, i.updateFocus()

		case key.Matches(msg, keys.Edit):
			if os.Getenv("EDITOR") != "" {
				return s, i.openEditor(s)
			}
			return s, nil

		case key.Matches(msg, keys.Up):
			if i.focusIndex > 0 {
				i.focusIndex--
			}
			return s, i.updateFocus()

		case key.Matches(msg, keys.Down):
			if i.focusIndex < len(i.inputs)-1 {
				i.focusIndex++
			}
			return s, i.updateFocus()

		case key.Matches(msg, keys.Confirm):
			return s, func() tea.Msg { return NextStepMsg{} }
		}
	}

	if i.focusIndex < 0 || i.focusIndex >= len(i.inputs) {
		return s, nil
	}

	var cmd tea.Cmd
	i.inputs[i.focusIndex], cmd = i.inputs[i.focusIndex].Update(msg)
	if value := i.inputs[i.focusIndex].Value(); value != s.Ideas[i.focusIndex].Name {
		s = s.SetIdeaName(i.focusIndex, value)
	}
	return s, cmd
}

// applyEditedNames renames ideas line by line and appends ideas for extra
// lines. Ideas beyond the edited list are left untouched.
func applyEditedNames(s evaluation.State, names []string) evaluation.State {
	for idx, name := range names {
		if !s.HasIdea(idx) {
			s = s.AddIdea()
		}
		s = s.SetIdeaName(idx, name)
	}
	return s
}

// parseEditedNames splits editor output into one name per line. Blank
// lines are kept so line i still maps to idea i; only trailing blank lines
// are dropped.
func parseEditedNames(content string) []string {
	lines := strings.Split(content, "\n")
	for idx := range lines {
		lines[idx] = strings.TrimSpace(lines[idx])
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// openEditor launches $EDITOR on a temp file holding one idea per line.
func (i *IdeasStep) openEditor(s evaluation.State) tea.Cmd {
	tmpfile, err := os.CreateTemp("", "ideaeval_ideas_*.txt")
	if err != nil {
		logger.Warn("Creating editor temp file: %v", err)
		return nil
	}

	var b strings.Builder
	for _, idea := range s.Ideas {
		b.WriteString(idea.Name)
		b.WriteString("\n")
	}
	if _, err := tmpfile.WriteString(b.String()); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return nil
	}
	_ = tmpfile.Close()

	path := tmpfile.Name()
	cmd, err := editor.Command("ideaeval", path)
	if err != nil {
		_ = os.Remove(path)
		return nil
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		defer func() { _ = os.Remove(path) }()
		if err != nil {
			logger.Warn("Editor exited with error: %v", err)
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		return IdeasEditedMsg{Names: parseEditedNames(string(content))}
	})
}

// View renders one labeled input per idea, scrolled to keep the focused
// input in view.
func (i *IdeasStep) View(s evaluation.State) string {
	st := theme.Current().S()
	var b strings.Builder

	b.WriteString(st.Heading.Render(evaluation.StepCollect.String()))
	b.WriteString("\n\n")

	var lines []string
	cursorLine := 0
	for idx := range s.Ideas {
		if idx > 0 {
			lines = append(lines, "")
		}
		label := st.Label
		if idx == i.focusIndex && i.focused {
			label = st.LabelFocused
		}
		lines = append(lines, label.Render(fmt.Sprintf("Idea %d", idx+1)))
		if idx == i.focusIndex {
			cursorLine = len(lines)
		}
		if idx < len(i.inputs) {
			lines = append(lines, i.inputs[idx].View())
		} else {
			lines = append(lines, "")
		}
	}

	b.WriteString(strings.Join(visibleWindow(lines, cursorLine, i.height-4), "\n"))
	b.WriteString("\n\n")

	hints := []key.Binding{keys.Up, keys.AddIdea}
	if os.Getenv("EDITOR") != "" {
		hints = append(hints, keys.Edit)
	}
	hints = append(hints, keys.Confirm, keys.FocusBar)
	b.WriteString(renderKeyHints(hints...))

	return b.String()
}
