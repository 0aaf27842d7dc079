// Package wizard implements the three-step idea evaluation wizard: collect
// ideas, score them, review the totals.
package wizard

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/ideaeval/internal/evaluation"
	"github.com/mark3labs/ideaeval/internal/logger"
	"github.com/mark3labs/ideaeval/internal/tui/theme"
)

// ErrCancelled is returned by Run when the user quits before finishing.
var ErrCancelled = errors.New("wizard cancelled by user")

// Options configures a wizard run.
type Options struct {
	Names         []string // Initial idea names; empty gives one blank idea
	Title         string   // Used to name exported files
	ExportDir     string
	ExportFormat  string // "md" or "yaml"
	MarkdownStyle string // glamour standard style
}

// step is the common surface of the three step components. Each receives
// the current state and returns the next snapshot.
type step interface {
	Init() tea.Cmd
	Focus() tea.Cmd
	Blur()
	SetSize(width, height int)
	Update(msg tea.Msg, s evaluation.State) (evaluation.State, tea.Cmd)
	View(s evaluation.State) string
}

// WizardModel is the top-level BubbleTea model. It owns the evaluation
// state; the step components are stateless apart from focus and scroll.
type WizardModel struct {
	state     evaluation.State
	opts      Options
	cancelled bool
	finished  bool
	width     int
	height    int

	ideasStep   *IdeasStep
	scoringStep *ScoringStep
	resultsStep *ResultsStep

	buttonBar     *ButtonBar
	buttonFocused bool
}

// New creates a wizard model seeded from opts.
func New(opts Options) *WizardModel {
	s := evaluation.NewStateWithNames(opts.Names...)
	m := &WizardModel{
		state:  s,
		opts:   opts,
		width:  80,
		height: 24,
	}
	m.ideasStep = NewIdeasStep(s)
	m.scoringStep = NewScoringStep()
	m.resultsStep = NewResultsStep(opts)
	m.resetButtons()
	return m
}

// Run starts a standalone BubbleTea program and returns the final state
// once the user finishes. Returns ErrCancelled if the user quits early.
func Run(opts Options) (evaluation.State, error) {
	m := New(opts)
	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return evaluation.State{}, fmt.Errorf("wizard failed: %w", err)
	}

	wizModel, ok := finalModel.(*WizardModel)
	if !ok {
		return evaluation.State{}, fmt.Errorf("unexpected model type")
	}

	if wizModel.cancelled {
		return wizModel.state, ErrCancelled
	}

	return wizModel.state, nil
}

// State returns the current snapshot.
func (m *WizardModel) State() evaluation.State {
	return m.state
}

// Finished reports whether the user pressed Finish.
func (m *WizardModel) Finished() bool {
	return m.finished
}

// Cancelled reports whether the user quit early.
func (m *WizardModel) Cancelled() bool {
	return m.cancelled
}

// Init initializes the wizard model.
func (m *WizardModel) Init() tea.Cmd {
	return m.current().Init()
}

func (m *WizardModel) current() step {
	switch m.state.Step {
	case evaluation.StepScore:
		return m.scoringStep
	case evaluation.StepResults:
		return m.resultsStep
	default:
		return m.ideasStep
	}
}

// Update handles messages for the wizard.
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if m.buttonFocused {
			switch msg.String() {
			case "tab", "right":
				if !m.buttonBar.FocusNext() {
					return m, m.focusContent()
				}
				return m, nil
			case "shift+tab", "left":
				if !m.buttonBar.FocusPrev() {
					return m, m.focusContent()
				}
				return m, nil
			case "enter", "space":
				return m, m.activateButton(m.buttonBar.FocusedButton())
			}
		}

		switch {
		case key.Matches(msg, keys.Quit):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, keys.Back):
			if !m.state.CanRetreat() {
				m.cancelled = true
				return m, tea.Quit
			}
			return m, m.retreat()
		case key.Matches(msg, keys.Advance):
			return m, m.advance()
		case key.Matches(msg, keys.Retreat):
			return m, m.retreat()
		case key.Matches(msg, keys.FocusBar):
			m.focusButtons(true)
			return m, nil
		case key.Matches(msg, keys.FocusBarR):
			m.focusButtons(false)
			return m, nil
		}

		if m.buttonFocused {
			// Other keys are swallowed while the buttons have focus
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateStepSizes()
		return m, nil

	case ExportDoneMsg:
		// Exports can finish after the user has left the results step
		var cmd tea.Cmd
		m.state, cmd = m.resultsStep.Update(msg, m.state)
		return m, cmd

	case NextStepMsg:
		return m, m.advance()

	case PrevStepMsg:
		return m, m.retreat()
	}

	var cmd tea.Cmd
	m.state, cmd = m.current().Update(msg, m.state)
	return m, cmd
}

// advance moves to the next step, or finishes on the results step.
func (m *WizardModel) advance() tea.Cmd {
	if !m.state.CanAdvance() {
		m.finished = true
		logger.Debug("Wizard finished with %d ideas", len(m.state.Ideas))
		return tea.Quit
	}
	return m.changeStep(m.state.Advance())
}

func (m *WizardModel) retreat() tea.Cmd {
	if !m.state.CanRetreat() {
		return nil
	}
	return m.changeStep(m.state.Retreat())
}

func (m *WizardModel) changeStep(next evaluation.State) tea.Cmd {
	logger.Debug("Wizard step %d -> %d", m.state.Step, next.Step)
	m.current().Blur()
	m.state = next
	if m.state.Step == evaluation.StepCollect {
		m.ideasStep.sync(m.state)
	}
	m.resetButtons()
	m.updateStepSizes()
	return tea.Batch(m.current().Init(), m.current().Focus())
}

func (m *WizardModel) activateButton(id ButtonID) tea.Cmd {
	switch id {
	case ButtonBack:
		return m.retreat()
	case ButtonNext, ButtonFinish:
		return m.advance()
	}
	return nil
}

// resetButtons rebuilds the button bar for the current step and returns
// focus to the step content.
func (m *WizardModel) resetButtons() {
	m.buttonBar = NewButtonBar(CreateBackNextButtons(m.state.CanRetreat(), !m.state.CanAdvance()))
	m.buttonBar.SetWidth(m.contentWidth())
	m.buttonFocused = false
}

func (m *WizardModel) focusButtons(first bool) {
	if m.buttonFocused {
		return
	}
	var ok bool
	if first {
		ok = m.buttonBar.FocusFirst()
	} else {
		ok = m.buttonBar.FocusLast()
	}
	if ok {
		m.buttonFocused = true
		m.current().Blur()
	}
}

func (m *WizardModel) focusContent() tea.Cmd {
	m.buttonFocused = false
	m.buttonBar.Blur()
	return m.current().Focus()
}

// contentWidth is the usable width inside the modal.
func (m *WizardModel) contentWidth() int {
	w := m.modalWidth() - 6
	if w < 40 {
		w = 40
	}
	return w
}

func (m *WizardModel) modalWidth() int {
	w := m.width - 10
	if w < 60 {
		w = 60
	}
	if w > 100 {
		w = 100
	}
	return w
}

// updateStepSizes pushes the available content area to every step.
func (m *WizardModel) updateStepSizes() {
	width := m.contentWidth()
	height := m.height - 12
	if height < 10 {
		height = 10
	}
	m.ideasStep.SetSize(width, height)
	m.scoringStep.SetSize(width, height)
	m.resultsStep.SetSize(width, height)
	m.buttonBar.SetWidth(width)
}

// View renders the wizard UI.
func (m *WizardModel) View() tea.View {
	var view tea.View
	view.AltScreen = true

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(m.render()).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// render builds the centered modal holding the title, current step and
// button bar.
func (m *WizardModel) render() string {
	st := theme.Current().S()

	title := st.ModalTitle.Render(fmt.Sprintf("Idea Evaluation - Step %d of %d: %s",
		m.state.Step, evaluation.StepCount, m.state.Step))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		m.current().View(m.state),
		"",
		m.buttonBar.Render(),
	)

	modal := st.ModalContainer.Width(m.modalWidth()).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
