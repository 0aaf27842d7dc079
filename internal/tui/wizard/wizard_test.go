package wizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/ideaeval/internal/evaluation"
	"github.com/mark3labs/ideaeval/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

// newTestWizard returns an initialized, sized wizard.
func newTestWizard(t *testing.T, opts Options) *WizardModel {
	t.Helper()
	m := New(opts)
	m.Init()
	m.Update(testfixtures.WindowSize())
	return m
}

func send(m *WizardModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func typeText(m *WizardModel, text string) {
	for _, k := range testfixtures.Type(text) {
		send(m, k)
	}
}

// expectNext runs cmd and feeds the resulting NextStepMsg back in.
func expectNext(t *testing.T, m *WizardModel, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, NextStepMsg{}, msg)
	return send(m, msg)
}

func plainView(m *WizardModel) string {
	return testfixtures.Plain(m.render())
}

func TestWizard_InitialView(t *testing.T) {
	m := newTestWizard(t, Options{})

	view := plainView(m)
	require.Contains(t, view, "Idea Evaluation - Step 1 of 3: Enter Your Ideas")
	require.Contains(t, view, "Idea 1")
	require.Contains(t, view, "Next →")
	require.Contains(t, view, "← Back")
	require.Equal(t, evaluation.StepCollect, m.State().Step)
	require.Len(t, m.State().Ideas, 1)
}

func TestWizard_CanvasRender(t *testing.T) {
	m := newTestWizard(t, Options{Names: []string{"Seeded"}})

	screen := testfixtures.RenderCanvas(m.render())
	require.Contains(t, screen, "Step 1 of 3")

	view := m.View()
	require.True(t, view.AltScreen)
}

func TestWizard_FullFlow(t *testing.T) {
	m := newTestWizard(t, Options{})

	// Step 1: two ideas
	typeText(m, "Idea A")
	send(m, testfixtures.Ctrl('n'))
	typeText(m, "Idea B")
	require.Equal(t, []string{"Idea A", "Idea B"}, []string{m.State().Ideas[0].Name, m.State().Ideas[1].Name})

	expectNext(t, m, send(m, testfixtures.Key(tea.KeyEnter)))
	require.Equal(t, evaluation.StepScore, m.State().Step)

	view := plainView(m)
	require.Contains(t, view, "Rate Each Idea")
	require.Contains(t, view, "Feasibility")

	// Step 2: rate the first idea 5,3,4,2,1
	for i, r := range []rune{'5', '3', '4', '2', '1'} {
		if i > 0 {
			send(m, testfixtures.Key(tea.KeyDown))
		}
		send(m, testfixtures.Rune(r))
	}

	expectNext(t, m, send(m, testfixtures.Key(tea.KeyEnter)))
	require.Equal(t, evaluation.StepResults, m.State().Step)

	results := m.State().Results()
	require.Equal(t, 15, results[0].Total)
	require.Equal(t, 0, results[1].Total)

	view = plainView(m)
	require.Contains(t, view, "Finish")
	require.Contains(t, view, "Idea A")
	require.Contains(t, view, "15")

	// Step 3: finish
	cmd := expectNext(t, m, send(m, testfixtures.Key(tea.KeyEnter)))
	require.True(t, m.Finished())
	require.False(t, m.Cancelled())
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWizard_EscGoesBackThenCancels(t *testing.T) {
	m := newTestWizard(t, Options{})

	expectNext(t, m, send(m, testfixtures.Key(tea.KeyEnter)))
	require.Equal(t, evaluation.StepScore, m.State().Step)

	send(m, testfixtures.Key(tea.KeyEscape))
	require.Equal(t, evaluation.StepCollect, m.State().Step)
	require.False(t, m.Cancelled())

	cmd := send(m, testfixtures.Key(tea.KeyEscape))
	require.True(t, m.Cancelled())
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWizard_CtrlCCancels(t *testing.T) {
	m := newTestWizard(t, Options{})
	send(m, testfixtures.Ctrl('c'))
	require.True(t, m.Cancelled())
}

func TestWizard_StepShortcutsRoundTrip(t *testing.T) {
	m := newTestWizard(t, Options{})
	next := tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}
	prev := tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl}

	send(m, next, next)
	require.Equal(t, evaluation.StepResults, m.State().Step)
	send(m, prev, prev)
	require.Equal(t, evaluation.StepCollect, m.State().Step)

	// Retreat on the first step stays put
	send(m, prev)
	require.Equal(t, evaluation.StepCollect, m.State().Step)
	require.False(t, m.Cancelled())
}

func TestWizard_ButtonBarNavigation(t *testing.T) {
	m := newTestWizard(t, Options{})

	// Back is disabled on step 1, so tab lands on Next
	send(m, testfixtures.Key(tea.KeyTab))
	require.True(t, m.buttonFocused)
	require.Equal(t, ButtonNext, m.buttonBar.FocusedButton())

	send(m, testfixtures.Key(tea.KeyEnter))
	require.Equal(t, evaluation.StepScore, m.State().Step)
	require.False(t, m.buttonFocused, "changing step returns focus to content")

	// On step 2 tab lands on Back
	send(m, testfixtures.Key(tea.KeyTab))
	require.Equal(t, ButtonBack, m.buttonBar.FocusedButton())
	send(m, testfixtures.Key(tea.KeyEnter))
	require.Equal(t, evaluation.StepCollect, m.State().Step)
}

func TestWizard_ButtonFocusSwallowsTyping(t *testing.T) {
	m := newTestWizard(t, Options{})

	send(m, testfixtures.Key(tea.KeyTab))
	typeText(m, "xyz")
	require.Empty(t, m.State().Ideas[0].Name)

	// Tab past the last button returns to the inputs
	send(m, testfixtures.Key(tea.KeyTab))
	require.False(t, m.buttonFocused)
	typeText(m, "ok")
	require.Equal(t, "ok", m.State().Ideas[0].Name)
}

func TestWizard_BackKeepsEnteredData(t *testing.T) {
	m := newTestWizard(t, Options{Names: []string{"Keep me"}})

	expectNext(t, m, send(m, testfixtures.Key(tea.KeyEnter)))
	send(m, testfixtures.Rune('4'))
	send(m, PrevStepMsg{})

	require.Equal(t, evaluation.StepCollect, m.State().Step)
	require.Equal(t, "Keep me", m.State().Ideas[0].Name)
	require.Equal(t, evaluation.Score(4), m.State().Ideas[0].Score(evaluation.Feasibility))
	require.Contains(t, plainView(m), "Keep me")
}

func TestWizard_ManyIdeasStayOnScreen(t *testing.T) {
	m := newTestWizard(t, Options{})

	for range 14 {
		send(m, testfixtures.Ctrl('n'))
	}
	typeText(m, "Fifteenth")
	require.Equal(t, "Fifteenth", m.State().Ideas[14].Name)

	screen := testfixtures.RenderCanvas(m.render())
	require.Contains(t, screen, "Idea 15")
	require.Contains(t, screen, "Fifteenth")
	require.Contains(t, screen, "Next →")
}

func TestWizard_ExportResultReachesResultsStep(t *testing.T) {
	dir := t.TempDir()
	m := newTestWizard(t, Options{Names: []string{"Solo"}, ExportDir: dir})

	send(m, tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}, tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl})
	require.Equal(t, evaluation.StepResults, m.State().Step)

	exportCmd := send(m, testfixtures.Rune('s'))
	require.NotNil(t, exportCmd)

	// Leave the results step before the export finishes
	send(m, testfixtures.Key(tea.KeyEscape))
	require.Equal(t, evaluation.StepScore, m.State().Step)

	done := exportCmd()
	require.IsType(t, ExportDoneMsg{}, done)
	send(m, done)
	require.Equal(t, evaluation.StepScore, m.State().Step)

	send(m, tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl})
	require.Contains(t, plainView(m), "Saved to")
}
