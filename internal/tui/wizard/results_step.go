package wizard

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/glamour/v2"
	"github.com/mark3labs/ideaeval/internal/evaluation"
	"github.com/mark3labs/ideaeval/internal/export"
	"github.com/mark3labs/ideaeval/internal/logger"
	"github.com/mark3labs/ideaeval/internal/tui/theme"
)

// ResultsStep shows the summary table in a scrollable viewport and can
// export it to disk.
type ResultsStep struct {
	viewport viewport.Model
	opts     Options
	markdown string // Raw table last rendered
	status   string // Outcome of the last export
	failed   bool
	width    int
	height   int
}

// NewResultsStep creates the results step.
func NewResultsStep(opts Options) *ResultsStep {
	vp := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(10),
	)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &ResultsStep{
		viewport: vp,
		opts:     opts,
		width:    60,
		height:   20,
	}
}

// Init does nothing; content is refreshed on every View.
func (r *ResultsStep) Init() tea.Cmd {
	return nil
}

// Focus is a no-op; the viewport always scrolls.
func (r *ResultsStep) Focus() tea.Cmd { return nil }

// Blur is a no-op.
func (r *ResultsStep) Blur() {}

// SetSize updates the dimensions for the step.
func (r *ResultsStep) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.viewport.SetWidth(width)

	// Heading, status and hint bar take 5 lines
	vpHeight := height - 5
	if vpHeight < 5 {
		vpHeight = 5
	}
	r.viewport.SetHeight(vpHeight)
	r.markdown = "" // force re-render at the new width
}

// Update handles scrolling and export keys.
func (r *ResultsStep) Update(msg tea.Msg, s evaluation.State) (evaluation.State, tea.Cmd) {
	switch msg := msg.(type) {
	case ExportDoneMsg:
		if msg.Err != nil {
			r.status = "Export failed: " + msg.Err.Error()
			r.failed = true
			logger.Error("Export failed: %v", msg.Err)
		} else {
			r.status = "Saved to " + msg.Path
			r.failed = false
			logger.Info("Exported results to %s", msg.Path)
		}
		return s, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Export):
			return s, r.exportCmd(s.Results())
		case key.Matches(msg, keys.Confirm):
			return s, func() tea.Msg { return NextStepMsg{} }
		}
	}

	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return s, cmd
}

// exportCmd writes results in the configured format off the update loop.
func (r *ResultsStep) exportCmd(results []evaluation.Result) tea.Cmd {
	opts := r.opts
	return func() tea.Msg {
		format, err := export.ParseFormat(opts.ExportFormat)
		if err != nil {
			return ExportDoneMsg{Err: err}
		}
		path, err := export.Write(opts.ExportDir, opts.Title, format, results)
		return ExportDoneMsg{Path: path, Err: err}
	}
}

// refresh re-renders the table when the results changed.
func (r *ResultsStep) refresh(s evaluation.State) {
	md := export.Markdown(s.Results())
	if md == r.markdown {
		return
	}
	r.markdown = md
	r.viewport.SetContent(renderMarkdown(md, r.width, r.opts.MarkdownStyle))
}

// View renders the results table.
func (r *ResultsStep) View(s evaluation.State) string {
	r.refresh(s)
	st := theme.Current().S()

	var b strings.Builder
	b.WriteString(st.Heading.Render(evaluation.StepResults.String()))
	b.WriteString("\n")
	b.WriteString(r.viewport.View())
	b.WriteString("\n")

	if r.status != "" {
		if r.failed {
			b.WriteString(st.StatusError.Render("✗ " + r.status))
		} else {
			b.WriteString(st.StatusSuccess.Render("✓ " + r.status))
		}
		b.WriteString("\n")
	}

	b.WriteString(renderHintBar(
		"↑↓", "scroll",
		"s", "save",
		"enter", "finish",
		"esc", "back",
	))

	return b.String()
}

// renderMarkdown renders markdown with glamour, falling back to the raw
// text if the renderer cannot be built.
func renderMarkdown(content string, width int, style string) string {
	if width > 120 {
		width = 120
	}
	if style == "" {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logger.Warn("Creating markdown renderer: %v", err)
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimSuffix(rendered, "\n")
}
