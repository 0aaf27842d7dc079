package wizard

// NextStepMsg asks the wizard to advance, or to finish on the last step.
type NextStepMsg struct{}

// PrevStepMsg asks the wizard to go back one step.
type PrevStepMsg struct{}

// IdeasEditedMsg carries idea names returned from the external editor,
// one per non-empty line.
type IdeasEditedMsg struct {
	Names []string
}

// ExportDoneMsg reports the outcome of exporting the results table.
type ExportDoneMsg struct {
	Path string
	Err  error
}
