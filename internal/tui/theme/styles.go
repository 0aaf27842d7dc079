package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	HeaderTitle lipgloss.Style

	ModalContainer lipgloss.Style
	ModalTitle     lipgloss.Style

	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Heading      lipgloss.Style

	// Score selector cells
	Choice         lipgloss.Style
	ChoiceSelected lipgloss.Style

	ButtonNormal   lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonFocused  lipgloss.Style

	HintKey       lipgloss.Style
	HintDesc      lipgloss.Style
	HintSeparator lipgloss.Style

	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
}
