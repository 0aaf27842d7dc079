package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/ideaeval/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// ButtonID identifies what a button does when activated.
type ButtonID int

const (
	ButtonNone ButtonID = iota
	ButtonBack
	ButtonNext
	ButtonFinish
)

// Button represents a single button in the button bar.
type Button struct {
	ID    ButtonID
	Label string
	State ButtonState
}

// ButtonBar manages a set of buttons with consistent styling and keyboard
// focus. Disabled buttons are skipped when moving focus.
type ButtonBar struct {
	buttons []Button
	focused int // -1 when no button has focus
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focused: -1,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// FocusFirst focuses the first enabled button.
func (b *ButtonBar) FocusFirst() bool {
	b.focused = -1
	return b.FocusNext()
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() bool {
	b.focused = len(b.buttons)
	return b.FocusPrev()
}

// FocusNext moves focus to the next enabled button. Returns false when
// focus runs off the end, leaving the bar unfocused.
func (b *ButtonBar) FocusNext() bool {
	for i := b.focused + 1; i < len(b.buttons); i++ {
		if b.buttons[i].State != ButtonDisabled {
			b.focused = i
			return true
		}
	}
	b.focused = -1
	return false
}

// FocusPrev moves focus to the previous enabled button. Returns false when
// focus runs off the start.
func (b *ButtonBar) FocusPrev() bool {
	for i := b.focused - 1; i >= 0; i-- {
		if b.buttons[i].State != ButtonDisabled {
			b.focused = i
			return true
		}
	}
	b.focused = -1
	return false
}

// Blur removes focus from all buttons.
func (b *ButtonBar) Blur() {
	b.focused = -1
}

// FocusedButton returns the focused button's ID, or ButtonNone.
func (b *ButtonBar) FocusedButton() ButtonID {
	if b.focused < 0 || b.focused >= len(b.buttons) {
		return ButtonNone
	}
	return b.buttons[b.focused].ID
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	s := theme.Current().S()

	rendered := make([]string, 0, len(b.buttons))
	for i, btn := range b.buttons {
		state := btn.State
		if i == b.focused && state != ButtonDisabled {
			state = ButtonFocused
		}
		switch state {
		case ButtonDisabled:
			rendered = append(rendered, s.ButtonDisabled.Render(btn.Label))
		case ButtonFocused:
			rendered = append(rendered, s.ButtonFocused.Render(btn.Label))
		default:
			rendered = append(rendered, s.ButtonNormal.Render(btn.Label))
		}
	}

	return lipgloss.PlaceHorizontal(b.width, lipgloss.Center, strings.Join(rendered, ""))
}

// CreateBackNextButtons creates the standard Back/Next button set.
// On the last step the forward button becomes Finish.
func CreateBackNextButtons(backEnabled, last bool) []Button {
	backState := ButtonNormal
	if !backEnabled {
		backState = ButtonDisabled
	}

	next := Button{ID: ButtonNext, Label: "Next →", State: ButtonNormal}
	if last {
		next = Button{ID: ButtonFinish, Label: "Finish", State: ButtonNormal}
	}

	return []Button{
		{ID: ButtonBack, Label: "← Back", State: backState},
		next,
	}
}
