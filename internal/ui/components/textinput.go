package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with studyhub styling. It starts
// blurred; callers Focus it when the user asks to type.
type TextInput struct {
	Model  textinput.Model
	Prompt string
}

// NewTextInput creates a new styled text input.
func NewTextInput(prompt, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti, Prompt: prompt}
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Reset clears the value.
func (t *TextInput) Reset() {
	t.Model.Reset()
}

// Update handles messages. Keys are ignored while blurred.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the prompt followed by the input.
func (t TextInput) View() string {
	prompt := lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Prompt)
	if t.Model.Focused() {
		prompt = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(t.Prompt)
	}
	return prompt + " " + t.Model.View()
}

// Value returns the trimmed input value.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}
