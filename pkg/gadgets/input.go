package gadgets

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultInputLimit is the default maximum number of characters accepted by
// an Input.
const DefaultInputLimit = 30

// Input is a prompt followed by a single-line text field.
type Input struct {
	Prompt      string
	PromptStyle lipgloss.Style

	field     textinput.Model
	submitted bool
}

// NewInput returns a focused input accepting at most limit characters.
// A limit of zero or less uses DefaultInputLimit.
func NewInput(prompt string, limit int) *Input {
	if limit <= 0 {
		limit = DefaultInputLimit
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = limit
	ti.Focus()

	return &Input{
		Prompt:      prompt,
		PromptStyle: lipgloss.NewStyle(),
		field:       ti,
	}
}

// Update feeds a message to the text field. Enter submits the value.
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEnter {
		i.submitted = true
		return nil
	}
	var cmd tea.Cmd
	i.field, cmd = i.field.Update(msg)
	return cmd
}

// Submitted reports whether enter has been pressed.
func (i *Input) Submitted() bool { return i.submitted }

// Value returns the text typed so far.
func (i *Input) Value() string { return i.field.Value() }

// Reset clears the value and the submitted flag.
func (i *Input) Reset() {
	i.field.Reset()
	i.submitted = false
}

// Render draws the prompt and the field on one line.
func (i *Input) Render() string {
	return i.PromptStyle.Render(i.Prompt) + i.field.View()
}
