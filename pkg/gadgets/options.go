package gadgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options is a vertical list of choices navigated with the keyboard.
// Movement wraps around at both ends.
type Options struct {
	Keys      KeyMap
	Style     lipgloss.Style
	Highlight lipgloss.Style

	items  []string
	cursor int
	chosen bool
}

// NewOptions returns a list over items with the first one selected.
func NewOptions(items ...string) *Options {
	return &Options{
		Keys:      DefaultKeyMap(),
		Style:     lipgloss.NewStyle(),
		Highlight: lipgloss.NewStyle().Reverse(true),
		items:     items,
	}
}

// Update handles a key message and reports whether an option was chosen.
// Other messages are ignored.
func (o *Options) Update(msg tea.Msg) bool {
	k, ok := msg.(tea.KeyMsg)
	if !ok || len(o.items) == 0 {
		return false
	}
	switch {
	case key.Matches(k, o.Keys.Up):
		o.cursor--
		if o.cursor < 0 {
			o.cursor = len(o.items) - 1
		}
	case key.Matches(k, o.Keys.Down):
		o.cursor++
		if o.cursor >= len(o.items) {
			o.cursor = 0
		}
	case key.Matches(k, o.Keys.Choose):
		o.chosen = true
		return true
	}
	return false
}

// Selected returns the index and text of the highlighted option. The index
// is -1 when the list is empty.
func (o *Options) Selected() (int, string) {
	if len(o.items) == 0 {
		return -1, ""
	}
	return o.cursor, o.items[o.cursor]
}

// Select moves the highlight to index i. Out of range values are ignored.
func (o *Options) Select(i int) {
	if i >= 0 && i < len(o.items) {
		o.cursor = i
	}
}

// Chosen reports whether the highlighted option has been chosen.
func (o *Options) Chosen() bool { return o.chosen }

// Reset clears the chosen flag so the list can be used again.
func (o *Options) Reset() { o.chosen = false }

// Items returns the options.
func (o *Options) Items() []string { return o.items }

// Render draws one option per line, the highlighted one as "> option <".
func (o *Options) Render() string {
	lines := make([]string, len(o.items))
	for i, item := range o.items {
		if i == o.cursor {
			lines[i] = "  " + o.Highlight.Render("> "+item+" <")
		} else {
			lines[i] = "  " + o.Style.Render(item)
		}
	}
	return strings.Join(lines, "\n")
}
