package gadgets

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestColour(t *testing.T) {
	assert.Equal(t, "yellow", Yellow.String())
	assert.Equal(t, "colour(12)", Colour(12).String())

	c, ok := ParseColour("cyan")
	require.True(t, ok)
	assert.Equal(t, Cyan, c)

	_, ok = ParseColour("purple")
	assert.False(t, ok)
}

func TestText_Advance(t *testing.T) {
	txt := NewText("hello")
	txt.Delay = 10 * time.Millisecond

	txt.Advance(25 * time.Millisecond)
	assert.Equal(t, "he", txt.Plain())
	assert.False(t, txt.Done())

	txt.Advance(time.Second)
	assert.Equal(t, "hello", txt.Plain())
	assert.True(t, txt.Done())
}

func TestText_ZeroDelayRevealsAll(t *testing.T) {
	txt := NewText("instant")
	txt.Delay = 0
	txt.Advance(0)
	assert.True(t, txt.Done())
}

func TestText_Wrap(t *testing.T) {
	tests := []struct {
		name string
		in   string
		wrap int
		want string
	}{
		{"no wrap", "abcdef", -1, "abcdef"},
		{"wrap at 3", "abcdef", 3, "abc\ndef"},
		{"wrap at 4", "abcdef", 4, "abcd\nef"},
		{"newline resets column", "ab\ncdef", 3, "ab\ncde\nf"},
		{"wide runes fill two cells", "漢字漢字", 4, "漢字\n漢字"},
		{"wide rune does not split a line", "漢字漢字", 3, "漢\n字\n漢\n字"},
		{"mixed widths", "a漢b字", 3, "a漢\nb字"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := NewText(tt.in)
			txt.LineWrap = tt.wrap
			txt.Skip()
			assert.Equal(t, tt.want, txt.Plain())
		})
	}
}

func TestText_EndShownWhenDone(t *testing.T) {
	txt := NewText("hi")
	txt.End = "press any key"

	assert.NotContains(t, txt.Render(), "press any key")
	txt.Skip()
	assert.True(t, strings.HasSuffix(txt.Render(), "\n\npress any key"))

	txt.SetContent("again")
	assert.False(t, txt.Done())
	assert.Equal(t, "again", txt.Content())
}

func TestOptions_Navigation(t *testing.T) {
	o := NewOptions("Play", "About", "Quit")

	assert.False(t, o.Update(tea.KeyMsg{Type: tea.KeyUp}))
	i, s := o.Selected()
	assert.Equal(t, 2, i, "up from the first option wraps to the last")
	assert.Equal(t, "Quit", s)

	o.Update(tea.KeyMsg{Type: tea.KeyDown})
	i, _ = o.Selected()
	assert.Equal(t, 0, i, "down from the last option wraps to the first")

	o.Update(runes("s"))
	o.Update(runes("j"))
	i, _ = o.Selected()
	assert.Equal(t, 2, i)

	o.Update(runes("w"))
	o.Update(runes("k"))
	i, _ = o.Selected()
	assert.Equal(t, 0, i)
}

func TestOptions_Choose(t *testing.T) {
	o := NewOptions("Play", "Quit")
	o.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.False(t, o.Update("not a key"))
	assert.True(t, o.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.True(t, o.Chosen())

	o.Reset()
	assert.False(t, o.Chosen())
	assert.True(t, o.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))
}

func TestOptions_Empty(t *testing.T) {
	o := NewOptions()
	assert.False(t, o.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	i, s := o.Selected()
	assert.Equal(t, -1, i)
	assert.Empty(t, s)
}

func TestOptions_Render(t *testing.T) {
	o := NewOptions("Play", "Quit")
	o.Select(1)

	out := o.Render()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Play")
	assert.NotContains(t, lines[0], ">")
	assert.Contains(t, lines[1], "> Quit <")
}

func TestInput(t *testing.T) {
	in := NewInput("Name: ", 3)

	in.Update(runes("abcdef"))
	assert.Equal(t, "abc", in.Value())
	assert.False(t, in.Submitted())

	in.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, in.Submitted())
	assert.Contains(t, in.Render(), "Name: ")

	in.Reset()
	assert.Empty(t, in.Value())
	assert.False(t, in.Submitted())
}
