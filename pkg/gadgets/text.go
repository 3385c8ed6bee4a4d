package gadgets

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	// DefaultTextDelay is the time between two revealed characters.
	DefaultTextDelay = 20 * time.Millisecond

	// DefaultLineWrap is the column text wraps at.
	DefaultLineWrap = 80
)

// Text reveals its content one rune at a time, like a typewriter.
type Text struct {
	// Delay between two runes. Zero or less reveals everything at once.
	Delay time.Duration

	// LineWrap is the number of terminal cells a line breaks at. Negative
	// disables wrapping.
	LineWrap int

	// End is shown below the text once it is fully revealed.
	End string

	// Style is applied to every rendered line.
	Style lipgloss.Style

	runes   []rune
	shown   int
	elapsed time.Duration
}

// NewText returns a Text with the default delay and line wrap.
func NewText(content string) *Text {
	return &Text{
		Delay:    DefaultTextDelay,
		LineWrap: DefaultLineWrap,
		Style:    lipgloss.NewStyle(),
		runes:    []rune(content),
	}
}

// SetContent replaces the content and starts revealing from the beginning.
func (t *Text) SetContent(content string) {
	t.runes = []rune(content)
	t.shown = 0
	t.elapsed = 0
}

// Content returns the full text.
func (t *Text) Content() string { return string(t.runes) }

// Advance moves the typewriter forward by d.
func (t *Text) Advance(d time.Duration) {
	if t.Done() {
		return
	}
	if t.Delay <= 0 {
		t.shown = len(t.runes)
		return
	}
	t.elapsed += d
	t.shown = min(len(t.runes), int(t.elapsed/t.Delay))
}

// Done reports whether all of the content is revealed.
func (t *Text) Done() bool { return t.shown >= len(t.runes) }

// Skip reveals the rest of the content.
func (t *Text) Skip() { t.shown = len(t.runes) }

// Plain returns the revealed part of the content, wrapped, without styling.
func (t *Text) Plain() string {
	return wrap(t.runes[:t.shown], t.LineWrap)
}

// Render returns the revealed text styled line by line, followed by End once
// the text is done.
func (t *Text) Render() string {
	lines := strings.Split(t.Plain(), "\n")
	for i, line := range lines {
		lines[i] = t.Style.Render(line)
	}
	out := strings.Join(lines, "\n")
	if t.Done() && t.End != "" {
		out += "\n\n" + t.End
	}
	return out
}

// wrap breaks runes into lines of at most width terminal cells. A rune wider
// than width still gets a line of its own.
func wrap(runes []rune, width int) string {
	var b strings.Builder
	col := 0
	for _, r := range runes {
		if r == '\n' {
			b.WriteRune(r)
			col = 0
			continue
		}
		w := runewidth.RuneWidth(r)
		if width > 0 && col > 0 && col+w > width {
			b.WriteByte('\n')
			col = 0
		}
		b.WriteRune(r)
		col += w
	}
	return b.String()
}
