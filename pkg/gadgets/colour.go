package gadgets

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Colour is one of the eight basic ANSI terminal colours.
type Colour int

const (
	Black Colour = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Color is an alias for Colour.
type Color = Colour

var colourNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// String returns the lower-case colour name.
func (c Colour) String() string {
	if c < Black || c > White {
		return "colour(" + strconv.Itoa(int(c)) + ")"
	}
	return colourNames[c]
}

// Lipgloss returns the ANSI colour for use in lipgloss styles.
func (c Colour) Lipgloss() lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(c)))
}

// ParseColour looks a colour up by name.
func ParseColour(name string) (Colour, bool) {
	for i, n := range colourNames {
		if n == name {
			return Colour(i), true
		}
	}
	return 0, false
}

// Style returns a style with the given foreground and background.
func Style(fg, bg Colour) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fg.Lipgloss()).Background(bg.Lipgloss())
}
