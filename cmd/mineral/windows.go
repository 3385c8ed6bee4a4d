package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bft-labs/mineral/pkg/gadgets"
	"github.com/bft-labs/mineral/pkg/layout"
	"github.com/bft-labs/mineral/pkg/log"
	"github.com/bft-labs/mineral/pkg/screen"
)

// Constructor argument keys shared by the demo windows.
const (
	argTextDelay = "text_delay"
	argLineWrap  = "line_wrap"
)

var (
	textStyle  = lipgloss.NewStyle().Foreground(gadgets.Cyan.Lipgloss())
	hintStyle  = lipgloss.NewStyle().Foreground(gadgets.White.Lipgloss()).Faint(true)
	titleStyle = lipgloss.NewStyle().Foreground(gadgets.Yellow.Lipgloss()).Bold(true)
)

func demoTypes() []screen.Type {
	return []screen.Type{
		screen.Define(newMenu),
		screen.Define(newGame),
		screen.Define(newAbout),
	}
}

func newText(args screen.Args, content string) *gadgets.Text {
	t := gadgets.NewText(content)
	if d, ok := screen.Arg[time.Duration](args, argTextDelay); ok {
		t.Delay = d
	}
	if w, ok := screen.Arg[int](args, argLineWrap); ok && w != 0 {
		t.LineWrap = w
	}
	t.Style = textStyle
	return t
}

func keyOf(f *screen.Frame) (tea.KeyMsg, bool) {
	k, ok := f.Input.(tea.KeyMsg)
	return k, ok
}

// Menu is the start window.
type Menu struct {
	screen.Base
	title   *gadgets.Text
	options *gadgets.Options
	body    *layout.State
}

func newMenu(env screen.Env) *Menu {
	return &Menu{Base: screen.NewBase(env)}
}

func (m *Menu) OnSetup() {
	m.title = newText(m.Args(), "Welcome to mineral. Pick a window.")
	m.options = gadgets.NewOptions("Play", "About", "Quit")
	m.body = layout.New(nil)
	m.body.SetRelSize(0.6, 1)
	m.body.SetRelPos(0.2, 0)
	m.AddState(m.body)
}

func (m *Menu) OnEnter(previous screen.Window) {
	m.options.Reset()
}

func (m *Menu) OnUpdate(f *screen.Frame) {
	m.title.Advance(f.Delta)

	if k, ok := keyOf(f); ok {
		if !m.title.Done() {
			m.title.Skip()
		} else if m.options.Update(k) {
			_, choice := m.options.Selected()
			m.Logger().Debug("menu choice", log.String("choice", choice))
			switch choice {
			case "Play":
				_ = m.Change("Game")
				return
			case "About":
				_ = m.Change("About")
				return
			case "Quit":
				m.Quit()
				return
			}
		}
	}

	r := m.body.Resolve(f.Width, f.Height)
	fmt.Fprint(f, lipgloss.NewStyle().MarginLeft(r.X).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("mineral"),
			"",
			m.title.Render(),
			"",
			m.options.Render(),
		),
	))
}

// Game asks for a name and greets the player.
type Game struct {
	screen.Base
	input    *gadgets.Input
	greeting *gadgets.Text
}

func newGame(env screen.Env) *Game {
	return &Game{Base: screen.NewBase(env)}
}

func (g *Game) OnSetup() {
	g.input = gadgets.NewInput("What is your name? ", gadgets.DefaultInputLimit)
	g.input.PromptStyle = textStyle
}

func (g *Game) OnEnter(previous screen.Window) {
	g.input.Reset()
	g.greeting = nil
}

func (g *Game) OnUpdate(f *screen.Frame) {
	if k, ok := keyOf(f); ok {
		if k.Type == tea.KeyEsc {
			_ = g.Change("Menu")
			return
		}
		if g.greeting == nil {
			g.input.Update(k)
			if g.input.Submitted() {
				g.greeting = newText(g.Args(), fmt.Sprintf("Welcome, %s. There is nothing to play yet.", g.input.Value()))
				g.greeting.End = hintStyle.Render("esc to go back")
			}
		} else {
			g.greeting.Skip()
		}
	}

	if g.greeting == nil {
		fmt.Fprint(f, g.input.Render())
		return
	}
	g.greeting.Advance(f.Delta)
	fmt.Fprint(f, g.greeting.Render())
}

// Greeted reports whether the player has entered a name.
func (g *Game) Greeted() bool { return g.greeting != nil }

// About shows a short text and returns to the menu on any key.
type About struct {
	screen.Base
	text *gadgets.Text
}

func newAbout(env screen.Env) *About {
	return &About{Base: screen.NewBase(env)}
}

func (a *About) OnEnter(previous screen.Window) {
	a.text = newText(a.Args(),
		"mineral keeps a registry of windows and switches between them, "+
			"running the leave and enter hooks of both sides on every change.")
	a.text.End = hintStyle.Render("press any key to return")
}

func (a *About) OnUpdate(f *screen.Frame) {
	a.text.Advance(f.Delta)
	if _, ok := keyOf(f); ok {
		if a.text.Done() {
			_ = a.Change("Menu")
			return
		}
		a.text.Skip()
	}
	fmt.Fprint(f, a.text.Render())
}
