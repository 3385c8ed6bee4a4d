package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bft-labs/mineral/pkg/screen"
)

type tickMsg time.Time

type dispatchMsg func(*screen.Manager)

var noticeStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1).
	Foreground(lipgloss.Color("3"))

// model adapts a screen.Manager to bubbletea.
type model struct {
	manager  *screen.Manager
	opts     options
	width    int
	height   int
	seq      uint64
	lastTick time.Time
	view     string
	err      error

	// start is called once from Init and returns work queued before the
	// loop began reading messages.
	start func() []dispatchMsg
}

func newModel(m *screen.Manager, opts options) *model {
	return &model{manager: m, opts: opts}
}

func (m *model) Init() tea.Cmd {
	if m.start == nil {
		return m.tick()
	}
	queued := m.start()
	if len(queued) == 0 {
		return m.tick()
	}
	drain := dispatchMsg(func(sm *screen.Manager) {
		for _, fn := range queued {
			fn(sm)
		}
	})
	return tea.Batch(m.tick(), func() tea.Msg { return drain })
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.opts.frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.tooSmall() {
			m.view = m.notice()
		}
		return m, nil

	case dispatchMsg:
		msg(m.manager)
		return m, m.quitIfStopped()

	case tickMsg:
		m.frame(nil, time.Time(msg))
		if cmd := m.quitIfStopped(); cmd != nil {
			return m, cmd
		}
		return m, m.tick()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.manager.Quit()
			return m, tea.Quit
		}
		m.frame(msg, time.Now())
		return m, m.quitIfStopped()

	case tea.MouseMsg:
		m.frame(msg, time.Now())
		return m, m.quitIfStopped()
	}
	return m, nil
}

func (m *model) View() string {
	return m.view
}

// frame runs one Manager.Update unless the terminal is too small.
func (m *model) frame(input any, now time.Time) {
	if m.tooSmall() {
		m.view = m.notice()
		return
	}

	var delta time.Duration
	if !m.lastTick.IsZero() {
		delta = now.Sub(m.lastTick)
	}
	m.lastTick = now
	m.seq++

	var out strings.Builder
	f := &screen.Frame{
		Input:  input,
		Width:  m.width,
		Height: m.height,
		Delta:  delta,
		Seq:    m.seq,
		Out:    &out,
	}
	if err := m.manager.Update(f); err != nil {
		m.err = err
		m.manager.Quit()
		return
	}
	m.view = out.String()
}

func (m *model) quitIfStopped() tea.Cmd {
	if m.manager.Running() {
		return nil
	}
	return tea.Quit
}

// tooSmall reports whether the known terminal size is below the minimum.
// Before the first size message the size is unknown and never too small.
func (m *model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < m.opts.minWidth || m.height < m.opts.minHeight
}

func (m *model) notice() string {
	msg := noticeStyle.Render(fmt.Sprintf("Terminal too small: %dx%d\nneed at least %dx%d",
		m.width, m.height, m.opts.minWidth, m.opts.minHeight))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}
