package screen

import (
	"fmt"
	"strings"

	"github.com/bft-labs/mineral/pkg/log"
)

// Current returns the current window, or nil before the first Change.
func (m *Manager) Current() Window {
	return m.current
}

// Last returns the window that was current before the latest Change, or nil.
func (m *Manager) Last() Window {
	return m.last
}

// Change makes the named window current and runs the leave and enter hooks:
// the global leave hook, the previous window's OnLeave, the global enter
// hook, then the new window's OnEnter. Current and Last are updated before
// the first hook runs.
//
// Hooks may call Change again. When they do, the outer change stops firing
// its remaining hooks because a newer window has already been entered.
func (m *Manager) Change(name string) error {
	e, ok := m.windows[name]
	if !ok {
		return &Error{
			Op:   "change",
			Name: name,
			Last: m.last,
			Err:  fmt.Errorf("%w among the available windows: %s", ErrNotFound, strings.Join(m.Names(), ", ")),
		}
	}
	if m.maxDepth > 0 && m.depth >= m.maxDepth {
		return &Error{Op: "change", Name: name, Last: m.last, Err: fmt.Errorf("%w (limit %d)", ErrTransitionDepth, m.maxDepth)}
	}

	m.depth++
	defer func() { m.depth-- }()
	m.changes++
	seq := m.changes

	m.last = m.current
	m.current = e.window
	previous, next := m.last, m.current

	m.logger.Info("window changed",
		windowField("from", previous),
		windowField("to", next),
		log.Int("depth", m.depth),
	)

	steps := []func(){
		func() {
			if m.onLeave != nil {
				m.onLeave(previous, next)
			}
		},
		func() {
			if previous != nil {
				previous.OnLeave(next)
			}
		},
		func() {
			if m.onEnter != nil {
				m.onEnter(next, previous)
			}
		},
		func() { next.OnEnter(previous) },
	}
	for _, step := range steps {
		if m.changes != seq {
			m.logger.Debug("window change superseded",
				windowField("to", next),
				windowField("current", m.current),
			)
			return nil
		}
		step()
	}
	return nil
}
