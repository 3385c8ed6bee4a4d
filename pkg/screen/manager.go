package screen

import (
	"go.uber.org/atomic"

	"github.com/bft-labs/mineral/pkg/log"
)

// Manager owns the loaded windows and the current/last window pointers.
// Use New to create one; there is no package-level manager.
type Manager struct {
	windows map[string]entry
	current Window
	last    Window

	running *atomic.Bool

	onSetup SetupHook
	onEnter EnterHook
	onLeave LeaveHook

	args     Args
	logger   log.Logger
	maxDepth int
	depth    int
	changes  uint64
}

type entry struct {
	window Window
	typ    Type
}

// New creates an empty, running manager.
func New(opts ...Option) *Manager {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	args := o.args
	if args == nil {
		args = Args{}
	}

	return &Manager{
		windows:  make(map[string]entry),
		running:  atomic.NewBool(true),
		onSetup:  o.onSetup,
		onEnter:  o.onEnter,
		onLeave:  o.onLeave,
		args:     args,
		logger:   o.logger,
		maxDepth: o.maxDepth,
	}
}

// Running reports whether the render loop should keep going.
// Safe to call from any goroutine.
func (m *Manager) Running() bool {
	return m.running.Load()
}

// SetRunning sets the run flag. Safe to call from any goroutine.
func (m *Manager) SetRunning(v bool) {
	m.running.Store(v)
}

// Quit clears the run flag; the render loop stops after the current frame.
// Safe to call from any goroutine.
func (m *Manager) Quit() {
	if m.running.Swap(false) {
		m.logger.Info("quit requested", windowField("window", m.current))
	}
}

// Logger returns the manager's logger.
func (m *Manager) Logger() log.Logger {
	return m.logger
}

// Update runs one frame of the current window.
func (m *Manager) Update(f *Frame) error {
	if m.current == nil {
		return &Error{Op: "update", Last: m.last, Err: ErrNoCurrentWindow}
	}
	m.current.OnUpdate(f)
	return nil
}

func (m *Manager) env(name string) Env {
	return Env{
		Name:    name,
		Manager: m,
		Args:    m.args,
		Logger:  m.logger,
	}
}

func windowField(key string, w Window) log.Field {
	if w == nil {
		return log.String(key, "")
	}
	return log.String(key, w.Name())
}

func hookField(kind HookKind) log.Field {
	return log.String("hook", kind.String())
}
