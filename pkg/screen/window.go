package screen

import (
	"io"
	"slices"
	"time"

	"github.com/bft-labs/mineral/pkg/layout"
	"github.com/bft-labs/mineral/pkg/log"
)

// Window is a single screen of the application.
//
// Name must be unique among loaded windows and must not change. The hooks
// are called by the Manager on the loop goroutine.
//
// When a hook changes the window again, the new change supersedes the one in
// progress and its remaining hooks are skipped. A window may therefore get
// OnLeave without a matching OnEnter, or stop being current without OnLeave.
type Window interface {
	// Name returns the registry name of the window.
	Name() string

	// OnSetup is called once each time the window is loaded or reloaded.
	OnSetup()

	// OnEnter is called when the window becomes current. previous is nil on
	// the very first window change of the manager. It is skipped when an
	// earlier hook of the same change already moved to another window.
	OnEnter(previous Window)

	// OnLeave is called when the window stops being current. next is never
	// nil. It is skipped when the global leave hook already moved to another
	// window.
	OnLeave(next Window)

	// OnUpdate is called once per loop iteration while the window is current.
	OnUpdate(f *Frame)
}

// Frame is what the render loop hands to the current window on every iteration.
type Frame struct {
	// Input is the event that triggered this frame. Its type belongs to the
	// host loop; nil for a plain tick.
	Input any

	// Width and Height are the terminal size in cells.
	Width, Height int

	// Delta is the time since the previous frame.
	Delta time.Duration

	// Seq counts frames from 1.
	Seq uint64

	// Out receives what the window draws for this frame. May be nil.
	Out io.Writer
}

// Write draws p into the frame. It discards output when the frame has no Out,
// so windows can always use fmt.Fprint(f, ...).
func (f *Frame) Write(p []byte) (int, error) {
	if f.Out == nil {
		return len(p), nil
	}
	return f.Out.Write(p)
}

// Args are the constructor arguments the manager forwards to every window.
type Args map[string]any

// Arg returns args[key] converted to T.
func Arg[T any](args Args, key string) (T, bool) {
	v, ok := args[key].(T)
	return v, ok
}

// Env is passed to window constructors.
type Env struct {
	// Name is the registry name the window must report.
	Name string

	// Manager is the manager loading the window.
	Manager *Manager

	// Args are the manager's constructor arguments.
	Args Args

	// Logger is the manager's logger. Never nil when built by a Manager.
	Logger log.Logger
}

// Base implements Window with no-op hooks. Embed it and override what you need.
type Base struct {
	env    Env
	states []*layout.State
}

// NewBase returns a Base bound to env.
func NewBase(env Env) Base {
	if env.Logger == nil {
		env.Logger = log.NewNoopLogger()
	}
	return Base{env: env}
}

// Name returns the registry name of the window.
func (b *Base) Name() string { return b.env.Name }

// Manager returns the manager that loaded the window.
func (b *Base) Manager() *Manager { return b.env.Manager }

// Args returns the constructor arguments.
func (b *Base) Args() Args { return b.env.Args }

// Logger returns the logger of the owning manager.
func (b *Base) Logger() log.Logger { return b.env.Logger }

// Quit asks the render loop to stop after the current frame.
func (b *Base) Quit() {
	if b.env.Manager != nil {
		b.env.Manager.Quit()
	}
}

// Change makes another loaded window current.
func (b *Base) Change(name string) error {
	if b.env.Manager == nil {
		return &Error{Op: "change", Name: name, Err: ErrNotFound}
	}
	return b.env.Manager.Change(name)
}

// AddState attaches layout state to the window.
func (b *Base) AddState(s *layout.State) {
	b.states = append(b.states, s)
}

// RemoveState detaches s. It reports whether s was attached.
func (b *Base) RemoveState(s *layout.State) bool {
	i := slices.Index(b.states, s)
	if i < 0 {
		return false
	}
	b.states = slices.Delete(b.states, i, i+1)
	return true
}

// States returns the attached layout states.
func (b *Base) States() []*layout.State {
	return slices.Clone(b.states)
}

func (b *Base) OnSetup()          {}
func (b *Base) OnEnter(Window)    {}
func (b *Base) OnLeave(Window)    {}
func (b *Base) OnUpdate(f *Frame) {}

var _ Window = (*Base)(nil)
