package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bft-labs/mineral/pkg/log"
	"github.com/bft-labs/mineral/pkg/screen"
)

// App drives a screen.Manager in the terminal.
type App struct {
	manager   *screen.Manager
	opts      options
	logger    log.Logger
	lifecycle *lifecycle

	mu      sync.Mutex
	program *tea.Program
	live    bool
	queued  []dispatchMsg
}

// New creates an App for m in StateStopped.
func New(m *screen.Manager, opts ...Option) *App {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &App{
		manager:   m,
		opts:      o,
		logger:    o.logger,
		lifecycle: newLifecycle(o.logger, o.emitter),
	}
}

// Manager returns the driven manager.
func (a *App) Manager() *screen.Manager { return a.manager }

// Status returns the current lifecycle state. Safe to call from any goroutine.
func (a *App) Status() State { return a.lifecycle.State() }

// Run initializes the plugins and runs the render loop until the manager
// stops running or ctx is done. A window must already be current.
func (a *App) Run(ctx context.Context) error {
	if a.manager.Current() == nil {
		return &screen.Error{Op: "run", Last: a.manager.Last(), Err: screen.ErrNoCurrentWindow}
	}
	if err := validateModuleVersions(); err != nil {
		return err
	}
	if !a.lifecycle.CanStart() {
		return ErrAlreadyRunning
	}
	if err := a.lifecycle.TransitionTo(StateStarting, "Run() called"); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	mdl := newModel(a.manager, a.opts)
	mdl.start = a.goLive
	program := tea.NewProgram(mdl, a.programOptions(runCtx)...)
	a.setProgram(program)
	defer a.setProgram(nil)

	started, err := a.initPlugins(runCtx)
	if err != nil {
		a.shutdownPlugins(started)
		_ = a.lifecycle.TransitionTo(StateCrashed, "plugin init failed")
		return err
	}

	_ = a.lifecycle.TransitionTo(StateRunning, "render loop starting")
	a.logger.Info("render loop started", log.String("window", a.manager.Current().Name()))

	_, runErr := program.Run()
	cancel()

	_ = a.lifecycle.TransitionTo(StateStopping, "render loop ended")
	a.shutdownPlugins(started)

	if err := loopError(ctx, runErr, mdl.err); err != nil {
		a.logger.Error("render loop failed", log.Err(err))
		_ = a.lifecycle.TransitionTo(StateCrashed, err.Error())
		return err
	}
	_ = a.lifecycle.TransitionTo(StateStopped, "render loop finished")
	return nil
}

// Dispatch runs fn on the loop goroutine between two frames. Calls made
// before the loop reads messages, such as from Plugin.Initialize, are queued
// and run in order once it starts. It returns false when no loop is running.
func (a *App) Dispatch(fn func(*screen.Manager)) bool {
	a.mu.Lock()
	p := a.program
	if p == nil || fn == nil {
		a.mu.Unlock()
		return false
	}
	if !a.live {
		a.queued = append(a.queued, dispatchMsg(fn))
		a.mu.Unlock()
		return true
	}
	a.mu.Unlock()

	p.Send(dispatchMsg(fn))
	return a.Status() == StateRunning || a.Status() == StateStarting
}

// goLive marks the loop as reading messages and hands over the functions
// queued before that.
func (a *App) goLive() []dispatchMsg {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.live = true
	queued := a.queued
	a.queued = nil
	return queued
}

func (a *App) setProgram(p *tea.Program) {
	a.mu.Lock()
	a.program = p
	a.live = false
	a.queued = nil
	a.mu.Unlock()
}

func (a *App) programOptions(ctx context.Context) []tea.ProgramOption {
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	}
	if a.opts.input != nil {
		opts = append(opts, tea.WithInput(a.opts.input))
	}
	if a.opts.output != nil {
		opts = append(opts, tea.WithOutput(a.opts.output))
	}
	if a.opts.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return opts
}

func (a *App) initPlugins(ctx context.Context) ([]Plugin, error) {
	cfg := PluginConfig{Logger: a.logger, Dispatch: a.Dispatch}
	started := make([]Plugin, 0, len(a.opts.plugins))
	for _, p := range a.opts.plugins {
		if err := p.Initialize(ctx, cfg); err != nil {
			a.logger.Error("plugin initialization failed",
				log.String("plugin", p.Name()),
				log.Err(err))
			return started, fmt.Errorf("plugin %s: %w", p.Name(), err)
		}
		started = append(started, p)
		a.logger.Info("plugin initialized", log.String("plugin", p.Name()))
	}
	return started, nil
}

func (a *App) shutdownPlugins(plugins []Plugin) {
	ctx := context.Background()
	for i := len(plugins) - 1; i >= 0; i-- {
		p := plugins[i]
		if err := p.Shutdown(ctx); err != nil {
			a.logger.Error("plugin shutdown failed",
				log.String("plugin", p.Name()),
				log.Err(err))
			continue
		}
		a.logger.Info("plugin shutdown complete", log.String("plugin", p.Name()))
	}
}

// loopError picks the error Run reports. Cancellation of the caller's
// context and an interrupt are normal ways to stop.
func loopError(ctx context.Context, runErr, frameErr error) error {
	if frameErr != nil {
		return frameErr
	}
	switch {
	case runErr == nil:
		return nil
	case errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	case errors.Is(runErr, tea.ErrInterrupted):
		return nil
	}
	return runErr
}

// validateModuleVersions checks that all module versions are compatible.
func validateModuleVersions() error {
	modules := map[string]struct {
		version    string
		minVersion string
	}{
		"log":    {log.Version, log.MinCompatibleVersion},
		"screen": {screen.Version, screen.MinCompatibleVersion},
	}

	for name, m := range modules {
		if !isVersionCompatible(m.version, m.minVersion) {
			return fmt.Errorf("module %s version %s is below minimum compatible version %s",
				name, m.version, m.minVersion)
		}
	}
	return nil
}

// isVersionCompatible reports whether version >= minVersion, both in
// "major.minor.patch" form.
func isVersionCompatible(version, minVersion string) bool {
	var vMajor, vMinor, vPatch int
	var mMajor, mMinor, mPatch int

	_, _ = fmt.Sscanf(version, "%d.%d.%d", &vMajor, &vMinor, &vPatch)
	_, _ = fmt.Sscanf(minVersion, "%d.%d.%d", &mMajor, &mMinor, &mPatch)

	if vMajor != mMajor {
		return vMajor > mMajor
	}
	if vMinor != mMinor {
		return vMinor > mMinor
	}
	return vPatch >= mPatch
}
