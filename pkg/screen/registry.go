package screen

import (
	"fmt"
	"maps"
	"slices"

	"github.com/bft-labs/mineral/pkg/log"
)

// Load builds a window from t and registers it under t.Name(), then runs the
// global setup hook followed by the window's OnSetup.
//
// Without force, loading a name that is already registered fails with
// ErrAlreadyLoaded. With force the existing entry is replaced silently; if
// it was the current window, Current keeps pointing at the old instance.
func (m *Manager) Load(t Type, force bool) error {
	if err := m.load(t, force); err != nil {
		return &Error{Op: "load", Name: typeNameOf(t), Last: m.last, Err: err}
	}
	return nil
}

// LoadWindows loads each type in order. It stops at the first failure;
// windows loaded before it stay registered.
func (m *Manager) LoadWindows(force bool, types ...Type) error {
	for _, t := range types {
		if err := m.Load(t, force); err != nil {
			return err
		}
	}
	return nil
}

// Unload removes the named window and returns its Type so it can be
// rebuilt. Unloading the current window fails with ErrActivelyRunning
// unless force is set, in which case Current is left pointing at a window
// that is no longer registered.
func (m *Manager) Unload(name string, force bool) (Type, error) {
	t, err := m.unload(name, force)
	if err != nil {
		return nil, &Error{Op: "unload", Name: name, Last: m.last, Err: err}
	}
	return t, nil
}

// Reload unloads the named window and loads a fresh instance of the same
// type with the same force flag. It returns the new instance.
//
// Reload is not atomic. If loading fails after the unload succeeded, the
// returned *Error has Detached set and carries the Type for a retry.
// Reloading the current window requires force and leaves Current on the old
// instance until the next Change.
func (m *Manager) Reload(name string, force bool) (Window, error) {
	t, err := m.unload(name, force)
	if err != nil {
		return nil, &Error{Op: "reload", Name: name, Last: m.last, Err: err}
	}
	if err := m.load(t, force); err != nil {
		m.logger.Error("reload left window unloaded", log.String("window", name), log.Err(err))
		return nil, &Error{Op: "reload", Name: name, Last: m.last, Detached: true, Type: t, Err: err}
	}
	return m.windows[name].window, nil
}

// Window returns the loaded window with the given name.
func (m *Manager) Window(name string) (Window, bool) {
	e, ok := m.windows[name]
	return e.window, ok
}

// Windows returns a copy of the registry.
func (m *Manager) Windows() map[string]Window {
	out := make(map[string]Window, len(m.windows))
	for name, e := range m.windows {
		out[name] = e.window
	}
	return out
}

// Names returns the loaded window names in sorted order.
func (m *Manager) Names() []string {
	return slices.Sorted(maps.Keys(m.windows))
}

// Len returns the number of loaded windows.
func (m *Manager) Len() int {
	return len(m.windows)
}

func (m *Manager) load(t Type, force bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil type", ErrNotAWindow)
	}
	name := t.Name()
	if name == "" {
		return fmt.Errorf("%w: empty window name", ErrNotAWindow)
	}
	if _, ok := m.windows[name]; ok && !force {
		return ErrAlreadyLoaded
	}

	w := t.New(m.env(name))
	if w == nil {
		return fmt.Errorf("%w: constructor returned nil", ErrNotAWindow)
	}
	if got := w.Name(); got != name {
		return fmt.Errorf("%w: window reports name %q, registered as %q", ErrNotAWindow, got, name)
	}

	m.windows[name] = entry{window: w, typ: t}
	m.logger.Info("window loaded", log.String("window", name), log.Bool("force", force))

	if m.onSetup != nil {
		m.onSetup(w)
	}
	w.OnSetup()
	return nil
}

func (m *Manager) unload(name string, force bool) (Type, error) {
	e, ok := m.windows[name]
	if !ok {
		return nil, ErrNotLoaded
	}
	if !force && m.current != nil && m.current.Name() == name {
		return nil, ErrActivelyRunning
	}

	delete(m.windows, name)
	m.logger.Info("window unloaded", log.String("window", name), log.Bool("force", force))
	return e.typ, nil
}

func typeNameOf(t Type) string {
	if t == nil {
		return ""
	}
	return t.Name()
}
