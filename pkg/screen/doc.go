// Package screen implements the window registry and transition state machine
// at the heart of mineral.
//
// A terminal application is a set of named, mutually exclusive windows. The
// [Manager] owns every loaded window, knows which one is current, and runs
// the lifecycle hooks in a fixed order whenever the current window changes.
//
// # Defining Windows
//
// Embed [Base] to get no-op hooks and override the ones you need. Wrap the
// constructor with [Define] to get a [Type] the manager can load:
//
//	type Menu struct {
//	    screen.Base
//	}
//
//	func (m *Menu) OnEnter(previous screen.Window) { ... }
//	func (m *Menu) OnUpdate(f *screen.Frame)       { ... }
//
//	var MenuType = screen.Define(func(env screen.Env) *Menu {
//	    return &Menu{Base: screen.NewBase(env)}
//	})
//
// The window name defaults to the Go type name ("Menu"); use [WithName] to
// choose another one.
//
// # Transitions
//
// [Manager.Change] makes a loaded window current. Hooks fire strictly in this
// order, after both the current and last window have already been updated:
//
//  1. global leave hook (previous, next)
//  2. previous.OnLeave(next), when there is a previous window
//  3. global enter hook (next, previous)
//  4. next.OnEnter(previous)
//
// # Global Hooks
//
// Global hooks are plain function values. The typed setters reject a wrong
// shape at compile time; [Manager.SetHook] accepts any func value and checks
// its shape with [ValidateHook] before installing it.
//
// # Concurrency
//
// A Manager is driven from a single goroutine. Only [Manager.Running] and
// [Manager.Quit] may be called from other goroutines.
package screen
