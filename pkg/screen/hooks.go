package screen

import (
	"errors"
	"fmt"
	"reflect"
)

// SetupHook runs for every window right before the window's own OnSetup.
type SetupHook func(w Window)

// EnterHook runs on every change right before the entered window's OnEnter.
// previous is nil on the first change.
type EnterHook func(current, previous Window)

// LeaveHook runs on every change right before the left window's OnLeave.
// previous is nil on the first change.
type LeaveHook func(previous, next Window)

// HookKind identifies one of the three global hooks.
type HookKind int

const (
	HookSetup HookKind = iota
	HookEnter
	HookLeave
)

// String returns the hook name.
func (k HookKind) String() string {
	switch k {
	case HookSetup:
		return "setup"
	case HookEnter:
		return "enter"
	case HookLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// Arity returns the number of positional parameters the manager calls the
// hook with.
func (k HookKind) Arity() int {
	switch k {
	case HookSetup:
		return 1
	case HookEnter, HookLeave:
		return 2
	default:
		return -1
	}
}

var windowIface = reflect.TypeFor[Window]()

// ValidateHook checks that fn can be called by the manager with arity
// positional Window arguments: a func of exactly arity parameters, no
// variadic parameter, each parameter able to hold a Window, and no results.
// It returns a *HookShapeError otherwise.
func ValidateHook(fn any, arity int) error {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return &HookShapeError{Type: fmt.Sprintf("%T", fn), Want: arity, Reason: fmt.Sprintf("%T is not a func", fn)}
	}
	if v.IsNil() {
		return &HookShapeError{Type: fmt.Sprintf("%T", fn), Want: arity, Reason: "nil func"}
	}

	t := v.Type()
	shapeErr := &HookShapeError{Type: t.String(), Want: arity, Positional: t.NumIn()}
	if t.IsVariadic() {
		shapeErr.Positional--
		shapeErr.Variadic = 1
	}
	if shapeErr.Variadic != 0 || t.NumIn() != arity {
		return shapeErr
	}
	for i := 0; i < t.NumIn(); i++ {
		if !windowIface.AssignableTo(t.In(i)) {
			shapeErr.Reason = fmt.Sprintf("parameter %d of type %s cannot hold a screen.Window", i+1, t.In(i))
			return shapeErr
		}
	}
	if t.NumOut() != 0 {
		shapeErr.Reason = fmt.Sprintf("hooks return nothing, got %d result(s)", t.NumOut())
		return shapeErr
	}
	return nil
}

// SetHook validates fn against the shape of kind and installs it as the
// global hook. A nil fn, untyped or a nil func value of any type, removes
// the hook. On error the previous hook is kept.
func (m *Manager) SetHook(kind HookKind, fn any) error {
	if kind.Arity() < 0 {
		return &Error{Op: "hook", Last: m.last, Err: fmt.Errorf("%w: unknown hook kind %d", ErrHookShape, int(kind))}
	}
	if fn == nil || isNilFunc(fn) {
		m.clearHook(kind)
		return nil
	}
	if err := ValidateHook(fn, kind.Arity()); err != nil {
		var se *HookShapeError
		if errors.As(err, &se) {
			se.Hook = kind.String()
		}
		return &Error{Op: "hook", Name: kind.String(), Last: m.last, Err: err}
	}

	switch kind {
	case HookSetup:
		switch f := fn.(type) {
		case SetupHook:
			m.onSetup = f
		case func(Window):
			m.onSetup = f
		default:
			call := reflectHook(fn)
			m.onSetup = func(w Window) { call(w) }
		}
	case HookEnter:
		switch f := fn.(type) {
		case EnterHook:
			m.onEnter = f
		case func(Window, Window):
			m.onEnter = f
		default:
			call := reflectHook(fn)
			m.onEnter = func(current, previous Window) { call(current, previous) }
		}
	case HookLeave:
		switch f := fn.(type) {
		case LeaveHook:
			m.onLeave = f
		case func(Window, Window):
			m.onLeave = f
		default:
			call := reflectHook(fn)
			m.onLeave = func(previous, next Window) { call(previous, next) }
		}
	}
	m.logger.Debug("global hook installed", hookField(kind))
	return nil
}

func isNilFunc(fn any) bool {
	v := reflect.ValueOf(fn)
	return v.Kind() == reflect.Func && v.IsNil()
}

func (m *Manager) clearHook(kind HookKind) {
	switch kind {
	case HookSetup:
		m.onSetup = nil
	case HookEnter:
		m.onEnter = nil
	case HookLeave:
		m.onLeave = nil
	}
}

// SetOnSetup installs the global setup hook. nil removes it.
func (m *Manager) SetOnSetup(h SetupHook) { m.onSetup = h }

// SetOnEnter installs the global enter hook. nil removes it.
func (m *Manager) SetOnEnter(h EnterHook) { m.onEnter = h }

// SetOnLeave installs the global leave hook. nil removes it.
func (m *Manager) SetOnLeave(h LeaveHook) { m.onLeave = h }

// OnSetupHook returns the global setup hook, or nil.
func (m *Manager) OnSetupHook() SetupHook { return m.onSetup }

// OnEnterHook returns the global enter hook, or nil.
func (m *Manager) OnEnterHook() EnterHook { return m.onEnter }

// OnLeaveHook returns the global leave hook, or nil.
func (m *Manager) OnLeaveHook() LeaveHook { return m.onLeave }

// reflectHook adapts a validated func value whose parameters are interfaces
// wider than Window.
func reflectHook(fn any) func(args ...Window) {
	v := reflect.ValueOf(fn)
	t := v.Type()
	return func(args ...Window) {
		in := make([]reflect.Value, len(args))
		for i, w := range args {
			if w == nil {
				in[i] = reflect.Zero(t.In(i))
				continue
			}
			in[i] = reflect.ValueOf(w)
		}
		v.Call(in)
	}
}
