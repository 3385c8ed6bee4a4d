package screen

import (
	"errors"
	"fmt"
	"strings"
)

// Errors reported by the manager. Every failure is returned as an *Error
// wrapping one of these; compare with errors.Is.
var (
	// ErrNotAWindow is returned when a type does not produce a usable window.
	ErrNotAWindow = errors.New("not a window")

	// ErrAlreadyLoaded is returned when loading a name that is already registered.
	ErrAlreadyLoaded = errors.New("window already loaded")

	// ErrNotLoaded is returned when unloading or reloading an absent name.
	ErrNotLoaded = errors.New("window not loaded")

	// ErrActivelyRunning is returned when unloading the current window without force.
	ErrActivelyRunning = errors.New("cannot unload an actively running window")

	// ErrNotFound is returned when changing to a name that is not registered.
	ErrNotFound = errors.New("window not found")

	// ErrHookShape is returned when a global hook has the wrong calling shape.
	ErrHookShape = errors.New("invalid hook shape")

	// ErrNoCurrentWindow is returned when a frame is requested before any
	// window has been made current.
	ErrNoCurrentWindow = errors.New("no window has been set to run")

	// ErrTransitionDepth is returned when hooks nest window changes deeper
	// than the configured limit.
	ErrTransitionDepth = errors.New("too many nested window changes")
)

// Error describes a failed manager operation.
type Error struct {
	// Op is the operation that failed: "load", "unload", "reload", "change",
	// "update" or "hook".
	Op string

	// Name is the window name the operation was about, if any.
	Name string

	// Last is the last window known to the manager when the error occurred.
	Last Window

	// Detached is set by Reload when the window was unloaded but could not be
	// loaded again. It is no longer registered; Type can be used to retry.
	Detached bool

	// Type is the window type that was unloaded when Detached is set.
	Type Type

	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("screen: ")
	b.WriteString(e.Op)
	if e.Name != "" {
		fmt.Fprintf(&b, " %q", e.Name)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Detached {
		b.WriteString(" (window was unloaded and is no longer registered)")
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// HookShapeError reports a global hook whose calling shape does not match.
type HookShapeError struct {
	// Hook names the hook being assigned ("setup", "enter", "leave"), if known.
	Hook string

	// Type is the Go type of the rejected value.
	Type string

	// Want is the required number of positional parameters.
	Want int

	// Positional is the number of fixed parameters of the rejected func.
	Positional int

	// Variadic is 1 when the rejected func takes a variadic parameter.
	Variadic int

	// Reason explains rejections not covered by the counts.
	Reason string
}

func (e *HookShapeError) Error() string {
	target := "the hook"
	if e.Hook != "" {
		target = e.Hook + " hook"
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s for %s: %s", ErrHookShape, target, e.Reason)
	}
	msg := fmt.Sprintf("%s: expected %d positional argument(s) only for the function assigned to %s, instead got %d positional argument(s)",
		ErrHookShape, e.Want, target, e.Positional)
	if e.Variadic > 0 {
		msg += fmt.Sprintf(" and %d variadic argument(s)", e.Variadic)
	}
	return msg
}

func (e *HookShapeError) Unwrap() error { return ErrHookShape }
