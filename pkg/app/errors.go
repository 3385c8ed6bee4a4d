package app

import "errors"

var (
	// ErrAlreadyRunning is returned by Run while the app is already running,
	// and for invalid state transitions out of an active state.
	ErrAlreadyRunning = errors.New("app already running")

	// ErrNotRunning is returned for invalid state transitions out of an
	// inactive state.
	ErrNotRunning = errors.New("app not running")
)
