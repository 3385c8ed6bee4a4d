package screen

import "github.com/bft-labs/mineral/pkg/log"

// DefaultMaxDepth is the default bound on window changes nested inside hooks.
const DefaultMaxDepth = 32

// Option configures a Manager.
type Option func(*options)

type options struct {
	logger   log.Logger
	args     Args
	maxDepth int
	onSetup  SetupHook
	onEnter  EnterHook
	onLeave  LeaveHook
}

func defaultOptions() options {
	return options{
		logger:   log.NewNoopLogger(),
		maxDepth: DefaultMaxDepth,
	}
}

// WithLogger sets the logger used by the manager and handed to windows.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithArgs sets the constructor arguments forwarded to every window.
func WithArgs(args Args) Option {
	return func(o *options) {
		o.args = args
	}
}

// WithMaxDepth bounds how deeply hooks may nest window changes.
// Zero disables the check.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// WithOnSetup installs the global setup hook.
func WithOnSetup(h SetupHook) Option {
	return func(o *options) {
		o.onSetup = h
	}
}

// WithOnEnter installs the global enter hook.
func WithOnEnter(h EnterHook) Option {
	return func(o *options) {
		o.onEnter = h
	}
}

// WithOnLeave installs the global leave hook.
func WithOnLeave(h LeaveHook) Option {
	return func(o *options) {
		o.onLeave = h
	}
}
