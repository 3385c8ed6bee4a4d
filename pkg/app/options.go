package app

import (
	"io"
	"time"

	"github.com/bft-labs/mineral/pkg/log"
)

const (
	// DefaultFrameInterval is the time between two ticks of the loop.
	DefaultFrameInterval = 50 * time.Millisecond

	// DefaultMinWidth and DefaultMinHeight are the smallest terminal size
	// windows are drawn in.
	DefaultMinWidth  = 40
	DefaultMinHeight = 10
)

// Option configures an App.
type Option func(*options)

type options struct {
	minWidth      int
	minHeight     int
	frameInterval time.Duration
	altScreen     bool
	input         io.Reader
	output        io.Writer
	logger        log.Logger
	emitter       EventEmitter
	plugins       []Plugin
}

func defaultOptions() options {
	return options{
		minWidth:      DefaultMinWidth,
		minHeight:     DefaultMinHeight,
		frameInterval: DefaultFrameInterval,
		logger:        log.NewNoopLogger(),
	}
}

// WithMinSize sets the smallest terminal size windows are drawn in. Below it
// the loop pauses window updates and shows a notice. Zero disables the check.
func WithMinSize(width, height int) Option {
	return func(o *options) {
		o.minWidth = width
		o.minHeight = height
	}
}

// WithFrameInterval sets the tick interval. Non-positive values are ignored.
func WithFrameInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.frameInterval = d
		}
	}
}

// WithAltScreen runs the program in the alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(o *options) {
		o.altScreen = enabled
	}
}

// WithInput sets the input the program reads keys from. Defaults to stdin.
func WithInput(r io.Reader) Option {
	return func(o *options) {
		o.input = r
	}
}

// WithOutput sets where the program draws. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithLogger sets the logger. If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEventEmitter sets an emitter notified of state changes.
func WithEventEmitter(e EventEmitter) Option {
	return func(o *options) {
		o.emitter = e
	}
}

// WithPlugin registers a plugin. Plugins are initialized in registration
// order and shut down in reverse order.
func WithPlugin(p Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, p)
	}
}
