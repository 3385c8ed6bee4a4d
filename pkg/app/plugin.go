package app

import (
	"context"

	"github.com/bft-labs/mineral/pkg/log"
	"github.com/bft-labs/mineral/pkg/screen"
)

// Plugin is an optional component that runs beside the render loop.
type Plugin interface {
	// Name identifies the plugin in logs.
	Name() string

	// Initialize starts the plugin. ctx is cancelled when the app stops.
	Initialize(ctx context.Context, cfg PluginConfig) error

	// Shutdown stops the plugin and waits for its goroutines.
	Shutdown(ctx context.Context) error
}

// PluginConfig is handed to every plugin on Initialize.
type PluginConfig struct {
	Logger log.Logger

	// Dispatch runs fn on the loop goroutine between two frames. Calls made
	// during Initialize are queued and run once the loop starts; they are
	// dropped if a later plugin fails to initialize. Once the loop runs,
	// Dispatch blocks until the loop accepts fn and returns false if the
	// loop has ended.
	Dispatch func(fn func(m *screen.Manager)) bool
}
