package hotreload

import "github.com/bft-labs/mineral/pkg/app"

// WithHotReload returns an app Option that reloads windows when the files
// mapped to them change.
//
// Usage:
//
//	a := app.New(m,
//	    hotreload.WithHotReload(hotreload.Config{
//	        Dir:           "./windows",
//	        DebounceDelay: 100 * time.Millisecond,
//	    }),
//	)
func WithHotReload(cfg Config) app.Option {
	return app.WithPlugin(New(cfg))
}
