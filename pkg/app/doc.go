// Package app runs a screen.Manager in the terminal.
//
// The render loop is a bubbletea program. Every tick and every key or mouse
// event becomes one screen.Frame handed to Manager.Update, and whatever the
// current window writes into the frame is what the terminal shows. The loop
// ends after the first frame that leaves Manager.Running false.
//
// # Usage
//
//	m := screen.New(screen.WithLogger(logger))
//	if err := m.LoadWindows(false, menuType, gameType); err != nil {
//	    return err
//	}
//	if err := m.Change("Menu"); err != nil {
//	    return err
//	}
//	return app.New(m, app.WithAltScreen(true)).Run(ctx)
//
// # Plugins
//
// Plugins run beside the loop, for example to watch files. They are
// initialized in registration order before the loop starts and shut down in
// reverse order after it ends. They must not touch the manager from their
// own goroutines; PluginConfig.Dispatch queues a function that the loop runs
// between two frames.
//
// # State Machine
//
// Valid state transitions:
//   - Stopped -> Starting
//   - Starting -> Running, Crashed
//   - Running -> Stopping, Crashed
//   - Stopping -> Stopped, Crashed
//   - Crashed -> Starting
package app
