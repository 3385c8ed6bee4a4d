// Package log provides the logging abstraction used by mineral components.
//
// This package defines a Logger interface that can be implemented by
// any logging library. Implementations are provided for zerolog, for a
// rotating log file, and a no-op logger that is the default for library users.
//
// # Usage
//
// Console output through the zerolog adapter:
//
//	logger := log.NewZerologAdapter()
//
// A log file next to the application, started fresh on every run. Terminal
// applications usually cannot write to stderr while they own the screen, so
// this is the sink to use from inside windows:
//
//	fl, err := log.NewFileLogger(log.FileConfig{Path: "mineral.log", Truncate: true})
//	if err != nil {
//	    return err
//	}
//	defer fl.Close()
//
//	manager := screen.New(screen.WithLogger(fl))
//
// # Custom Loggers
//
// Implement the Logger interface to integrate with an existing
// logging infrastructure:
//
//	type MyLogger struct { ... }
//
//	func (l *MyLogger) Debug(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Info(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Warn(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Error(msg string, fields ...log.Field) { ... }
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package log
