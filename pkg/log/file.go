package log

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileConfig configures a rotating log file.
type FileConfig struct {
	// Path of the log file. Parent directories are created.
	Path string

	// Debug lowers the level from info to debug.
	Debug bool

	// MaxSizeMB is the size at which the file is rotated. Default: 10
	MaxSizeMB int

	// MaxAgeDays is how long rotated files are kept. Default: 7
	MaxAgeDays int

	// MaxBackups is the number of rotated files kept. Default: 3
	MaxBackups int

	// Truncate empties the file before the first write so every run starts
	// with a clean log.
	Truncate bool
}

func (c *FileConfig) setDefaults() {
	if c.MaxSizeMB <= 0 {
		c.MaxSizeMB = 10
	}
	if c.MaxAgeDays <= 0 {
		c.MaxAgeDays = 7
	}
	if c.MaxBackups <= 0 {
		c.MaxBackups = 3
	}
}

// FileLogger writes JSON log lines to a rotating file.
type FileLogger struct {
	*ZerologAdapter
	writer *lumberjack.Logger
}

// NewFileLogger opens (or creates) the log file described by cfg.
func NewFileLogger(cfg FileConfig) (*FileLogger, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("log file path is required")
	}
	cfg.setDefaults()

	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	if cfg.Truncate {
		f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("truncate log file: %w", err)
		}
		_ = f.Close()
	}

	w := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxAge:     cfg.MaxAgeDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()

	return &FileLogger{
		ZerologAdapter: NewZerologAdapterWithLogger(logger),
		writer:         w,
	}, nil
}

// Path returns the path of the log file.
func (f *FileLogger) Path() string {
	return f.writer.Filename
}

// Close flushes and closes the log file.
func (f *FileLogger) Close() error {
	return f.writer.Close()
}
