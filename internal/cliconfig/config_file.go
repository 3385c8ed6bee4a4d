package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Debug         *bool  `toml:"debug"`
	LogFile       string `toml:"log_file"`
	LogMaxSizeMB  int    `toml:"log_max_size_mb"`
	LogMaxAgeDays int    `toml:"log_max_age_days"`
	LogMaxBackups int    `toml:"log_max_backups"`
	MinWidth      int    `toml:"min_width"`
	MinHeight     int    `toml:"min_height"`
	FrameInterval string `toml:"frame_interval"`
	AltScreen     *bool  `toml:"alt_screen"`
	StartWindow   string `toml:"start_window"`
	WatchDir      string `toml:"watch_dir"`
	TextDelay     string `toml:"text_delay"`
	LineWrap      int    `toml:"line_wrap"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.mineral/config.toml if the user home
// directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".mineral", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setBool("debug", fc.Debug, &cfg.Debug)
	s.setString("log-file", fc.LogFile, &cfg.LogFile)
	s.setInt("log-max-size", fc.LogMaxSizeMB, &cfg.LogMaxSizeMB)
	s.setInt("log-max-age", fc.LogMaxAgeDays, &cfg.LogMaxAgeDays)
	s.setInt("log-max-backups", fc.LogMaxBackups, &cfg.LogMaxBackups)

	s.setInt("min-width", fc.MinWidth, &cfg.MinWidth)
	s.setInt("min-height", fc.MinHeight, &cfg.MinHeight)
	if err := s.setDuration("frame-interval", fc.FrameInterval, &cfg.FrameInterval); err != nil {
		return err
	}
	s.setBool("alt-screen", fc.AltScreen, &cfg.AltScreen)

	s.setString("start", fc.StartWindow, &cfg.StartWindow)
	s.setString("watch-dir", fc.WatchDir, &cfg.WatchDir)

	if err := s.setDuration("text-delay", fc.TextDelay, &cfg.TextDelay); err != nil {
		return err
	}
	s.setNonZeroInt("line-wrap", fc.LineWrap, &cfg.LineWrap)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
