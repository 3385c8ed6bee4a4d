package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds CLI configuration for mineral.
type Config struct {
	Debug         bool
	LogFile       string
	LogMaxSizeMB  int
	LogMaxAgeDays int
	LogMaxBackups int

	MinWidth      int
	MinHeight     int
	FrameInterval time.Duration
	AltScreen     bool

	StartWindow string
	WatchDir    string

	TextDelay time.Duration
	LineWrap  int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogFile:       DefaultLogPath(),
		LogMaxSizeMB:  10,
		LogMaxAgeDays: 7,
		LogMaxBackups: 3,
		MinWidth:      40,
		MinHeight:     10,
		FrameInterval: 50 * time.Millisecond,
		AltScreen:     true,
		StartWindow:   "Menu",
		TextDelay:     20 * time.Millisecond,
		LineWrap:      80,
	}
}

// DefaultLogPath returns ~/.mineral/mineral.log, or "" when the home
// directory is unknown.
func DefaultLogPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".mineral", "mineral.log")
	}
	return ""
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.StartWindow == "" {
		return fmt.Errorf("start window is required")
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be positive")
	}
	if c.TextDelay < 0 {
		return fmt.Errorf("text delay must not be negative")
	}
	if c.MinWidth < 0 || c.MinHeight < 0 {
		return fmt.Errorf("minimum size must not be negative")
	}
	if c.LineWrap == 0 {
		c.LineWrap = 80
	}
	if c.LogMaxSizeMB <= 0 {
		c.LogMaxSizeMB = 10
	}
	return nil
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setNonZeroInt is setInt for settings where negative values mean something.
func (s *configSetter) setNonZeroInt(flag string, value int, dst *int) {
	if value == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses an environment value and applies it with
// setInt, or setNonZeroInt when signed is true.
func (s *configSetter) setIntFromString(flag, value string, dst *int, signed bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if signed {
		s.setNonZeroInt(flag, i, dst)
	} else {
		s.setInt(flag, i, dst)
	}
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
