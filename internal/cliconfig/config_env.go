package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (MINERAL_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setBoolFromString("debug", os.Getenv("MINERAL_DEBUG"), &cfg.Debug)
	s.setString("log-file", os.Getenv("MINERAL_LOG_FILE"), &cfg.LogFile)
	s.setString("start", os.Getenv("MINERAL_START_WINDOW"), &cfg.StartWindow)
	s.setString("watch-dir", os.Getenv("MINERAL_WATCH_DIR"), &cfg.WatchDir)
	s.setBoolFromString("alt-screen", os.Getenv("MINERAL_ALT_SCREEN"), &cfg.AltScreen)

	if err := s.setDuration("frame-interval", os.Getenv("MINERAL_FRAME_INTERVAL"), &cfg.FrameInterval); err != nil {
		return err
	}
	if err := s.setDuration("text-delay", os.Getenv("MINERAL_TEXT_DELAY"), &cfg.TextDelay); err != nil {
		return err
	}

	ints := []struct {
		flag   string
		env    string
		dst    *int
		signed bool
	}{
		{"log-max-size", "MINERAL_LOG_MAX_SIZE_MB", &cfg.LogMaxSizeMB, false},
		{"log-max-age", "MINERAL_LOG_MAX_AGE_DAYS", &cfg.LogMaxAgeDays, false},
		{"log-max-backups", "MINERAL_LOG_MAX_BACKUPS", &cfg.LogMaxBackups, false},
		{"min-width", "MINERAL_MIN_WIDTH", &cfg.MinWidth, false},
		{"min-height", "MINERAL_MIN_HEIGHT", &cfg.MinHeight, false},
		{"line-wrap", "MINERAL_LINE_WRAP", &cfg.LineWrap, true},
	}
	for _, v := range ints {
		if err := s.setIntFromString(v.flag, os.Getenv(v.env), v.dst, v.signed); err != nil {
			return err
		}
	}

	return nil
}
