package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bft-labs/mineral/internal/cliconfig"
	"github.com/bft-labs/mineral/pkg/app"
	"github.com/bft-labs/mineral/pkg/log"
	"github.com/bft-labs/mineral/pkg/screen"
	"github.com/bft-labs/mineral/plugins/hotreload"
)

const helpDescription = `
A small terminal application built from windows.

Each window is a screen of its own. The manager loads them, switches between
them and runs their enter and leave hooks in a fixed order. Configure via
file, env (MINERAL_*) or flags.
`

var exampleUsage = strings.TrimSpace(`
  mineral
  mineral --start About --text-delay 0
  mineral --config $HOME/.mineral/config.toml --watch-dir ./windows
  mineral windows
`)

var errNotATerminal = errors.New("mineral needs an interactive terminal on stdout")

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	stderr := log.NewConsoleAdapter(os.Stderr, zerolog.InfoLevel)

	root := &cobra.Command{
		Use:           "mineral",
		Short:         "Run the mineral window demo",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, cfgPath, &cfg); err != nil {
				return err
			}
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotATerminal
			}
			return run(cfg)
		},
	}

	windows := &cobra.Command{
		Use:   "windows",
		Short: "List the windows the demo registers",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := screen.New()
			if err := m.LoadWindows(false, demoTypes()...); err != nil {
				return err
			}
			for _, name := range m.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	root.AddCommand(windows)

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.mineral/config.toml)")
	root.Flags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "log at debug level")
	root.Flags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file, empty to disable logging")
	root.Flags().IntVar(&cfg.LogMaxSizeMB, "log-max-size", cfg.LogMaxSizeMB, "log file size in MB before rotation")
	root.Flags().IntVar(&cfg.LogMaxAgeDays, "log-max-age", cfg.LogMaxAgeDays, "days to keep rotated log files")
	root.Flags().IntVar(&cfg.LogMaxBackups, "log-max-backups", cfg.LogMaxBackups, "number of rotated log files to keep")

	root.Flags().IntVar(&cfg.MinWidth, "min-width", cfg.MinWidth, "minimum terminal width")
	root.Flags().IntVar(&cfg.MinHeight, "min-height", cfg.MinHeight, "minimum terminal height")
	root.Flags().DurationVar(&cfg.FrameInterval, "frame-interval", cfg.FrameInterval, "time between two frames")
	root.Flags().BoolVar(&cfg.AltScreen, "alt-screen", cfg.AltScreen, "draw in the alternate screen buffer")

	root.Flags().StringVar(&cfg.StartWindow, "start", cfg.StartWindow, "window shown first")
	root.Flags().StringVar(&cfg.WatchDir, "watch-dir", cfg.WatchDir, "reload windows when files named after them change in this directory")
	root.Flags().DurationVar(&cfg.TextDelay, "text-delay", cfg.TextDelay, "delay between two typed characters")
	root.Flags().IntVar(&cfg.LineWrap, "line-wrap", cfg.LineWrap, "column text wraps at, negative to disable")

	if err := root.Execute(); err != nil {
		stderr.Error("mineral", log.Err(err))
		os.Exit(1)
	}
}

// loadConfig layers defaults < config file < env < flags into cfg.
func loadConfig(cmd *cobra.Command, cfgPath string, cfg *cliconfig.Config) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	return cfg.Validate()
}

func newLogger(cfg cliconfig.Config) (log.Logger, func() error, error) {
	if cfg.LogFile == "" {
		return log.NewNoopLogger(), func() error { return nil }, nil
	}
	fl, err := log.NewFileLogger(log.FileConfig{
		Path:       cfg.LogFile,
		Debug:      cfg.Debug,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxAgeDays: cfg.LogMaxAgeDays,
		MaxBackups: cfg.LogMaxBackups,
		Truncate:   true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return fl, fl.Close, nil
}

// newManager loads the demo windows and makes the start window current.
func newManager(cfg cliconfig.Config, logger log.Logger) (*screen.Manager, error) {
	m := screen.New(
		screen.WithLogger(logger),
		screen.WithArgs(screen.Args{
			argTextDelay: cfg.TextDelay,
			argLineWrap:  cfg.LineWrap,
		}),
		screen.WithOnEnter(func(current, previous screen.Window) {
			from := ""
			if previous != nil {
				from = previous.Name()
			}
			logger.Debug("entering window", log.String("window", current.Name()), log.String("from", from))
		}),
	)
	if err := m.LoadWindows(false, demoTypes()...); err != nil {
		return nil, err
	}
	if err := m.Change(cfg.StartWindow); err != nil {
		return nil, err
	}
	return m, nil
}

func run(cfg cliconfig.Config) error {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	logger.Info("configuration", log.Any("config", cfg))

	m, err := newManager(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		m.Quit()
	}()

	opts := []app.Option{
		app.WithLogger(logger),
		app.WithMinSize(cfg.MinWidth, cfg.MinHeight),
		app.WithFrameInterval(cfg.FrameInterval),
		app.WithAltScreen(cfg.AltScreen),
	}
	if cfg.WatchDir != "" {
		opts = append(opts, hotreload.WithHotReload(hotreload.DefaultConfig(cfg.WatchDir)))
	}

	if err := app.New(m, opts...).Run(ctx); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	logger.Info("bye")
	return nil
}
