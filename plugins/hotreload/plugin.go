// Package hotreload reloads windows while the app is running. It watches a
// directory and maps every changed file to a window name; the window is then
// rebuilt on the loop goroutine and re-entered if it was current.
package hotreload

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/atomic"

	"github.com/bft-labs/mineral/pkg/app"
	"github.com/bft-labs/mineral/pkg/log"
	"github.com/bft-labs/mineral/pkg/screen"
)

// DefaultDebounceDelay is how long a file must stay quiet before its window
// is reloaded.
const DefaultDebounceDelay = 100 * time.Millisecond

// Config holds configuration options for the hot reload plugin.
type Config struct {
	// Dir is the directory to watch. The plugin is disabled when empty.
	Dir string

	// DebounceDelay is the delay to wait after a file change before reloading.
	// Default: 100 milliseconds
	DebounceDelay time.Duration

	// Resolve maps a changed file to a window name. The default uses the
	// file name without its extension, so "Menu.toml" reloads "Menu".
	Resolve func(path string) (window string, ok bool)
}

// DefaultConfig returns a Config watching dir with the default delay.
func DefaultConfig(dir string) Config {
	return Config{Dir: dir, DebounceDelay: DefaultDebounceDelay}
}

// Plugin watches files and reloads the windows they belong to.
type Plugin struct {
	mu sync.Mutex

	dir           string
	debounceDelay time.Duration
	resolve       func(string) (string, bool)

	logger   log.Logger
	dispatch func(func(*screen.Manager)) bool
	watcher  *fsnotify.Watcher
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	pending  map[string]*time.Timer
	reloads  *atomic.Int64
}

// New creates a hot reload plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = DefaultDebounceDelay
	}
	if cfg.Resolve == nil {
		cfg.Resolve = ResolveByStem
	}
	return &Plugin{
		dir:           cfg.Dir,
		debounceDelay: cfg.DebounceDelay,
		resolve:       cfg.Resolve,
		logger:        log.NewNoopLogger(),
		pending:       make(map[string]*time.Timer),
		reloads:       atomic.NewInt64(0),
	}
}

// ResolveByStem maps a path to its file name without extension. Hidden and
// editor backup files are ignored.
func ResolveByStem(path string) (string, bool) {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return "", false
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem, stem != ""
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "hotreload"
}

// Reloads returns how many windows were reloaded successfully.
func (p *Plugin) Reloads() int64 {
	return p.reloads.Load()
}

// Initialize starts watching the configured directory.
func (p *Plugin) Initialize(ctx context.Context, cfg app.PluginConfig) error {
	if cfg.Logger != nil {
		p.logger = cfg.Logger
	}
	p.dispatch = cfg.Dispatch

	if p.dir == "" || p.dispatch == nil {
		p.logger.Warn("hot reload disabled: no directory or dispatcher configured")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(p.dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", p.dir, err)
	}
	p.watcher = watcher

	watchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.logger.Info("hot reload watching", log.String("dir", p.dir))

	p.wg.Add(1)
	go p.watchLoop(watchCtx)
	return nil
}

// Shutdown stops the watcher and drops pending reloads.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()

	p.mu.Lock()
	for name, t := range p.pending {
		t.Stop()
		delete(p.pending, name)
	}
	p.mu.Unlock()

	if p.watcher != nil {
		return p.watcher.Close()
	}
	return nil
}

func (p *Plugin) watchLoop(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-p.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name, ok := p.resolve(event.Name)
			if !ok {
				continue
			}
			p.debounceReload(ctx, name)

		case err, ok := <-p.watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("hot reload watcher error", log.Err(err))
		}
	}
}

// debounceReload restarts the timer of window name.
func (p *Plugin) debounceReload(ctx context.Context, name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if t, ok := p.pending[name]; ok {
		t.Stop()
	}
	p.pending[name] = time.AfterFunc(p.debounceDelay, func() {
		p.mu.Lock()
		delete(p.pending, name)
		p.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		p.dispatch(func(m *screen.Manager) { p.reload(m, name) })
	})
}

// reload runs on the loop goroutine.
func (p *Plugin) reload(m *screen.Manager, name string) {
	if _, ok := m.Window(name); !ok {
		p.logger.Debug("hot reload skipped: window not loaded", log.String("window", name))
		return
	}
	cur := m.Current()
	wasCurrent := cur != nil && cur.Name() == name

	if _, err := m.Reload(name, true); err != nil {
		p.logger.Error("hot reload failed", log.String("window", name), log.Err(err))
		return
	}
	if wasCurrent {
		if err := m.Change(name); err != nil {
			p.logger.Error("hot reload could not re-enter window", log.String("window", name), log.Err(err))
			return
		}
	}
	p.reloads.Inc()
	p.logger.Info("window hot reloaded", log.String("window", name), log.Bool("current", wasCurrent))
}

// Ensure Plugin implements app.Plugin.
var _ app.Plugin = (*Plugin)(nil)
