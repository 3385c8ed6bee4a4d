package hotreload

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/mineral/pkg/app"
	"github.com/bft-labs/mineral/pkg/screen"
)

type page struct {
	screen.Base
}

func pageType(name string) screen.Type {
	return screen.Define(func(env screen.Env) *page {
		return &page{Base: screen.NewBase(env)}
	}, screen.WithName(name))
}

// serialDispatcher runs dispatched functions under a mutex, standing in for
// the render loop.
type serialDispatcher struct {
	mu sync.Mutex
	m  *screen.Manager
}

func (d *serialDispatcher) dispatch(fn func(*screen.Manager)) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(d.m)
	return true
}

func (d *serialDispatcher) window(name string) screen.Window {
	d.mu.Lock()
	defer d.mu.Unlock()
	w, _ := d.m.Window(name)
	return w
}

func (d *serialDispatcher) current() screen.Window {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.m.Current()
}

func TestResolveByStem(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"/w/Menu.toml", "Menu", true},
		{"/w/Game", "Game", true},
		{"/w/.Menu.toml.swp", "", false},
		{"/w/Menu.toml~", "", false},
	}
	for _, tt := range tests {
		got, ok := ResolveByStem(tt.path)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ResolveByStem(%q) = %q, %v, want %q, %v", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPlugin_ReloadsChangedWindow(t *testing.T) {
	dir := t.TempDir()
	m := screen.New()
	require.NoError(t, m.LoadWindows(false, pageType("Menu"), pageType("Game")))
	require.NoError(t, m.Change("Game"))

	d := &serialDispatcher{m: m}
	oldGame := d.window("Game")
	oldMenu := d.window("Menu")

	p := New(Config{Dir: dir, DebounceDelay: 10 * time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, p.Initialize(ctx, app.PluginConfig{Dispatch: d.dispatch}))
	defer func() { assert.NoError(t, p.Shutdown(ctx)) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Game.toml"), []byte("x = 1"), 0o644))

	require.Eventually(t, func() bool { return p.Reloads() >= 1 }, 2*time.Second, 10*time.Millisecond)

	newGame := d.window("Game")
	assert.NotSame(t, oldGame, newGame)
	assert.Same(t, newGame, d.current(), "the current window is re-entered")
	assert.Same(t, oldMenu, d.window("Menu"))
}

func TestPlugin_IgnoresUnloadedWindows(t *testing.T) {
	dir := t.TempDir()
	m := screen.New()
	require.NoError(t, m.Load(pageType("Menu"), false))
	d := &serialDispatcher{m: m}

	p := New(Config{Dir: dir, DebounceDelay: 10 * time.Millisecond})
	ctx := context.Background()
	require.NoError(t, p.Initialize(ctx, app.PluginConfig{Dispatch: d.dispatch}))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Credits.toml"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Menu.toml"), nil, 0o644))

	require.Eventually(t, func() bool { return p.Reloads() >= 1 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, p.Shutdown(ctx))

	assert.Equal(t, []string{"Menu"}, m.Names())
}

func TestPlugin_DisabledWithoutDir(t *testing.T) {
	p := New(Config{})
	ctx := context.Background()

	require.NoError(t, p.Initialize(ctx, app.PluginConfig{}))
	require.NoError(t, p.Shutdown(ctx))
	assert.Equal(t, "hotreload", p.Name())
}

func TestPlugin_MissingDir(t *testing.T) {
	p := New(DefaultConfig(filepath.Join(t.TempDir(), "missing")))
	err := p.Initialize(context.Background(), app.PluginConfig{
		Dispatch: func(func(*screen.Manager)) bool { return true },
	})
	assert.Error(t, err)
}
