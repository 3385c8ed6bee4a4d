package main

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/mineral/internal/cliconfig"
	"github.com/bft-labs/mineral/pkg/log"
	"github.com/bft-labs/mineral/pkg/screen"
)

func demoManager(t *testing.T, start string) *screen.Manager {
	t.Helper()
	cfg := cliconfig.DefaultConfig()
	cfg.TextDelay = 0
	cfg.StartWindow = start
	m, err := newManager(cfg, log.NewNoopLogger())
	require.NoError(t, err)
	return m
}

func press(t *testing.T, m *screen.Manager, msg tea.KeyMsg) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, m.Update(&screen.Frame{Input: msg, Width: 80, Height: 24, Out: &out}))
	return out.String()
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestDemoTypes(t *testing.T) {
	m := screen.New()
	require.NoError(t, m.LoadWindows(false, demoTypes()...))
	assert.Equal(t, []string{"About", "Game", "Menu"}, m.Names())
}

func TestNewManager_UnknownStartWindow(t *testing.T) {
	cfg := cliconfig.DefaultConfig()
	cfg.StartWindow = "Credits"
	_, err := newManager(cfg, log.NewNoopLogger())
	assert.ErrorIs(t, err, screen.ErrNotFound)
}

func TestMenu_DrawsOptions(t *testing.T) {
	m := demoManager(t, "Menu")
	var out bytes.Buffer
	require.NoError(t, m.Update(&screen.Frame{Width: 80, Height: 24, Out: &out}))

	assert.Contains(t, out.String(), "> Play <")
	assert.Contains(t, out.String(), "About")
}

func TestMenu_AboutAndBack(t *testing.T) {
	m := demoManager(t, "Menu")

	press(t, m, keyDown)
	press(t, m, keyEnter)
	require.Equal(t, "About", m.Current().Name())
	assert.Equal(t, "Menu", m.Last().Name())

	out := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Empty(t, out)
	assert.Equal(t, "Menu", m.Current().Name())
}

func TestMenu_Quit(t *testing.T) {
	m := demoManager(t, "Menu")

	press(t, m, keyDown)
	press(t, m, keyDown)
	press(t, m, keyEnter)
	assert.False(t, m.Running())
}

func TestGame_GreetsAndReturns(t *testing.T) {
	m := demoManager(t, "Game")
	game := m.Current().(*Game)

	out := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Ada")})
	assert.Contains(t, out, "What is your name?")
	assert.False(t, game.Greeted())

	out = press(t, m, keyEnter)
	assert.True(t, game.Greeted())
	assert.Contains(t, out, "Welcome, Ada.")

	press(t, m, keyEsc)
	assert.Equal(t, "Menu", m.Current().Name())
}

func TestGame_ReenterResetsInput(t *testing.T) {
	m := demoManager(t, "Game")
	game := m.Current().(*Game)

	press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Ada")})
	press(t, m, keyEnter)
	press(t, m, keyEsc)

	require.NoError(t, m.Change("Game"))
	assert.False(t, game.Greeted())
}
