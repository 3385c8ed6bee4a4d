package screen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/mineral/pkg/screen"
)

type named interface{ Name() string }

func TestHookKind(t *testing.T) {
	tests := []struct {
		kind  screen.HookKind
		name  string
		arity int
	}{
		{screen.HookSetup, "setup", 1},
		{screen.HookEnter, "enter", 2},
		{screen.HookLeave, "leave", 2},
		{screen.HookKind(9), "unknown", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.arity, tt.kind.Arity())
		})
	}
}

func TestValidateHook(t *testing.T) {
	var nilFunc func(screen.Window)

	tests := []struct {
		name    string
		fn      any
		arity   int
		wantErr bool
	}{
		{"window param", func(screen.Window) {}, 1, false},
		{"named hook type", screen.SetupHook(func(screen.Window) {}), 1, false},
		{"two window params", func(screen.Window, screen.Window) {}, 2, false},
		{"any params", func(any, any) {}, 2, false},
		{"narrower interface param", func(named) {}, 1, false},
		{"too many params", func(screen.Window, screen.Window) {}, 1, true},
		{"too few params", func(screen.Window) {}, 2, true},
		{"variadic", func(...screen.Window) {}, 1, true},
		{"variadic after positional", func(screen.Window, ...screen.Window) {}, 2, true},
		{"concrete param", func(*probe) {}, 1, true},
		{"returns value", func(screen.Window) error { return nil }, 1, true},
		{"not a func", 42, 1, true},
		{"untyped nil", nil, 1, true},
		{"nil func", nilFunc, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := screen.ValidateHook(tt.fn, tt.arity)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, screen.ErrHookShape)
			var se *screen.HookShapeError
			assert.True(t, errors.As(err, &se))
		})
	}
}

func TestHookShapeError_Message(t *testing.T) {
	err := screen.ValidateHook(func(screen.Window, ...screen.Window) {}, 1)
	var se *screen.HookShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Positional)
	assert.Equal(t, 1, se.Variadic)
	assert.Contains(t, err.Error(), "expected 1 positional argument(s)")
	assert.Contains(t, err.Error(), "1 variadic argument(s)")
}

func TestSetHook_RejectsWrongShapeAndKeepsPrevious(t *testing.T) {
	rec := &recorder{}
	m := screen.New()

	require.NoError(t, m.SetHook(screen.HookSetup, func(w screen.Window) {
		rec.add("setup(%s)", w.Name())
	}))

	err := m.SetHook(screen.HookSetup, func(a, b screen.Window) {})
	require.ErrorIs(t, err, screen.ErrHookShape)

	var se *screen.HookShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "setup", se.Hook)
	assert.Contains(t, err.Error(), "setup hook")

	require.NoError(t, m.Load(probeType("Menu", rec), false))
	assert.Equal(t, []string{"setup(Menu)", "Menu.setup"}, rec.calls)
}

func TestSetHook_WiderParamsGetNilPrevious(t *testing.T) {
	rec := &recorder{}
	m := screen.New()
	loadProbes(t, m, rec, "Menu")

	var gotCurrent, gotPrevious any
	calls := 0
	require.NoError(t, m.SetHook(screen.HookEnter, func(current, previous any) {
		calls++
		gotCurrent, gotPrevious = current, previous
	}))
	require.NotNil(t, m.OnEnterHook())

	require.NoError(t, m.Change("Menu"))
	assert.Equal(t, 1, calls)
	assert.Nil(t, gotPrevious)
	require.NotNil(t, gotCurrent)
	assert.Equal(t, "Menu", gotCurrent.(screen.Window).Name())
}

func TestSetHook_NilClears(t *testing.T) {
	m := screen.New(screen.WithOnLeave(func(previous, next screen.Window) {}))
	require.NotNil(t, m.OnLeaveHook())

	require.NoError(t, m.SetHook(screen.HookLeave, nil))
	assert.Nil(t, m.OnLeaveHook())
}

func TestSetHook_TypedNilClears(t *testing.T) {
	var setup screen.SetupHook
	var enter func(screen.Window, screen.Window)
	var leave func(current, next any)

	tests := []struct {
		name string
		kind screen.HookKind
		fn   any
		hook func(m *screen.Manager) bool
	}{
		{"nil SetupHook", screen.HookSetup, setup, func(m *screen.Manager) bool { return m.OnSetupHook() == nil }},
		{"nil plain func", screen.HookEnter, enter, func(m *screen.Manager) bool { return m.OnEnterHook() == nil }},
		{"nil wider func", screen.HookLeave, leave, func(m *screen.Manager) bool { return m.OnLeaveHook() == nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := screen.New(
				screen.WithOnSetup(func(screen.Window) {}),
				screen.WithOnEnter(func(current, previous screen.Window) {}),
				screen.WithOnLeave(func(previous, next screen.Window) {}),
			)
			require.False(t, tt.hook(m))

			require.NoError(t, m.SetHook(tt.kind, tt.fn))
			assert.True(t, tt.hook(m))
		})
	}
}

func TestSetHook_UnknownKind(t *testing.T) {
	m := screen.New()
	err := m.SetHook(screen.HookKind(7), func(screen.Window) {})
	assert.ErrorIs(t, err, screen.ErrHookShape)
}
