package screen

import "reflect"

// Type describes a loadable window: the name it is registered under and how
// to build a fresh instance. Unload hands the Type back so the window can be
// built again.
type Type interface {
	Name() string
	New(env Env) Window
}

// TypeOption configures a Type built with Define.
type TypeOption func(*windowType)

// WithName overrides the registry name derived from the Go type.
func WithName(name string) TypeOption {
	return func(t *windowType) {
		t.name = name
	}
}

type windowType struct {
	name string
	ctor func(Env) Window
}

// Define returns a Type for windows built by ctor. The name is the name of W
// with any pointer stripped, so Define(newMenu) for a *Menu is "Menu".
func Define[W Window](ctor func(env Env) W, opts ...TypeOption) Type {
	t := &windowType{name: typeName(reflect.TypeFor[W]())}
	if ctor != nil {
		t.ctor = func(env Env) Window {
			w := ctor(env)
			if isNil(w) {
				return nil
			}
			return w
		}
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *windowType) Name() string { return t.name }

func (t *windowType) New(env Env) Window {
	if t.ctor == nil {
		return nil
	}
	return t.ctor(env)
}

func typeName(rt reflect.Type) string {
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	return rt.Name()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
