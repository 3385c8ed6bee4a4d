package screen_test

import (
	"fmt"

	"github.com/bft-labs/mineral/pkg/screen"
)

// recorder captures hook calls in order.
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) reset() { r.calls = nil }

func nameOf(w screen.Window) string {
	if w == nil {
		return "<nil>"
	}
	return w.Name()
}

// probe is a window that records its hooks.
type probe struct {
	screen.Base
	rec     *recorder
	updates int
	enter   func(p *probe, previous screen.Window)
}

func (p *probe) OnSetup() { p.rec.add("%s.setup", p.Name()) }

func (p *probe) OnEnter(previous screen.Window) {
	p.rec.add("%s.enter(%s)", p.Name(), nameOf(previous))
	if p.enter != nil {
		p.enter(p, previous)
	}
}

func (p *probe) OnLeave(next screen.Window) {
	p.rec.add("%s.leave(%s)", p.Name(), nameOf(next))
}

func (p *probe) OnUpdate(f *screen.Frame) {
	p.updates++
	fmt.Fprintf(f, "%s frame %d", p.Name(), f.Seq)
}

func probeType(name string, rec *recorder) screen.Type {
	return screen.Define(func(env screen.Env) *probe {
		return &probe{Base: screen.NewBase(env), rec: rec}
	}, screen.WithName(name))
}

func recordingHooks(rec *recorder) []screen.Option {
	return []screen.Option{
		screen.WithOnSetup(func(w screen.Window) {
			rec.add("global.setup(%s)", nameOf(w))
		}),
		screen.WithOnEnter(func(current, previous screen.Window) {
			rec.add("global.enter(%s,%s)", nameOf(current), nameOf(previous))
		}),
		screen.WithOnLeave(func(previous, next screen.Window) {
			rec.add("global.leave(%s,%s)", nameOf(previous), nameOf(next))
		}),
	}
}
