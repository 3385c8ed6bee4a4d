// Package layout holds positional bookkeeping for windows: sizes and
// positions, absolute or relative to a parent. It does no drawing.
package layout

import "math"

// Rect is a resolved area in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// State records where something wants to sit on screen.
// Absolute values win over relative ones when both are set.
type State struct {
	Parent *State
	Border string

	width, height       int
	relWidth, relHeight float64
	x, y                int
	relX, relY          float64

	hasSize, hasRelSize bool
	hasPos, hasRelPos   bool
}

// New returns a State nested in parent (nil for the whole terminal).
func New(parent *State) *State {
	return &State{Parent: parent}
}

// SetSize sets an absolute size in cells.
func (s *State) SetSize(width, height int) {
	s.width, s.height = width, height
	s.hasSize = true
}

// SetRelSize sets the size as a fraction of the parent.
func (s *State) SetRelSize(width, height float64) {
	s.relWidth, s.relHeight = width, height
	s.hasRelSize = true
}

// SetPos sets an absolute offset from the parent origin.
func (s *State) SetPos(x, y int) {
	s.x, s.y = x, y
	s.hasPos = true
}

// SetRelPos sets the offset as a fraction of the parent.
func (s *State) SetRelPos(x, y float64) {
	s.relX, s.relY = x, y
	s.hasRelPos = true
}

// Resolve computes the area for a terminal of the given size.
// Without any size set the state fills its parent.
func (s *State) Resolve(width, height int) Rect {
	parent := Rect{Width: width, Height: height}
	if s.Parent != nil {
		parent = s.Parent.Resolve(width, height)
	}

	r := Rect{X: parent.X, Y: parent.Y, Width: parent.Width, Height: parent.Height}
	switch {
	case s.hasSize:
		r.Width, r.Height = s.width, s.height
	case s.hasRelSize:
		r.Width = scale(parent.Width, s.relWidth)
		r.Height = scale(parent.Height, s.relHeight)
	}
	switch {
	case s.hasPos:
		r.X, r.Y = parent.X+s.x, parent.Y+s.y
	case s.hasRelPos:
		r.X = parent.X + scale(parent.Width, s.relX)
		r.Y = parent.Y + scale(parent.Height, s.relY)
	}

	r.Width = clamp(r.Width, 0, parent.X+parent.Width-r.X)
	r.Height = clamp(r.Height, 0, parent.Y+parent.Height-r.Y)
	return r
}

func scale(n int, f float64) int {
	return int(math.Round(float64(n) * f))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}
