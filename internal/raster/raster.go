// Package raster implements an integer-only midpoint circle rasterizer.
//
// A circle is walked over a single octant, from the top of the circle
// (x = 0, y = r) until the diagonal (x > y). Every step is reflected into
// the remaining seven octants, so the number of steps is O(r). No floating
// point or trigonometric functions are used: squares are tracked
// incrementally through their forward differences.
package raster

import (
	"iter"
	"slices"
)

// Mode represents how a circle is drawn.
type Mode int

const (
	Outline Mode = iota
	Filled
)

func (m Mode) String() string {
	switch m {
	case Outline:
		return "outline"
	case Filled:
		return "filled"
	default:
		return "unknown"
	}
}

// Circle is a circle of radius R centered at (CX, CY).
type Circle struct {
	R, CX, CY int
}

// State is the rasterizer state at the start of a single step.
type State struct {
	X   int `yaml:"x"`
	X2  int `yaml:"x2"`
	DX2 int `yaml:"dx2"`
	Y   int `yaml:"y"`
	Y2  int `yaml:"y2"`
	DY2 int `yaml:"dy2"`
	Sum int `yaml:"sum"`

	// Shrink is true when the radial bound Y decreases at the end of
	// this step.
	Shrink bool `yaml:"shrink"`
}

// MaxRadius is the largest radius whose squared terms fit in a 32-bit int.
// Larger radii overflow the incremental squares.
const MaxRadius = 46340

// Steps returns an iterator over the states of the rasterizer for a circle
// of radius r. A negative radius yields no states. r must not exceed
// MaxRadius.
func Steps(r int) iter.Seq[State] {
	return func(yield func(State) bool) {
		x, x2, dx2 := 0, 0, 1
		y, y2, dy2 := r, r*r, 2*r-1
		sum := r*r + r

		for x <= y {
			s := State{X: x, X2: x2, DX2: dx2, Y: y, Y2: y2, DY2: dy2, Sum: sum}

			sum -= dx2
			s.Shrink = sum <= y2
			if !yield(s) {
				return
			}

			if s.Shrink {
				y--
				y2 -= dy2
				dy2 -= 2
			}
			x++
			x2 += dx2
			dx2 += 2
		}
	}
}

// Trace returns every state of the rasterizer for a circle of radius r.
func Trace(r int) []State {
	return slices.Collect(Steps(r))
}
