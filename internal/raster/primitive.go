package raster

import (
	"fmt"
	"iter"
	"slices"
)

// Kind represents the type of a drawing Primitive.
type Kind int

const (
	KindPoint Kind = iota
	KindHSegment
)

// Primitive is a single drawing instruction in logical canvas coordinates.
// A point is stored as a segment with X1 == X2.
type Primitive struct {
	Kind   Kind
	X1, X2 int
	Y      int
}

// Point returns a Primitive marking the single cell (x, y).
func Point(x, y int) Primitive {
	return Primitive{Kind: KindPoint, X1: x, X2: x, Y: y}
}

// HSegment returns a Primitive marking every cell in [x1, x2] on row y.
func HSegment(x1, x2, y int) Primitive {
	return Primitive{Kind: KindHSegment, X1: x1, X2: x2, Y: y}
}

func (p Primitive) String() string {
	if p.Kind == KindPoint {
		return fmt.Sprintf("point(%d,%d)", p.X1, p.Y)
	}
	return fmt.Sprintf("hseg(%d..%d,%d)", p.X1, p.X2, p.Y)
}

// Canvas receives the primitives produced by a Circle.
type Canvas interface {
	Point(x, y int)
	HSegment(x1, x2, y int)
}

// Primitives returns an iterator over the drawing primitives of the circle
// in the provided mode.
//
// In outline mode every step produces eight points, one per octant. Points
// on the axes and on the diagonal are produced more than once.
//
// In filled mode every step produces the two wide rows at cy±x. When the
// radial bound is about to shrink, the two narrow rows at cy±y are closed
// first, since the current y is no longer available afterwards.
func (c Circle) Primitives(mode Mode) iter.Seq[Primitive] {
	return func(yield func(Primitive) bool) {
		cx, cy := c.CX, c.CY
		for s := range Steps(c.R) {
			x, y := s.X, s.Y

			var ps []Primitive
			if mode == Filled {
				ps = []Primitive{
					HSegment(cx-y, cx+y, cy+x),
					HSegment(cx-y, cx+y, cy-x),
				}
				if s.Shrink {
					ps = append(ps,
						HSegment(cx-x, cx+x, cy-y),
						HSegment(cx-x, cx+x, cy+y),
					)
				}
			} else {
				ps = []Primitive{
					Point(cx-y, cy+x), Point(cx+y, cy+x),
					Point(cx-y, cy-x), Point(cx+y, cy-x),
					Point(cx-x, cy-y), Point(cx+x, cy-y),
					Point(cx-x, cy+y), Point(cx+x, cy+y),
				}
			}

			for _, p := range ps {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Collect returns all drawing primitives of the circle in order.
func (c Circle) Collect(mode Mode) []Primitive {
	return slices.Collect(c.Primitives(mode))
}

// Draw sends every primitive of the circle to the Canvas.
func (c Circle) Draw(cv Canvas, mode Mode) {
	for p := range c.Primitives(mode) {
		switch p.Kind {
		case KindPoint:
			cv.Point(p.X1, p.Y)
		case KindHSegment:
			cv.HSegment(p.X1, p.X2, p.Y)
		}
	}
}
