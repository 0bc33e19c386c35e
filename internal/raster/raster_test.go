package raster

import (
	"math"
	"reflect"
	"testing"
)

// referenceSteps walks the same decision rule as Steps, but recomputes
// every square directly instead of tracking differences.
func referenceSteps(r int) [][2]int {
	var out [][2]int
	x, y := 0, r
	sum := r*r + r
	for x <= y {
		out = append(out, [2]int{x, y})
		sum -= 2*x + 1
		if sum <= y*y {
			y--
		}
		x++
	}
	return out
}

func TestStepsInvariants(t *testing.T) {
	for r := 0; r <= 200; r++ {
		var n int
		for s := range Steps(r) {
			n++
			if s.X2 != s.X*s.X {
				t.Fatalf("r=%d: x2 = %d, want %d", r, s.X2, s.X*s.X)
			}
			if s.Y2 != s.Y*s.Y {
				t.Fatalf("r=%d: y2 = %d, want %d", r, s.Y2, s.Y*s.Y)
			}
			if s.DX2 != 2*s.X+1 {
				t.Fatalf("r=%d: dx2 = %d, want %d", r, s.DX2, 2*s.X+1)
			}
			if s.DY2 != 2*s.Y-1 {
				t.Fatalf("r=%d: dy2 = %d, want %d", r, s.DY2, 2*s.Y-1)
			}
			if want := r*r + r - s.X*s.X; s.Sum != want {
				t.Fatalf("r=%d x=%d: sum = %d, want %d", r, s.X, s.Sum, want)
			}
			if s.X > s.Y {
				t.Fatalf("r=%d: x=%d passed y=%d", r, s.X, s.Y)
			}
		}

		// The walk stops at the diagonal, so it runs floor(r/√2)+1
		// times, plus one when the last step lands on the diagonal.
		base := int(math.Floor(float64(r)/math.Sqrt2)) + 1
		if n != base && n != base+1 {
			t.Fatalf("r=%d: %d iterations, want %d or %d", r, n, base, base+1)
		}
	}
}

func TestStepsMatchReference(t *testing.T) {
	for r := 0; r <= 100; r++ {
		ref := referenceSteps(r)
		got := Trace(r)
		if len(got) != len(ref) {
			t.Fatalf("r=%d: %d steps, want %d", r, len(got), len(ref))
		}
		for i, s := range got {
			if s.X != ref[i][0] || s.Y != ref[i][1] {
				t.Fatalf("r=%d step %d: (%d,%d), want (%d,%d)", r, i, s.X, s.Y, ref[i][0], ref[i][1])
			}
		}
	}
}

func TestStepsNegativeRadius(t *testing.T) {
	for _, r := range []int{-1, -5, -100} {
		if got := Trace(r); len(got) != 0 {
			t.Errorf("r=%d: got %d steps, want none", r, len(got))
		}
		if got := (Circle{R: r, CX: 5, CY: 5}).Collect(Filled); len(got) != 0 {
			t.Errorf("r=%d: got %d primitives, want none", r, len(got))
		}
	}
}

func TestTraceGolden(t *testing.T) {
	want := []State{
		{X: 0, X2: 0, DX2: 1, Y: 3, Y2: 9, DY2: 5, Sum: 12, Shrink: false},
		{X: 1, X2: 1, DX2: 3, Y: 3, Y2: 9, DY2: 5, Sum: 11, Shrink: true},
		{X: 2, X2: 4, DX2: 5, Y: 2, Y2: 4, DY2: 3, Sum: 8, Shrink: true},
	}
	got := Trace(3)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Trace(3) = %+v, want %+v", got, want)
	}
}

func TestOutlineZeroRadius(t *testing.T) {
	got := Circle{R: 0, CX: 7, CY: 4}.Collect(Outline)
	if len(got) != 8 {
		t.Fatalf("got %d primitives, want 8", len(got))
	}
	for _, p := range got {
		if p != Point(7, 4) {
			t.Fatalf("got %s, want point(7,4)", p)
		}
	}
}

func TestOutlineSymmetry(t *testing.T) {
	c := Circle{R: 9, CX: 20, CY: 12}
	pts := make(map[[2]int]bool)
	for _, p := range c.Collect(Outline) {
		if p.Kind != KindPoint {
			t.Fatalf("unexpected primitive in outline mode: %s", p)
		}
		pts[[2]int{p.X1 - c.CX, p.Y - c.CY}] = true
	}
	for pt := range pts {
		x, y := pt[0], pt[1]
		for _, m := range [][2]int{{-x, y}, {x, -y}, {y, x}, {-y, -x}} {
			if !pts[m] {
				t.Fatalf("point %v has no mirror %v", pt, m)
			}
		}
	}

	// Extremes of the circle are on the axes.
	for _, want := range [][2]int{{9, 0}, {-9, 0}, {0, 9}, {0, -9}} {
		if !pts[want] {
			t.Errorf("missing axis point %v", want)
		}
	}
}

func TestFilledTilesDisk(t *testing.T) {
	c := Circle{R: 5, CX: 10, CY: 10}
	rows := make(map[int]map[int]bool)
	for _, p := range c.Collect(Filled) {
		if p.Kind != KindHSegment {
			t.Fatalf("unexpected primitive in filled mode: %s", p)
		}
		if p.X1 > p.X2 {
			t.Fatalf("inverted segment: %s", p)
		}
		if rows[p.Y] == nil {
			rows[p.Y] = make(map[int]bool)
		}
		for x := p.X1; x <= p.X2; x++ {
			rows[p.Y][x] = true
		}
	}

	// Expected half-widths of each row, from the top of the disk.
	want := map[int][2]int{
		5: {8, 12}, 6: {7, 13}, 7: {6, 14}, 8: {5, 15}, 9: {5, 15},
		10: {5, 15}, 11: {5, 15}, 12: {5, 15}, 13: {6, 14}, 14: {7, 13},
		15: {8, 12},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for y, span := range want {
		cells, ok := rows[y]
		if !ok {
			t.Fatalf("row %d was skipped", y)
		}
		if len(cells) != span[1]-span[0]+1 {
			t.Fatalf("row %d: %d cells, want %d", y, len(cells), span[1]-span[0]+1)
		}
		for x := span[0]; x <= span[1]; x++ {
			if !cells[x] {
				t.Fatalf("row %d: gap at column %d", y, x)
			}
		}
	}
}

func TestFilledCapsBeforeShrink(t *testing.T) {
	got := Circle{R: 3, CX: 0, CY: 0}.Collect(Filled)
	want := []Primitive{
		// x=0, y=3
		HSegment(-3, 3, 0), HSegment(-3, 3, 0),
		// x=1, y=3; y shrinks
		HSegment(-3, 3, 1), HSegment(-3, 3, -1),
		HSegment(-1, 1, -3), HSegment(-1, 1, 3),
		// x=2, y=2; y shrinks
		HSegment(-2, 2, 2), HSegment(-2, 2, -2),
		HSegment(-2, 2, -2), HSegment(-2, 2, 2),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPrimitivesIdempotent(t *testing.T) {
	for _, mode := range []Mode{Outline, Filled} {
		c := Circle{R: 13, CX: 30, CY: 15}
		first := c.Collect(mode)
		second := c.Collect(mode)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("%s: output differs between runs", mode)
		}
	}
}

func TestPrimitivesEarlyStop(t *testing.T) {
	var n int
	for range (Circle{R: 50}).Primitives(Outline) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("got %d primitives, want 3", n)
	}
}

type recorder struct {
	got []Primitive
}

func (r *recorder) Point(x, y int)         { r.got = append(r.got, Point(x, y)) }
func (r *recorder) HSegment(x1, x2, y int) { r.got = append(r.got, HSegment(x1, x2, y)) }

func TestDraw(t *testing.T) {
	c := Circle{R: 4, CX: 10, CY: 6}
	for _, mode := range []Mode{Outline, Filled} {
		var rec recorder
		c.Draw(&rec, mode)
		if !reflect.DeepEqual(rec.got, c.Collect(mode)) {
			t.Fatalf("%s: Draw and Collect disagree", mode)
		}
	}
}

func TestMaxRadiusFitsInt32(t *testing.T) {
	first, ok := func() (State, bool) {
		for s := range Steps(MaxRadius) {
			return s, true
		}
		return State{}, false
	}()
	if !ok {
		t.Fatal("no steps for MaxRadius")
	}
	if first.Sum > math.MaxInt32 || first.Y2 > math.MaxInt32 {
		t.Fatalf("squared terms overflow int32: %+v", first)
	}
	if r := MaxRadius + 1; r*r+r <= math.MaxInt32 {
		t.Fatalf("MaxRadius %d is not the largest safe radius", MaxRadius)
	}
}
