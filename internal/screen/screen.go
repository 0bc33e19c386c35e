// Package screen encodes drawing primitives as ANSI/VT100 cursor
// positioning sequences.
//
// Canvas coordinates are 1-based. Each logical column spans two terminal
// cells so that circles keep their aspect ratio on terminals whose cells are
// about twice as tall as they are wide.
package screen

import (
	"io"
	"strconv"
	"strings"

	"github.com/lcolorado/bresenham/internal/core"
	"github.com/mattn/go-runewidth"
)

const (
	escape = "\x1b"

	clearScreen = escape + "[2J"

	// CellsPerColumn is the number of terminal cells in a logical column.
	CellsPerColumn = 2

	// MaxRepeat is the maximum number of cells written for a single
	// horizontal segment.
	MaxRepeat = 4096

	// DefaultGlyph is the glyph used when none is configured.
	DefaultGlyph = '*'
)

// Repeat returns count copies of glyph. Counts below one return an empty
// string and counts above MaxRepeat are clamped.
func Repeat(glyph rune, count int) string {
	if count <= 0 {
		return ""
	}
	count = min(count, MaxRepeat)
	return strings.Repeat(string(glyph), count)
}

// GlyphWidth returns the number of terminal cells occupied by glyph, or 0 if
// the glyph cannot be drawn.
func GlyphWidth(glyph rune) int {
	return runewidth.RuneWidth(glyph)
}

// Encoder writes drawing primitives to an io.Writer. It satisfies
// raster.Canvas.
type Encoder struct {
	w     io.Writer
	glyph rune
	width int
	color core.Sequence
	buf   []byte
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithGlyph sets the glyph used to mark cells.
func WithGlyph(glyph rune) Option {
	return func(e *Encoder) {
		e.glyph = glyph
	}
}

// WithColor wraps every drawn run of glyphs in the provided SGR color.
func WithColor(seq core.Sequence) Option {
	return func(e *Encoder) {
		e.color = seq
	}
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	e := &Encoder{w: w, glyph: DefaultGlyph}
	for _, opt := range opts {
		opt(e)
	}
	e.width = GlyphWidth(e.glyph)
	if e.width < 1 {
		e.glyph = DefaultGlyph
		e.width = 1
	}
	return e
}

// Clear writes the clear-screen sequence.
func (e *Encoder) Clear() {
	io.WriteString(e.w, clearScreen)
}

// Point marks the logical cell (x, y). Cells outside the screen are dropped.
func (e *Encoder) Point(x, y int) {
	col := x * CellsPerColumn
	if y < 1 || col < 1 {
		return
	}
	e.draw(col, y, 1)
}

// HSegment marks every logical cell in [x1, x2] on row y. Cells to the left
// of the screen are trimmed.
func (e *Encoder) HSegment(x1, x2, y int) {
	if y < 1 || x2 < x1 {
		return
	}
	col := x1 * CellsPerColumn
	cells := (x2 - x1 + 1) * CellsPerColumn
	if col < 1 {
		cells -= 1 - col
		col = 1
	}
	if cells <= 0 {
		return
	}
	e.draw(col, y, cells)
}

// draw positions the cursor at (col, row) and fills cells terminal cells
// with the glyph.
func (e *Encoder) draw(col, row, cells int) {
	b := e.buf[:0]
	b = append(b, escape+"["...)
	b = strconv.AppendInt(b, int64(row), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col), 10)
	b = append(b, 'H')

	if e.color != "" {
		b = appendSGR(b, e.color)
	}
	b = append(b, Repeat(e.glyph, glyphCount(cells, e.width))...)
	if e.color != "" {
		b = appendSGR(b, "0")
	}

	e.buf = b
	e.w.Write(b)
}

// glyphCount returns how many glyphs of the given width cover cells cells.
// A partly covered cell gets a whole glyph, so a wide glyph at a trimmed
// left edge still reaches the end of the segment.
func glyphCount(cells, width int) int {
	return max(1, (cells+width-1)/width)
}

func appendSGR(b []byte, seq core.Sequence) []byte {
	b = append(b, escape+"["...)
	b = append(b, string(seq)...)
	return append(b, 'm')
}
