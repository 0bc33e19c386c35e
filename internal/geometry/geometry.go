// Package geometry resolves the size of the canvas that circles are drawn
// on, and its center.
package geometry

import (
	"os"

	"github.com/lcolorado/bresenham/internal/core"
	"github.com/lcolorado/bresenham/internal/screen"
)

// Default canvas dimensions, used when the terminal cannot be queried.
const (
	DefaultCols = 80
	DefaultRows = 24
)

// Sizer reports the size of a terminal.
type Sizer interface {
	TerminalSize() (core.TerminalSize, error)
}

// TTY is a Sizer that queries the terminal attached to File.
type TTY struct {
	File *os.File
}

// Stdin returns a TTY for the process's standard input.
func Stdin() TTY {
	return TTY{File: os.Stdin}
}

// TerminalSize implements Sizer.
func (t TTY) TerminalSize() (core.TerminalSize, error) {
	return core.GetTerminalSize(t.File)
}

// SizerFunc adapts a function to the Sizer interface.
type SizerFunc func() (core.TerminalSize, error)

// TerminalSize implements Sizer.
func (f SizerFunc) TerminalSize() (core.TerminalSize, error) {
	return f()
}

// Canvas is the size of the drawing area in terminal cells.
type Canvas struct {
	Cols, Rows int
}

// Center returns the center of the canvas in logical coordinates, where
// each logical column spans screen.CellsPerColumn cells.
func (c Canvas) Center() (cx, cy int) {
	return c.Cols / (2 * screen.CellsPerColumn), c.Rows / 2
}

// Options holds the inputs used to resolve a Canvas.
type Options struct {
	// Cols and Rows override every other source when non-nil.
	Cols, Rows *int

	// Getenv looks up environment variables. Defaults to os.LookupEnv.
	Getenv func(string) (string, bool)

	// Sizer is queried when the environment does not define the size.
	Sizer Sizer
}

// Resolve determines the canvas size.
//
// The COLUMNS and LINES environment variables are used when both are set.
// Otherwise the Sizer is queried. If that fails, the default 80x24 canvas
// is returned together with the error, which callers should report but
// not treat as fatal. Explicit overrides in opts are applied last.
func Resolve(opts Options) (Canvas, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.LookupEnv
	}

	var c Canvas
	var err error
	cols, okCols := getenv("COLUMNS")
	rows, okRows := getenv("LINES")
	if okCols && okRows {
		c = Canvas{Cols: core.Atoi(cols), Rows: core.Atoi(rows)}
	} else {
		c, err = query(opts.Sizer)
	}

	if opts.Cols != nil {
		c.Cols = *opts.Cols
	}
	if opts.Rows != nil {
		c.Rows = *opts.Rows
	}
	return c, err
}

func query(s Sizer) (Canvas, error) {
	if s == nil {
		s = Stdin()
	}
	ts, err := s.TerminalSize()
	if err != nil {
		return Canvas{Cols: DefaultCols, Rows: DefaultRows}, err
	}
	return Canvas{Cols: ts.Cols, Rows: ts.Rows}, nil
}
