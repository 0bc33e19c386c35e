package core

import (
	"bytes"
	"io"
	"maps"
	"os"
	"slices"
)

// Sequence is the parameter of an SGR escape sequence, e.g. "1" for bold.
type Sequence string

const (
	escape = "\x1b"
	reset  = "0"

	Bold      Sequence = "1"
	Dim       Sequence = "2"
	Underline Sequence = "4"

	Black   Sequence = "30"
	Red     Sequence = "31"
	Green   Sequence = "32"
	Yellow  Sequence = "33"
	Blue    Sequence = "34"
	Magenta Sequence = "35"
	Cyan    Sequence = "36"
	White   Sequence = "37"
	Default Sequence = "39"
)

// colors maps the names accepted for the glyph color to their foreground
// sequences.
var colors = map[string]Sequence{
	"black":   Black,
	"blue":    Blue,
	"cyan":    Cyan,
	"default": Default,
	"green":   Green,
	"magenta": Magenta,
	"red":     Red,
	"white":   White,
	"yellow":  Yellow,
}

// LookupColor returns the foreground Sequence for the provided color name.
func LookupColor(name string) (Sequence, bool) {
	seq, ok := colors[name]
	return seq, ok
}

// ColorNames returns the names accepted by LookupColor in sorted order.
func ColorNames() []string {
	return slices.Sorted(maps.Keys(colors))
}

// PrinterTo is implemented by errors that render themselves with emphasis.
type PrinterTo interface {
	PrintTo(*Printer)
}

// Handle holds the Printers for diagnostics (stderr) and drawing (stdout).
type Handle struct {
	stderr *Printer
	stdout *Printer
}

// NewHandle returns a Handle for the process's stderr and stdout.
func NewHandle(c Color) *Handle {
	return &Handle{
		stderr: newPrinter(os.Stderr, IsStderrTerm, c),
		stdout: newPrinter(os.Stdout, IsStdoutTerm, c),
	}
}

// NewHandleWriters returns a Handle whose Printers flush to the provided
// writers. Neither writer is treated as a terminal.
func NewHandleWriters(stdout, stderr io.Writer, c Color) *Handle {
	return &Handle{
		stderr: newPrinter(stderr, false, c),
		stdout: newPrinter(stdout, false, c),
	}
}

func (h *Handle) Stderr() *Printer {
	return h.stderr
}

func (h *Handle) Stdout() *Printer {
	return h.stdout
}

// Printer buffers output until Flush, emitting SGR sequences only when color
// is enabled for its target.
type Printer struct {
	w        io.Writer
	buf      bytes.Buffer
	useColor bool
}

// NewPrinter returns a Printer that flushes to w. Color is enabled only when
// c is ColorOn.
func NewPrinter(w io.Writer, c Color) *Printer {
	return newPrinter(w, false, c)
}

func newPrinter(w io.Writer, isTerm bool, c Color) *Printer {
	useColor := isTerm
	switch c {
	case ColorOn:
		useColor = true
	case ColorOff:
		useColor = false
	}
	return &Printer{w: w, useColor: useColor}
}

// Set writes the provided Sequence if color is enabled.
func (p *Printer) Set(s Sequence) {
	if !p.useColor {
		return
	}
	p.buf.WriteString(escape + "[")
	p.buf.WriteString(string(s))
	p.buf.WriteByte('m')
}

// UseColor reports whether the Printer emits SGR sequences.
func (p *Printer) UseColor() bool {
	return p.useColor
}

// Reset resets any active SGR attributes.
func (p *Printer) Reset() {
	p.Set(reset)
}

// Flush writes the buffered output to the underlying writer.
func (p *Printer) Flush() error {
	_, err := p.w.Write(p.buf.Bytes())
	p.buf.Reset()
	return err
}

// Bytes returns the unflushed contents of the buffer.
func (p *Printer) Bytes() []byte {
	return p.buf.Bytes()
}

func (p *Printer) Write(b []byte) (int, error) {
	return p.buf.Write(b)
}

func (p *Printer) WriteString(s string) (int, error) {
	return p.buf.WriteString(s)
}

// WriteErrorMsg writes err with an "error:" label and flushes the printer.
func WriteErrorMsg(p *Printer, err error) {
	WriteErrorMsgNoFlush(p, err)
	p.Flush()
}

// WriteErrorMsgNoFlush writes err with an "error:" label, leaving it
// buffered so that a hint can follow.
func WriteErrorMsgNoFlush(p *Printer, err error) {
	writeLabel(p, "error", Red)
	writeErr(p, err)
}

// WriteWarningErr writes err with a "warning:" label and flushes the printer.
func WriteWarningErr(p *Printer, err error) {
	writeLabel(p, "warning", Yellow)
	writeErr(p, err)
	p.Flush()
}

func writeLabel(p *Printer, label string, color Sequence) {
	p.Set(Bold)
	p.Set(color)
	p.WriteString(label)
	p.Reset()
	p.WriteString(": ")
}

func writeErr(p *Printer, err error) {
	if pt, ok := err.(PrinterTo); ok {
		pt.PrintTo(p)
	} else {
		p.WriteString(err.Error())
	}
	p.WriteString("\n")
}
