package render

import (
	"context"

	"github.com/lcolorado/bresenham/internal/core"
	"github.com/lcolorado/bresenham/internal/geometry"
	"github.com/lcolorado/bresenham/internal/raster"
	"github.com/lcolorado/bresenham/internal/screen"
)

// Request represents a single invocation: a list of radii drawn around the
// center of the canvas.
type Request struct {
	Radii         []int
	Mode          raster.Mode
	Trace         bool
	TraceFormat   core.TraceFormat
	Glyph         rune
	GlyphColor    core.Sequence
	Geometry      geometry.Options
	PrinterHandle *core.Handle
}

// Render draws every circle in the Request, returning the exit status.
func Render(ctx context.Context, r *Request) int {
	err := render(ctx, r)
	if err != nil {
		core.WriteErrorMsg(r.PrinterHandle.Stderr(), err)
		return 1
	}
	return 0
}

func render(ctx context.Context, r *Request) error {
	errPrinter := r.PrinterHandle.Stderr()
	outPrinter := r.PrinterHandle.Stdout()

	// A failed size query is reported, but the default canvas is used.
	canvas, err := geometry.Resolve(r.Geometry)
	if err != nil {
		core.WriteWarningErr(errPrinter, err)
	}
	cx, cy := canvas.Center()

	if r.Trace {
		return trace(ctx, outPrinter, r)
	}

	var opts []screen.Option
	if r.Glyph != 0 {
		opts = append(opts, screen.WithGlyph(r.Glyph))
	}
	if r.GlyphColor != "" && outPrinter.UseColor() {
		opts = append(opts, screen.WithColor(r.GlyphColor))
	}
	enc := screen.NewEncoder(outPrinter, opts...)

	enc.Clear()
	for _, radius := range r.Radii {
		if err := context.Cause(ctx); err != nil {
			outPrinter.WriteString("\n")
			outPrinter.Flush()
			return err
		}

		c := raster.Circle{R: radius, CX: cx, CY: cy}
		c.Draw(enc, r.Mode)
		if err := outPrinter.Flush(); err != nil {
			return err
		}
	}

	outPrinter.WriteString("\n")
	return outPrinter.Flush()
}
