package render

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/lcolorado/bresenham/internal/core"
	"github.com/lcolorado/bresenham/internal/raster"
)

// trace writes the rasterizer state of every circle instead of drawing it.
// No screen control sequences are written.
func trace(ctx context.Context, p *core.Printer, r *Request) error {
	for i, radius := range r.Radii {
		if err := context.Cause(ctx); err != nil {
			return err
		}

		var err error
		switch r.TraceFormat {
		case core.TraceYAML:
			err = writeTraceYAML(p, radius, i == 0)
		default:
			writeTraceText(p, radius)
		}
		if err != nil {
			return err
		}

		if err = p.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// writeTraceText writes one line per rasterizer step, prefixed with the
// location it was written from.
func writeTraceText(p *core.Printer, radius int) {
	for s := range raster.Steps(radius) {
		p.WriteString(location())
		p.WriteString(FormatState(s))
		p.WriteString("\n")
	}
}

// FormatState formats the state variables of a single rasterizer step.
func FormatState(s raster.State) string {
	return fmt.Sprintf("x=%3d, x2=%5d, dx2=%3d, y=%3d, y2=%5d, dy2=%3d, sum=%5d",
		s.X, s.X2, s.DX2, s.Y, s.Y2, s.DY2, s.Sum)
}

// location returns a "file:line:func: " tag for the caller. The body of a
// range-over-func loop is reported as the function containing the loop.
func location() string {
	pc, file, line, ok := runtime.Caller(1)
	if !ok {
		return "?:0:?: "
	}
	name := "?"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = funcName(fn.Name())
	}
	return fmt.Sprintf("%s:%d:%s: ", filepath.Base(file), line, name)
}

// funcName strips the package path and any "-rangeN" loop body suffixes
// from a fully qualified function name.
func funcName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if _, after, ok := strings.Cut(name, "."); ok {
		name = after
	}
	name, _, _ = strings.Cut(name, "-range")
	return name
}

type traceDoc struct {
	Radius int            `yaml:"radius"`
	Steps  []raster.State `yaml:"steps"`
}

func writeTraceYAML(p *core.Printer, radius int, first bool) error {
	doc := traceDoc{Radius: radius, Steps: raster.Trace(radius)}
	if doc.Steps == nil {
		doc.Steps = []raster.State{}
	}

	b, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	if !first {
		p.WriteString("---\n")
	}
	p.Write(b)
	return nil
}
