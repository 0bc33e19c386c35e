package config

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lcolorado/bresenham/internal/core"
	"github.com/lcolorado/bresenham/internal/screen"
)

// Config represents the configuration options for bresenham.
type Config struct {
	isFile bool

	Color       core.Color
	Fill        *bool
	Glyph       *rune
	GlyphColor  *core.Sequence
	Height      *int
	Trace       *bool
	TraceFormat core.TraceFormat
	Width       *int
}

// Merge merges the two Configs together, with "c" taking priority.
func (c *Config) Merge(c2 *Config) {
	if c2 == nil {
		return
	}
	if c.Color == core.ColorUnknown {
		c.Color = c2.Color
	}
	if c.Fill == nil {
		c.Fill = c2.Fill
	}
	if c.Glyph == nil {
		c.Glyph = c2.Glyph
	}
	if c.GlyphColor == nil {
		c.GlyphColor = c2.GlyphColor
	}
	if c.Height == nil {
		c.Height = c2.Height
	}
	if c.Trace == nil {
		c.Trace = c2.Trace
	}
	if c.TraceFormat == core.TraceUnknown {
		c.TraceFormat = c2.TraceFormat
	}
	if c.Width == nil {
		c.Width = c2.Width
	}
}

// Set sets the provided key and value pair, returning any error encountered.
func (c *Config) Set(key, val string) error {
	var err error
	switch key {
	case "color", "colour":
		err = c.ParseColor(val)
	case "fill":
		err = c.ParseFill(val)
	case "glyph":
		err = c.ParseGlyph(val)
	case "glyph-color", "glyph-colour":
		err = c.ParseGlyphColor(val)
	case "height":
		err = c.ParseHeight(val)
	case "trace":
		err = c.ParseTrace(val)
	case "trace-format":
		err = c.ParseTraceFormat(val)
	case "width":
		err = c.ParseWidth(val)
	default:
		err = invalidOptionError(key)
	}
	return err
}

func (c *Config) ParseColor(value string) error {
	switch value {
	case "auto":
		c.Color = core.ColorAuto
	case "off":
		c.Color = core.ColorOff
	case "on":
		c.Color = core.ColorOn
	default:
		const usage = "must be one of [auto, off, on]"
		return core.NewValueError("color", value, usage, c.isFile)
	}
	return nil
}

func (c *Config) ParseFill(value string) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return core.NewValueError("fill", value, "must be a boolean", c.isFile)
	}
	c.Fill = &v
	return nil
}

func (c *Config) ParseGlyph(value string) error {
	const usage = "must be a single printable character"
	if utf8.RuneCountInString(value) != 1 {
		return core.NewValueError("glyph", value, usage, c.isFile)
	}
	r, _ := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError || screen.GlyphWidth(r) < 1 {
		return core.NewValueError("glyph", value, usage, c.isFile)
	}
	c.Glyph = &r
	return nil
}

func (c *Config) ParseGlyphColor(value string) error {
	seq, ok := core.LookupColor(value)
	if !ok {
		usage := "must be one of [" + strings.Join(core.ColorNames(), ", ") + "]"
		return core.NewValueError("glyph-color", value, usage, c.isFile)
	}
	c.GlyphColor = &seq
	return nil
}

func (c *Config) ParseHeight(value string) error {
	n, err := parseDimension(value)
	if err != nil {
		return core.NewValueError("height", value, "must be a positive integer", c.isFile)
	}
	c.Height = &n
	return nil
}

func (c *Config) ParseTrace(value string) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return core.NewValueError("trace", value, "must be a boolean", c.isFile)
	}
	c.Trace = &v
	return nil
}

func (c *Config) ParseTraceFormat(value string) error {
	switch value {
	case "text":
		c.TraceFormat = core.TraceText
	case "yaml":
		c.TraceFormat = core.TraceYAML
	default:
		const usage = "must be one of [text, yaml]"
		return core.NewValueError("trace-format", value, usage, c.isFile)
	}
	return nil
}

func (c *Config) ParseWidth(value string) error {
	n, err := parseDimension(value)
	if err != nil {
		return core.NewValueError("width", value, "must be a positive integer", c.isFile)
	}
	c.Width = &n
	return nil
}

func parseDimension(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("non-positive dimension %d", n)
	}
	return n, nil
}

type invalidOptionError string

func (err invalidOptionError) Error() string {
	return fmt.Sprintf("invalid option: '%s'", string(err))
}

func (err invalidOptionError) PrintTo(p *core.Printer) {
	p.WriteString("invalid option: '")
	p.Set(core.Bold)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("'")
}
