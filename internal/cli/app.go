package cli

import (
	"github.com/lcolorado/bresenham/internal/config"
	"github.com/lcolorado/bresenham/internal/core"
	"github.com/lcolorado/bresenham/internal/raster"
)

// App represents the full configuration for a bresenham invocation.
type App struct {
	Radii     []int
	ExtraArgs []string

	Cfg config.Config

	Complete   string
	ConfigPath string
	Help       bool
	Version    bool
}

func (a *App) PrintHelp(p *core.Printer) {
	printHelp(a.CLI(), p)
}

func (a *App) CLI() *CLI {
	var extraArgs bool
	return &CLI{
		Description: "bresenham draws circles on the terminal using the midpoint circle algorithm",
		Args: []Arguments{
			{Name: "RADIUS", Description: "Radius of a circle to draw; negative radii follow '--'"},
		},
		ArgFn: func(s string) error {
			if extraArgs {
				a.ExtraArgs = append(a.ExtraArgs, s)
			} else if s == "--" {
				extraArgs = true
				return nil
			}

			// Anything that is not a number draws a circle of
			// radius zero. Radii too large for the rasterizer are
			// clamped.
			a.Radii = append(a.Radii, min(core.Atoi(s), raster.MaxRadius))
			return nil
		},
		Flags: []Flag{
			newFlag("color", "", "Enable/disable color").Parse("OPTION",
				func() bool { return a.Cfg.Color != core.ColorUnknown },
				a.Cfg.ParseColor,
			).WithAliases("colour").WithValues(
				core.KeyVal{Key: "auto", Val: "Automatically determine color"},
				core.KeyVal{Key: "off", Val: "Disable color output"},
				core.KeyVal{Key: "on", Val: "Enable color output"},
			),
			newFlag("complete", "", "Output shell completion").
				Value("SHELL", &a.Complete).
				WithValues(core.KeyVal{Key: "bash"}, core.KeyVal{Key: "fish"}, core.KeyVal{Key: "zsh"}).
				Hidden(),
			newFlag("config", "c", "Path to config file").Value("PATH", &a.ConfigPath),
			newFlag("fill", "f", "Draw filled disks instead of outlines").Option(&a.Cfg.Fill),
			newFlag("glyph", "g", "Character used to draw").Parse("CHAR",
				func() bool { return a.Cfg.Glyph != nil },
				a.Cfg.ParseGlyph,
			).WithDefault("*"),
			newFlag("glyph-color", "", "Color of the drawn character").Parse("COLOR",
				func() bool { return a.Cfg.GlyphColor != nil },
				a.Cfg.ParseGlyphColor,
			).WithAliases("glyph-colour"),
			newFlag("height", "", "Canvas height, overriding the terminal").Parse("ROWS",
				func() bool { return a.Cfg.Height != nil },
				a.Cfg.ParseHeight,
			),
			newFlag("help", "h", "Print help").Switch(&a.Help),
			newFlag("trace", "v", "Print the rasterizer state instead of drawing").Option(&a.Cfg.Trace),
			newFlag("trace-format", "", "Trace output format").Parse("FORMAT",
				func() bool { return a.Cfg.TraceFormat != core.TraceUnknown },
				a.Cfg.ParseTraceFormat,
			).WithDefault("text").WithValues(
				core.KeyVal{Key: "text", Val: "One line per step"},
				core.KeyVal{Key: "yaml", Val: "One YAML document per circle"},
			),
			newFlag("version", "V", "Print version").Switch(&a.Version),
			newFlag("width", "", "Canvas width, overriding the terminal").Parse("COLS",
				func() bool { return a.Cfg.Width != nil },
				a.Cfg.ParseWidth,
			),
		},
	}
}
