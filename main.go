package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lcolorado/bresenham/internal/cli"
	"github.com/lcolorado/bresenham/internal/complete"
	"github.com/lcolorado/bresenham/internal/config"
	"github.com/lcolorado/bresenham/internal/core"
	"github.com/lcolorado/bresenham/internal/geometry"
	"github.com/lcolorado/bresenham/internal/raster"
	"github.com/lcolorado/bresenham/internal/render"
)

func main() {
	// Cancel the context when one of the below signals are caught.
	ctx, cancel := context.WithCancelCause(context.Background())
	chSig := make(chan os.Signal, 1)
	signal.Notify(chSig, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)
	go func() {
		sig := <-chSig
		cancel(core.SignalError(sig.String()))
	}()

	// Parse the CLI args.
	app, err := cli.Parse(os.Args[1:])
	if err != nil {
		p := core.NewHandle(app.Cfg.Color).Stderr()
		writeCLIErr(p, err)
		os.Exit(1)
	}

	// Parse any config file, and merge with it.
	err = parseConfigFile(app)
	if err != nil {
		p := core.NewHandle(app.Cfg.Color).Stderr()
		core.WriteErrorMsg(p, err)
		os.Exit(1)
	}

	handle := core.NewHandle(app.Cfg.Color)

	// Print help to stdout.
	if app.Help {
		p := handle.Stdout()
		app.PrintHelp(p)
		p.Flush()
		os.Exit(0)
	}

	// Print shell completions to stdout.
	if app.Complete != "" {
		os.Exit(printCompletions(app))
	}

	// Print version to stdout.
	if app.Version {
		fmt.Fprintln(os.Stdout, "bresenham", core.Version)
		os.Exit(0)
	}

	mode := raster.Outline
	if getValue(app.Cfg.Fill) {
		mode = raster.Filled
	}

	req := render.Request{
		Radii:       app.Radii,
		Mode:        mode,
		Trace:       getValue(app.Cfg.Trace),
		TraceFormat: app.Cfg.TraceFormat,
		Glyph:       getValue(app.Cfg.Glyph),
		GlyphColor:  getValue(app.Cfg.GlyphColor),
		Geometry: geometry.Options{
			Cols:  app.Cfg.Width,
			Rows:  app.Cfg.Height,
			Sizer: geometry.Stdin(),
		},
		PrinterHandle: handle,
	}
	status := render.Render(ctx, &req)
	os.Exit(status)
}

// parse and merge any config file with the CLI app configuration.
func parseConfigFile(app *cli.App) error {
	file, err := config.GetFile(app.ConfigPath)
	if err != nil {
		return err
	}
	if file == nil {
		return nil
	}

	// The fill setting decides which mode section applies, so it is
	// resolved from the global section first.
	fill := app.Cfg.Fill
	if fill == nil {
		fill = file.Global.Fill
	}
	app.Cfg.Merge(file.ModeConfig(getValue(fill)))
	app.Cfg.Merge(file.Global)
	return nil
}

// printCompletions writes the completion registration script, or the
// completions for the provided tokens, returning the exit status.
func printCompletions(app *cli.App) int {
	shell := complete.GetShell(app.Complete)
	if shell == nil {
		p := core.NewHandle(app.Cfg.Color).Stderr()
		const usage = "must be one of [bash, fish, zsh]"
		writeCLIErr(p, core.NewValueError("complete", app.Complete, usage, false))
		return 1
	}

	var out string
	if len(app.ExtraArgs) == 0 {
		out = shell.Register()
	} else {
		out = complete.Complete(shell, app.ExtraArgs)
	}
	fmt.Fprintln(os.Stdout, out)
	return 0
}

func getValue[T any](v *T) T {
	if v == nil {
		var t T
		return t
	}
	return *v
}

// writeCLIErr writes the provided CLI error to the Printer.
func writeCLIErr(p *core.Printer, err error) {
	core.WriteErrorMsgNoFlush(p, err)

	p.WriteString("\nFor more information, try '")

	p.Set(core.Bold)
	p.WriteString("--help")
	p.Reset()

	p.WriteString("'.\n")
	p.Flush()
}
