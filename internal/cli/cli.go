package cli

import (
	"strings"

	"github.com/lcolorado/bresenham/internal/core"
)

type CLI struct {
	Description string
	ArgFn       func(s string) error
	Args        []Arguments
	Flags       []Flag
}

type Arguments struct {
	Name        string
	Description string
}

type Flag struct {
	Short       string
	Long        string
	Aliases     []string
	Args        string
	Description string
	Default     string
	Values      []core.KeyVal
	IsHidden    bool
	IsSet       func() bool
	Fn          func(value string) error
}

// FlagMaps indexes flags by their short and long names, aliases included.
// Single character aliases are short names.
func FlagMaps(flags []Flag) (short, long map[string]Flag) {
	short = make(map[string]Flag)
	long = make(map[string]Flag)
	for _, flag := range flags {
		names := append([]string{flag.Short, flag.Long}, flag.Aliases...)
		for _, name := range names {
			switch len(name) {
			case 0:
			case 1:
				short[name] = flag
			default:
				long[name] = flag
			}
		}
	}
	return short, long
}

// Parse parses the command line arguments, excluding the program name. The
// App is returned even on error so that its color setting can be used to
// report it.
func Parse(args []string) (*App, error) {
	var app App
	err := newParser(app.CLI(), args).run()
	return &app, err
}

// parser consumes command line tokens from the front of args.
type parser struct {
	cli   *CLI
	args  []string
	short map[string]Flag
	long  map[string]Flag
}

func newParser(cli *CLI, args []string) *parser {
	short, long := FlagMaps(cli.Flags)
	return &parser{cli: cli, args: args, short: short, long: long}
}

func (p *parser) next() string {
	tok := p.args[0]
	p.args = p.args[1:]
	return tok
}

func (p *parser) run() error {
	for len(p.args) > 0 {
		tok := p.next()

		var err error
		switch {
		case tok == "--":
			// Everything after "--" is an argument.
			err = p.rest()
		case len(tok) < 2 || tok[0] != '-':
			err = p.cli.ArgFn(tok)
		case isNegativeRadius(tok):
			err = negativeRadiusError(tok)
		case tok[1] == '-':
			err = p.longFlag(tok[2:])
		default:
			err = p.shortFlags(tok[1:])
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) rest() error {
	if err := p.cli.ArgFn("--"); err != nil {
		return err
	}
	for len(p.args) > 0 {
		if err := p.cli.ArgFn(p.next()); err != nil {
			return err
		}
	}
	return nil
}

// longFlag parses "--name", "--name=value" or "--name value".
func (p *parser) longFlag(tok string) error {
	name, value, inline := strings.Cut(tok, "=")
	flag, ok := p.long[name]
	if !ok {
		return unknownFlagError("--" + name)
	}

	switch {
	case flag.Args == "":
		if inline {
			return flagNoArgsError("--" + name)
		}
	case inline && value != "":
	case len(p.args) == 0:
		return argRequiredError("--" + name)
	default:
		value = p.next()
	}
	return flag.Fn(value)
}

// shortFlags parses a group of short flags such as "-fv". A flag that
// takes an argument ends the group: its value is the rest of the group
// ("-g#", "-g=#") or else the next token.
func (p *parser) shortFlags(group string) error {
	for i := range len(group) {
		name := group[i : i+1]
		flag, ok := p.short[name]
		if !ok {
			return unknownFlagError("-" + name)
		}

		if flag.Args == "" {
			if i+1 < len(group) && group[i+1] == '=' {
				return flagNoArgsError("-" + name)
			}
			if err := flag.Fn(""); err != nil {
				return err
			}
			continue
		}

		value := strings.TrimPrefix(group[i+1:], "=")
		if i+1 == len(group) {
			if len(p.args) == 0 {
				return argRequiredError("-" + name)
			}
			value = p.next()
		}
		return flag.Fn(value)
	}
	return nil
}

func printHelp(cli *CLI, p *core.Printer) {
	p.WriteString(cli.Description)
	p.WriteString("\n\n")

	printHeading(p, "Usage")
	p.WriteString(" ")
	p.Set(core.Bold)
	p.WriteString("bresenham")
	p.Reset()
	if len(cli.Flags) > 0 {
		p.WriteString(" [OPTIONS]")
	}
	for _, arg := range cli.Args {
		p.WriteString(" [" + arg.Name + "]...")
	}
	p.WriteString("\n")

	if len(cli.Args) > 0 {
		p.WriteString("\n")
		printHeading(p, "Arguments")
		p.WriteString("\n")
		for _, arg := range cli.Args {
			p.WriteString("  [" + arg.Name + "]  " + arg.Description + "\n")
		}
	}

	if len(cli.Flags) > 0 {
		p.WriteString("\n")
		printHeading(p, "Options")
		p.WriteString("\n")
		width := maxFlagLength(cli.Flags)
		for _, flag := range cli.Flags {
			if !flag.IsHidden {
				printFlag(p, flag, width)
			}
		}
	}
}

// printHeading writes a bold, underlined section name followed by a colon.
func printHeading(p *core.Printer, name string) {
	p.Set(core.Bold)
	p.Set(core.Underline)
	p.WriteString(name)
	p.Reset()
	p.WriteString(":")
}

// printFlag writes a single option line, padding the flag column to width.
func printFlag(p *core.Printer, flag Flag, width int) {
	p.Set(core.Bold)
	if flag.Short == "" {
		p.WriteString("      --")
	} else {
		p.WriteString("  -" + flag.Short + ", --")
	}
	p.WriteString(flag.Long)
	p.Reset()

	if flag.Args != "" {
		p.WriteString(" <" + flag.Args + ">")
	}
	p.WriteString(strings.Repeat(" ", 2+width-flagLength(flag)))
	p.WriteString(flag.Description)

	if len(flag.Values) > 0 {
		keys := make([]string, 0, len(flag.Values))
		for _, v := range flag.Values {
			keys = append(keys, v.Key)
		}
		p.WriteString(" [" + strings.Join(keys, ", ") + "]")
	}
	if flag.Default != "" {
		p.WriteString(" [default: " + flag.Default + "]")
	}
	p.WriteString("\n")
}

func maxFlagLength(fs []Flag) int {
	var out int
	for _, f := range fs {
		if f.IsHidden {
			continue
		}
		out = max(out, flagLength(f))
	}
	return out
}

func flagLength(f Flag) int {
	out := len(f.Long)
	if f.Args != "" {
		out += 3 + len(f.Args)
	}
	return out
}
