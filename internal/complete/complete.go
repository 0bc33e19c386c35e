package complete

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lcolorado/bresenham/internal/cli"
	"github.com/lcolorado/bresenham/internal/core"
)

// Complete returns the completions for the final token of args, formatted
// for the provided shell. args[0] is the command name.
func Complete(shell Shell, args []string) string {
	if len(args) <= 1 {
		return shell.Complete(nil)
	}
	return shell.Complete(newCompleter().complete(args[1:]))
}

type completer struct {
	flags []cli.Flag
	short map[string]cli.Flag
	long  map[string]cli.Flag
}

func newCompleter() *completer {
	var app cli.App
	var flags []cli.Flag
	for _, flag := range app.CLI().Flags {
		if !flag.IsHidden {
			flags = append(flags, flag)
		}
	}
	short, long := cli.FlagMaps(flags)
	return &completer{flags: flags, short: short, long: long}
}

// complete walks the tokens, skipping radii and the values of flags that
// take one, until it reaches the token under the cursor.
func (c *completer) complete(tokens []string) []core.KeyVal {
	for len(tokens) > 0 {
		tok := tokens[0]
		tokens = tokens[1:]

		if len(tokens) == 0 {
			return c.current(tok)
		}
		if !strings.HasPrefix(tok, "-") || tok == "-" || tok == "--" {
			continue
		}

		flag, ok := c.pending(tok)
		if !ok {
			continue
		}
		if len(tokens) == 1 {
			return c.values(flag, "", tokens[0])
		}
		tokens = tokens[1:]
	}
	return nil
}

// pending returns the flag that consumes the following token, if any.
func (c *completer) pending(tok string) (cli.Flag, bool) {
	if name, ok := strings.CutPrefix(tok, "--"); ok {
		if strings.Contains(name, "=") {
			return cli.Flag{}, false
		}
		flag, ok := c.long[name]
		return flag, ok && flag.Args != ""
	}

	// In a group of short flags only the last one can take the next
	// token, e.g. "-fg #".
	group := tok[1:]
	for i := range len(group) {
		flag, ok := c.short[group[i:i+1]]
		if !ok {
			return cli.Flag{}, false
		}
		if flag.Args != "" {
			return flag, i == len(group)-1
		}
	}
	return cli.Flag{}, false
}

// current completes the token under the cursor.
func (c *completer) current(tok string) []core.KeyVal {
	switch {
	case tok == "-" || tok == "--":
		return c.longFlags("")
	case strings.HasPrefix(tok, "--"):
		name := tok[2:]
		if key, val, ok := strings.Cut(name, "="); ok {
			flag, ok := c.long[key]
			if !ok {
				return nil
			}
			return c.values(flag, "--"+key+"=", val)
		}
		return c.longFlags(name)
	case strings.HasPrefix(tok, "-"):
		return c.shortGroup(tok[1:])
	default:
		// Radii have no completions.
		return nil
	}
}

func (c *completer) longFlags(prefix string) []core.KeyVal {
	var out []core.KeyVal
	for _, flag := range c.flags {
		if strings.HasPrefix(flag.Long, prefix) {
			out = append(out, core.KeyVal{Key: "--" + flag.Long, Val: flag.Description})
		}
	}
	return out
}

// shortGroup completes a group of short flags, either by appending another
// flag to it or with the value of its final flag.
func (c *completer) shortGroup(group string) []core.KeyVal {
	seen := make(map[string]bool)
	for i := range len(group) {
		name := group[i : i+1]
		flag, ok := c.short[name]
		if !ok {
			return nil
		}
		if flag.Args != "" {
			prefix, val := "-"+group[:i+1], group[i+1:]
			if rest, ok := strings.CutPrefix(val, "="); ok {
				prefix, val = prefix+"=", rest
			}
			return c.values(flag, prefix, val)
		}
		seen[name] = true
	}

	var out []core.KeyVal
	for _, flag := range c.flags {
		if flag.Short == "" || seen[flag.Short] {
			continue
		}
		out = append(out, core.KeyVal{Key: "-" + group + flag.Short, Val: flag.Description})
	}
	return out
}

// values completes the argument of flag, each candidate prefixed by prefix.
func (c *completer) values(flag cli.Flag, prefix, value string) []core.KeyVal {
	candidates := flag.Values
	switch flag.Long {
	case "config":
		return completePath(prefix, value)
	case "glyph-color":
		for _, name := range core.ColorNames() {
			candidates = append(candidates, core.KeyVal{Key: name})
		}
	}

	var out []core.KeyVal
	for _, kv := range candidates {
		if strings.HasPrefix(kv.Key, value) {
			out = append(out, core.KeyVal{Key: prefix + kv.Key, Val: kv.Val})
		}
	}
	return out
}

// completePath lists the files matching orig, expanding environment
// variables and a leading '~'. Hidden files are only listed when the
// basename being completed starts with a dot.
func completePath(prefix, orig string) []core.KeyVal {
	if orig == "~" {
		return []core.KeyVal{{Key: prefix + "~/", Val: "File"}}
	}

	path := os.ExpandEnv(orig)
	if rest, ok := strings.CutPrefix(path, "~"+string(os.PathSeparator)); ok {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, rest) + trailingSep(rest)
		}
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		return nil
	}

	var base string
	if path != "" && !strings.HasSuffix(path, string(os.PathSeparator)) {
		base = filepath.Base(path)
	}

	var out []core.KeyVal
	for _, entry := range entries {
		name := entry.Name()
		if base == "" && strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasPrefix(name, base) {
			continue
		}

		file := filepath.Join(filepath.Dir(orig), name)
		if entry.IsDir() {
			file += string(os.PathSeparator)
		}
		out = append(out, core.KeyVal{Key: prefix + file, Val: "File"})
	}
	return out
}

func trailingSep(s string) string {
	if s == "" || strings.HasSuffix(s, string(os.PathSeparator)) {
		return string(os.PathSeparator)
	}
	return ""
}
