package cli

import "github.com/lcolorado/bresenham/internal/core"

// newFlag starts a Flag with its names and help description. One of the
// target methods below finishes it.
func newFlag(long, short, desc string) Flag {
	return Flag{Long: long, Short: short, Description: desc}
}

// Switch sets target to true when the flag is present.
func (f Flag) Switch(target *bool) Flag {
	f.IsSet = func() bool { return *target }
	f.Fn = func(string) error {
		*target = true
		return nil
	}
	return f
}

// Option sets target to a pointer to true when the flag is present, leaving
// it nil otherwise so a config file can still provide the value.
func (f Flag) Option(target **bool) Flag {
	f.IsSet = func() bool { return *target != nil }
	f.Fn = func(string) error {
		*target = core.PointerTo(true)
		return nil
	}
	return f
}

// Value stores the flag's argument in target.
func (f Flag) Value(args string, target *string) Flag {
	f.Args = args
	f.IsSet = func() bool { return *target != "" }
	f.Fn = func(value string) error {
		*target = value
		return nil
	}
	return f
}

// Parse hands the flag's argument to parse, usually a config.Config method.
func (f Flag) Parse(args string, isSet func() bool, parse func(string) error) Flag {
	f.Args = args
	f.IsSet = isSet
	f.Fn = parse
	return f
}

// WithValues lists the accepted values of the flag.
func (f Flag) WithValues(values ...core.KeyVal) Flag {
	f.Values = values
	return f
}

// WithAliases adds aliases to the Flag.
func (f Flag) WithAliases(aliases ...string) Flag {
	f.Aliases = aliases
	return f
}

// WithDefault sets the default value shown in help.
func (f Flag) WithDefault(def string) Flag {
	f.Default = def
	return f
}

// Hidden omits the flag from help and completions.
func (f Flag) Hidden() Flag {
	f.IsHidden = true
	return f
}
