package cli

import (
	"fmt"

	"github.com/lcolorado/bresenham/internal/core"
)

// flagError describes a problem with a single flag. The flag name is
// rendered in bold between the before and after text.
type flagError struct {
	before, flag, after string
}

func (err flagError) Error() string {
	return err.before + err.flag + err.after
}

func (err flagError) PrintTo(p *core.Printer) {
	p.WriteString(err.before)
	p.Set(core.Bold)
	p.WriteString(err.flag)
	p.Reset()
	p.WriteString(err.after)
}

func unknownFlagError(flag string) error {
	return flagError{before: "unknown flag '", flag: flag, after: "'"}
}

func flagNoArgsError(flag string) error {
	return flagError{before: "flag '", flag: flag, after: "' does not take any arguments"}
}

func argRequiredError(flag string) error {
	return flagError{before: "argument required for flag '", flag: flag, after: "'"}
}

// negativeRadiusError is returned for a short flag group that is really a
// negative radius, e.g. "-3".
type negativeRadiusError string

func (err negativeRadiusError) Error() string {
	return fmt.Sprintf("unknown flag '%s': negative radii must follow '--', e.g. 'bresenham -- %s'",
		string(err), string(err))
}

func (err negativeRadiusError) PrintTo(p *core.Printer) {
	p.WriteString("unknown flag '")
	p.Set(core.Bold)
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("': negative radii must follow '--', e.g. '")
	p.Set(core.Bold)
	p.WriteString("bresenham -- ")
	p.WriteString(string(err))
	p.Reset()
	p.WriteString("'")
}

// isNegativeRadius reports whether arg is a dash followed by a digit.
func isNegativeRadius(arg string) bool {
	return len(arg) >= 2 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9'
}
