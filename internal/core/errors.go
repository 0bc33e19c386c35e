package core

import (
	"errors"
	"fmt"
	"strconv"
	"syscall"
)

// SignalError represents the error when a signal is caught.
type SignalError string

func (err SignalError) Error() string {
	return fmt.Sprintf("received signal: %s", string(err))
}

// TerminalSizeError is returned when the terminal window size cannot be
// queried. Errno is zero when the underlying error is not a system error.
type TerminalSizeError struct {
	Op    string
	Err   error
	Errno syscall.Errno
}

// NewTerminalSizeError wraps err, extracting its system error number if any.
func NewTerminalSizeError(op string, err error) *TerminalSizeError {
	tse := &TerminalSizeError{Op: op, Err: err}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		tse.Errno = errno
	}
	return tse
}

func (err *TerminalSizeError) Error() string {
	return fmt.Sprintf("%s: %s (errno=%d)", err.Op, err.Err.Error(), int(err.Errno))
}

func (err *TerminalSizeError) Unwrap() error {
	return err.Err
}

func (err *TerminalSizeError) PrintTo(p *Printer) {
	p.Set(Bold)
	p.WriteString(err.Op)
	p.Reset()
	p.WriteString(": ")
	p.WriteString(err.Err.Error())
	p.Set(Dim)
	p.WriteString(" (errno=")
	p.WriteString(strconv.Itoa(int(err.Errno)))
	p.WriteString(")")
	p.Reset()
}

// ValueError represents an invalid value provided for an option.
type ValueError struct {
	option string
	value  string
	usage  string
	isFile bool
}

// NewValueError returns a new ValueError. When isFile is true the option is
// reported as a config file key rather than a command line flag.
func NewValueError(option, value, usage string, isFile bool) *ValueError {
	return &ValueError{option: option, value: value, usage: usage, isFile: isFile}
}

func (err *ValueError) Error() string {
	var prefix string
	if !err.isFile {
		prefix = "--"
	}
	msg := fmt.Sprintf("invalid value '%s' for option '%s%s'", err.value, prefix, err.option)
	if err.usage == "" {
		return msg
	}
	return msg + ": " + err.usage
}

func (err *ValueError) PrintTo(p *Printer) {
	p.WriteString("invalid value '")
	p.Set(Yellow)
	p.WriteString(err.value)
	p.Reset()

	p.WriteString("' for option '")
	p.Set(Bold)
	if !err.isFile {
		p.WriteString("--")
	}
	p.WriteString(err.option)
	p.Reset()
	p.WriteString("'")

	if err.usage != "" {
		p.WriteString(": ")
		p.WriteString(err.usage)
	}
}
