package core

import (
	"os"
	"runtime/debug"

	"golang.org/x/term"
)

// TerminalSize is the size of a terminal in character cells.
type TerminalSize struct {
	Cols int
	Rows int
}

var (
	IsStderrTerm bool
	IsStdoutTerm bool

	Version string
)

func init() {
	// Color output defaults to on for terminals.
	IsStderrTerm = term.IsTerminal(int(os.Stderr.Fd()))
	IsStdoutTerm = term.IsTerminal(int(os.Stdout.Fd()))

	Version = getVersion()
}

// getVersion attempts to read the executable's BuildInfo, returning the version.
func getVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "v(dev)"
	}
	return info.Main.Version
}
