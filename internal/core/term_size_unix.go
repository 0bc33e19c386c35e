//go:build unix

package core

import (
	"os"

	"golang.org/x/sys/unix"
)

// GetTerminalSize returns the size of the terminal attached to the provided
// file, or an error if unavailable.
func GetTerminalSize(f *os.File) (TerminalSize, error) {
	var ts TerminalSize
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return ts, NewTerminalSizeError("TIOCGWINSZ", err)
	}

	ts.Cols = int(ws.Col)
	ts.Rows = int(ws.Row)
	return ts, nil
}
