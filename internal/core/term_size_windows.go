//go:build windows

package core

import (
	"os"

	"golang.org/x/sys/windows"
)

// GetTerminalSize returns the size of the console attached to the provided
// file, or an error if unavailable.
func GetTerminalSize(f *os.File) (TerminalSize, error) {
	var ts TerminalSize

	var info windows.ConsoleScreenBufferInfo
	handle := windows.Handle(f.Fd())
	err := windows.GetConsoleScreenBufferInfo(handle, &info)
	if err != nil {
		return ts, NewTerminalSizeError("GetConsoleScreenBufferInfo", err)
	}

	ts.Cols = int(info.Window.Right - info.Window.Left + 1)
	ts.Rows = int(info.Window.Bottom - info.Window.Top + 1)
	return ts, nil
}
