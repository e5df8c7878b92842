//go:build darwin

package obslog

import (
	"os"

	"golang.org/x/sys/unix"
)

// TerminalWidth returns stderr's terminal column width, or 0 if stderr
// isn't a terminal. cmd/dtsforge uses this to decide whether a progress
// bar can render at all.
func TerminalWidth() int {
	fd := int(os.Stderr.Fd())
	if _, err := unix.IoctlGetTermios(fd, unix.TIOCGETA); err != nil {
		return 0
	}
	w, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(w.Col)
}
