//go:build !linux && !darwin

package obslog

// TerminalWidth is unsupported outside linux/darwin in this build; 0
// tells cmd/dtsforge to fall back to a silent progress bar.
func TerminalWidth() int { return 0 }
