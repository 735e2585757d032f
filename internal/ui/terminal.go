package ui

import (
	"os"

	"golang.org/x/term"
)

const defaultWidth = 80

// GetTerminalWidth returns the width of the terminal attached to f.
// Pipes, redirects and errors fall back to 80 columns.
func GetTerminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
