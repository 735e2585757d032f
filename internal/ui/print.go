package ui

import (
	"fmt"
	"io"
	"os"
)

// Messages go to stderr: stdout belongs to the menu-bar host.
var messageOut io.Writer = os.Stderr

// Error prints an error message with an X icon
func Error(msg string) {
	fmt.Fprintln(messageOut, ErrorStyle.Render("✗ "+msg))
}

// Warning prints a warning message with a warning icon
func Warning(msg string) {
	fmt.Fprintln(messageOut, WarningStyle.Render("⚠ "+msg))
}

// Warningf prints a formatted warning message with a warning icon
func Warningf(format string, args ...interface{}) {
	Warning(fmt.Sprintf(format, args...))
}

