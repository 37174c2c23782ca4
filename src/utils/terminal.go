package utils

import (
	"io"
	"os"

	"golang.org/x/term"
)

// fileDescriptor is satisfied by *os.File and anything else backed by a descriptor
type fileDescriptor interface {
	Fd() uintptr
}

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fileDescriptor)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// NoColorEnv reports whether the user asked for plain output via NO_COLOR
// (https://no-color.org).
func NoColorEnv() bool {
	return os.Getenv("NO_COLOR") != ""
}

// ColorSupported reports whether colored output should be written to w
func ColorSupported(w io.Writer) bool {
	return !NoColorEnv() && IsTerminal(w)
}
