package progress

import (
	"fmt"
	"strings"
)

// DisplayMode selects how successive renders appear on the console
type DisplayMode int

const (
	// Inline overwrites the current line on each render
	Inline DisplayMode = iota
	// NewLine prints a fresh line on each render
	NewLine
)

var displayModeNames = [...]string{"inline", "newline"}

func (m DisplayMode) String() string {
	if m < 0 || int(m) >= len(displayModeNames) {
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
	return displayModeNames[m]
}

// ParseDisplayMode accepts "inline" and "newline" (also "new-line", "new_line")
func ParseDisplayMode(name string) (DisplayMode, error) {
	key := normalizeName(name)
	for i, n := range displayModeNames {
		if key == n {
			return DisplayMode(i), nil
		}
	}
	return Inline, fmt.Errorf("%w %q (valid: %s)", ErrUnknownDisplayMode, name, strings.Join(displayModeNames[:], ", "))
}
