package progress

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Color is a named terminal foreground color
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var colorNames = [...]string{
	"black",
	"red",
	"green",
	"yellow",
	"blue",
	"magenta",
	"cyan",
	"white",
	"bright-black",
	"bright-red",
	"bright-green",
	"bright-yellow",
	"bright-blue",
	"bright-magenta",
	"bright-cyan",
	"bright-white",
}

// SGR foreground codes 30-37 and 90-97, indexed by Color
var colorAttributes = [...]color.Attribute{
	color.FgBlack,
	color.FgRed,
	color.FgGreen,
	color.FgYellow,
	color.FgBlue,
	color.FgMagenta,
	color.FgCyan,
	color.FgWhite,
	color.FgHiBlack,
	color.FgHiRed,
	color.FgHiGreen,
	color.FgHiYellow,
	color.FgHiBlue,
	color.FgHiMagenta,
	color.FgHiCyan,
	color.FgHiWhite,
}

// Colors returns every supported color, normal variants first.
func Colors() []Color {
	colors := make([]Color, len(colorNames))
	for i := range colors {
		colors[i] = Color(i)
	}
	return colors
}

func (c Color) valid() bool {
	return c >= 0 && int(c) < len(colorNames)
}

func (c Color) String() string {
	if !c.valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// attribute falls back to plain white for values outside the enumeration
func (c Color) attribute() color.Attribute {
	if !c.valid() {
		return color.FgWhite
	}
	return colorAttributes[c]
}

// ParseColor looks up a color by name. Matching ignores case, and "-",
// "_" or " " may separate the bright prefix ("bright-red", "Bright_Red",
// "brightred").
func ParseColor(name string) (Color, error) {
	key := normalizeName(name)
	for i, n := range colorNames {
		if key == strings.ReplaceAll(n, "-", "") {
			return Color(i), nil
		}
	}
	return White, fmt.Errorf("%w %q (valid: %s)", ErrUnknownColor, name, strings.Join(colorNames[:], ", "))
}

func normalizeName(name string) string {
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(name)))
}

// ColorMode decides when the configured color is applied
type ColorMode int

const (
	// ColorAlways colors inline output unconditionally
	ColorAlways ColorMode = iota
	// ColorAuto colors inline output only when writing to a terminal and NO_COLOR is unset
	ColorAuto
	// ColorNever disables color
	ColorNever
)

var colorModeNames = [...]string{"always", "auto", "never"}

func (m ColorMode) String() string {
	if m < 0 || int(m) >= len(colorModeNames) {
		return fmt.Sprintf("ColorMode(%d)", int(m))
	}
	return colorModeNames[m]
}

// ParseColorMode looks up a color mode by name
func ParseColorMode(name string) (ColorMode, error) {
	key := normalizeName(name)
	for i, n := range colorModeNames {
		if key == n {
			return ColorMode(i), nil
		}
	}
	return ColorAlways, fmt.Errorf("%w %q (valid: %s)", ErrUnknownColorMode, name, strings.Join(colorModeNames[:], ", "))
}
