package core

import (
	"fmt"
	"strings"
)

// Color is an opaque console color tag. The zero value, NoColor, means
// the item carries no color and the console color is left untouched.
type Color uint8

const (
	NoColor Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Gray
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var colorNames = [...]string{
	NoColor:       "none",
	Black:         "black",
	Red:           "red",
	Green:         "green",
	Yellow:        "yellow",
	Blue:          "blue",
	Magenta:       "magenta",
	Cyan:          "cyan",
	White:         "white",
	Gray:          "gray",
	BrightRed:     "brightred",
	BrightGreen:   "brightgreen",
	BrightYellow:  "brightyellow",
	BrightBlue:    "brightblue",
	BrightMagenta: "brightmagenta",
	BrightCyan:    "brightcyan",
	BrightWhite:   "brightwhite",
}

// IsSet reports whether c is a real color rather than NoColor.
func (c Color) IsSet() bool {
	return c != NoColor
}

// String returns the lower-case color name
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// ParseColor converts a color name to a Color. The empty string and
// "none" map to NoColor.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return NoColor, nil
	}
	if name == "grey" {
		name = "gray"
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return NoColor, fmt.Errorf("unknown color %q", s)
}
