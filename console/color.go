package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/philipp01105/conlog/core"
)

// ColorMode selects when escape sequences are emitted
type ColorMode int

const (
	// ColorAuto emits colors only when the output is a terminal (default)
	ColorAuto ColorMode = iota
	// ColorAlways emits colors regardless of the output
	ColorAlways
	// ColorNever never emits colors
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode converts "auto", "always" or "never" to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "on", "true":
		return ColorAlways, nil
	case "never", "off", "false":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ColorMode) UnmarshalText(text []byte) error {
	v, err := ParseColorMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// attributes maps each palette entry to its foreground attribute
var attributes = [...]color.Attribute{
	core.Black:         color.FgBlack,
	core.Red:           color.FgRed,
	core.Green:         color.FgGreen,
	core.Yellow:        color.FgYellow,
	core.Blue:          color.FgBlue,
	core.Magenta:       color.FgMagenta,
	core.Cyan:          color.FgCyan,
	core.White:         color.FgWhite,
	core.Gray:          color.FgHiBlack,
	core.BrightRed:     color.FgHiRed,
	core.BrightGreen:   color.FgHiGreen,
	core.BrightYellow:  color.FgHiYellow,
	core.BrightBlue:    color.FgHiBlue,
	core.BrightMagenta: color.FgHiMagenta,
	core.BrightCyan:    color.FgHiCyan,
	core.BrightWhite:   color.FgHiWhite,
}

// palette holds one pre-built *color.Color per core.Color plus the
// reset sequence. Every entry has its color state forced, so the package
// level color.NoColor detection never applies.
type palette struct {
	colors [len(attributes)]*color.Color
	reset  *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{reset: forced(color.New(color.Reset), enabled)}
	for c := core.Black; int(c) < len(attributes); c++ {
		p.colors[c] = forced(color.New(attributes[c]), enabled)
	}
	return p
}

func forced(c *color.Color, enabled bool) *color.Color {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// get returns the color for c, or nil for NoColor and unknown tags.
func (p *palette) get(c core.Color) *color.Color {
	if !c.IsSet() || int(c) >= len(p.colors) {
		return nil
	}
	return p.colors[c]
}

// colorsEnabled resolves mode against the output.
func colorsEnabled(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(f.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
