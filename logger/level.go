package logger

import (
	"github.com/philipp01105/conlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	Verbose3Level = core.Verbose3Level
	Verbose2Level = core.Verbose2Level
	Verbose1Level = core.Verbose1Level
	InfoLevel     = core.InfoLevel
	WarningLevel  = core.WarningLevel
	ErrorLevel    = core.ErrorLevel
)

// Color Re-export type for convenience
type Color = core.Color

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

// defaultLevelColors is the color used by the level convenience methods
var defaultLevelColors = [...]core.Color{
	core.Verbose3Level: core.Gray,
	core.Verbose2Level: core.Gray,
	core.Verbose1Level: core.Gray,
	core.InfoLevel:     core.NoColor,
	core.WarningLevel:  core.Yellow,
	core.ErrorLevel:    core.Red,
}
