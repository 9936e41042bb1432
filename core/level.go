package core

import (
	"fmt"
	"strings"
)

// Level represents the severity level of a log item.
// Lower values are less severe.
type Level int8

const (
	// Verbose3Level for the most detailed tracing output
	Verbose3Level Level = iota
	// Verbose2Level for detailed tracing output
	Verbose2Level
	// Verbose1Level for diagnostic output
	Verbose1Level
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarningLevel for warning messages
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case Verbose3Level:
		return "VERBOSE3"
	case Verbose2Level:
		return "VERBOSE2"
	case Verbose1Level:
		return "VERBOSE1"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= Verbose3Level && l <= ErrorLevel
}

// Enabled reports whether an item at level passes a floor of l.
func (l Level) Enabled(level Level) bool {
	return level >= l
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and accepts "warn" for WarningLevel and "verbose" for Verbose1Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VERBOSE3":
		return Verbose3Level, nil
	case "VERBOSE2":
		return Verbose2Level, nil
	case "VERBOSE1", "VERBOSE":
		return Verbose1Level, nil
	case "INFO":
		return InfoLevel, nil
	case "WARNING", "WARN":
		return WarningLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so levels can be
// read straight from config files.
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}
