package logger

import (
	"sync"

	"github.com/philipp01105/conlog/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize the process Core: async, InfoLevel, colored stdout
	defaultLogger = New(NewBuilder().Build())
}

// Default returns the creator handle of the default logger family
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// DefaultCore returns the Core behind the default logger
func DefaultCore() *Core {
	return Default().Core()
}

// SetDefault sets the default logger. Pending items of the previous
// default are flushed first.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	prev := defaultLogger
	defaultLogger = l
	defaultMu.Unlock()

	if prev != nil && prev.core != l.core {
		prev.core.Flush()
	}
}

// Package-level convenience functions using the default logger

// Info logs an info message using the default logger
func Info(msg string) error {
	return Default().Info(msg)
}

// Warning logs a warning message using the default logger
func Warning(msg string) error {
	return Default().Warning(msg)
}

// Error logs an error message using the default logger
func Error(msg string) error {
	return Default().Error(msg)
}

// Verbose1 logs a verbose message using the default logger
func Verbose1(msg string) error {
	return Default().Verbose1(msg)
}

// Verbose2 logs a more verbose message using the default logger
func Verbose2(msg string) error {
	return Default().Verbose2(msg)
}

// Verbose3 logs the most verbose message using the default logger
func Verbose3(msg string) error {
	return Default().Verbose3(msg)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) error {
	return Default().Infof(format, args...)
}

// Warningf logs a formatted warning message using the default logger
func Warningf(format string, args ...interface{}) error {
	return Default().Warningf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) error {
	return Default().Errorf(format, args...)
}

// LogAt logs a message with an explicit level and color using the default logger
func LogAt(level core.Level, msg string, color core.Color) error {
	return Default().LogAt(level, msg, color)
}

// LogException logs err and its causes using the default logger
func LogException(err error) error {
	return Default().LogException(err)
}

// EnterLock claims the default logger family for the calling scope
func EnterLock() (*Logger, error) {
	return Default().EnterLock()
}

// WithLock runs fn with exclusive use of the default logger family
func WithLock(fn func(scoped *Logger) error) error {
	return Default().WithLock(fn)
}

// SetLevel sets the minimum level of the default Core
func SetLevel(level core.Level) {
	DefaultCore().SetLevel(level)
}

// GetLevel returns the minimum level of the default Core
func GetLevel() core.Level {
	return DefaultCore().Level()
}

// SetAsync switches the delivery mode of the default Core
func SetAsync(async bool) {
	DefaultCore().SetAsync(async)
}

// GetAsync reports whether the default Core is asynchronous
func GetAsync() bool {
	return DefaultCore().IsAsync()
}

// Flush blocks until the default Core has written everything queued
func Flush() {
	DefaultCore().Flush()
}
