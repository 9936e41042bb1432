package logger

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
)

// Logger is a handle onto a Core. The creator handle returned by New is
// long-lived; scoped handles returned by EnterLock are valid until their
// one ExitLock call. Handles are safe for concurrent use.
type Logger struct {
	core  *Core
	lock  *lockContext
	token token
	freed bool // guarded by lock.mu
}

// New creates the creator handle of a new logger family on c.
func New(c *Core) *Logger {
	l := &Logger{core: c, token: nextToken()}
	l.lock = newLockContext(l)
	return l
}

// acquire waits until l may write and returns with the family mutex
// held. On error the mutex is released.
func (l *Logger) acquire() error {
	lc := l.lock
	lc.mu.Lock()
	for {
		if l.freed {
			lc.mu.Unlock()
			return core.ErrUseAfterFree
		}
		if lc.mayWrite(l.token) {
			return nil
		}
		lc.released.Wait()
	}
}

// check returns ErrUseAfterFree if l has been freed.
func (l *Logger) check() error {
	l.lock.mu.Lock()
	defer l.lock.mu.Unlock()
	if l.freed {
		return core.ErrUseAfterFree
	}
	return nil
}

// LogAt logs message at level with color. While another handle of the
// family holds the lock the call blocks until the lock is released.
func (l *Logger) LogAt(level core.Level, message string, color core.Color) error {
	if err := l.acquire(); err != nil {
		return err
	}
	// the family mutex stays held until the item is handed over, so no
	// lock can be entered between the ownership check and the write
	defer l.lock.mu.Unlock()

	l.core.LogCore(message, level, color)
	return nil
}

// Log logs message at level in the level's default color
func (l *Logger) Log(level core.Level, message string) error {
	return l.LogAt(level, message, l.core.LevelColor(level))
}

// Blank logs an empty info line
func (l *Logger) Blank() error {
	return l.Log(core.InfoLevel, "")
}

// Info logs an info message
func (l *Logger) Info(msg string) error {
	return l.Log(core.InfoLevel, msg)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string) error {
	return l.Log(core.WarningLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) error {
	return l.Log(core.ErrorLevel, msg)
}

// Verbose1 logs a verbose message
func (l *Logger) Verbose1(msg string) error {
	return l.Log(core.Verbose1Level, msg)
}

// Verbose2 logs a more verbose message
func (l *Logger) Verbose2(msg string) error {
	return l.Log(core.Verbose2Level, msg)
}

// Verbose3 logs the most verbose message
func (l *Logger) Verbose3(msg string) error {
	return l.Log(core.Verbose3Level, msg)
}

// logf formats only when the level passes the filter
func (l *Logger) logf(level core.Level, format string, args []interface{}) error {
	if !l.core.Enabled(level) {
		return l.check()
	}
	return l.Log(level, fmt.Sprintf(format, args...))
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) error {
	return l.logf(core.InfoLevel, format, args)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...interface{}) error {
	return l.logf(core.WarningLevel, format, args)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) error {
	return l.logf(core.ErrorLevel, format, args)
}

// Verbose1f logs a verbose message with formatting
func (l *Logger) Verbose1f(format string, args ...interface{}) error {
	return l.logf(core.Verbose1Level, format, args)
}

// Verbose2f logs a more verbose message with formatting
func (l *Logger) Verbose2f(format string, args ...interface{}) error {
	return l.logf(core.Verbose2Level, format, args)
}

// Verbose3f logs the most verbose message with formatting
func (l *Logger) Verbose3f(format string, args ...interface{}) error {
	return l.logf(core.Verbose3Level, format, args)
}

// LogException logs err and its causes at error level. A nil err is
// rejected with ErrNilInput and nothing is logged.
func (l *Logger) LogException(err error) error {
	if err == nil {
		if cerr := l.check(); cerr != nil {
			return cerr
		}
		return core.ErrNilInput
	}
	return l.Error(formatter.FormatException(err))
}

// EnterLock claims exclusive use of the family and returns the scoped
// handle that owns it. It blocks while another scope is active. Only
// the creator handle may enter a lock.
func (l *Logger) EnterLock() (*Logger, error) {
	lc := l.lock
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if l.freed {
		return nil, core.ErrUseAfterFree
	}
	if lc.creator != l {
		return nil, core.ErrUnsupportedNesting
	}

	scoped := &Logger{core: l.core, lock: lc, token: nextToken()}
	lc.claim(scoped)
	return scoped, nil
}

// ExitLock frees the scoped handle l, unlocks the family and returns the
// creator handle. l rejects every later call with ErrUseAfterFree.
func (l *Logger) ExitLock() (*Logger, error) {
	lc := l.lock
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if l.freed {
		return nil, core.ErrUseAfterFree
	}
	if lc.creator == l {
		return nil, core.ErrInvalidExit
	}

	l.freed = true
	lc.release()
	return lc.creator, nil
}

// WithLock runs fn with a scoped handle and always exits the lock
// afterwards. Errors from fn and from ExitLock are combined.
func (l *Logger) WithLock(fn func(scoped *Logger) error) (err error) {
	scoped, err := l.EnterLock()
	if err != nil {
		return err
	}
	defer func() {
		_, exitErr := scoped.ExitLock()
		err = multierr.Append(err, exitErr)
	}()
	return fn(scoped)
}

// IsLocked reports whether the family is currently locked. Freed
// handles report false.
func (l *Logger) IsLocked() bool {
	lc := l.lock
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return !l.freed && lc.state == locked
}

// IsFreed reports whether ExitLock has completed on l
func (l *Logger) IsFreed() bool {
	l.lock.mu.Lock()
	defer l.lock.mu.Unlock()
	return l.freed
}

// IsCreator reports whether l is the creator handle of its family
func (l *Logger) IsCreator() bool {
	return l.lock.creator == l
}

// Core returns the Core behind l
func (l *Logger) Core() *Core {
	return l.core
}

// SetLevel sets the minimum level of the Core
func (l *Logger) SetLevel(level core.Level) error {
	if err := l.check(); err != nil {
		return err
	}
	l.core.SetLevel(level)
	return nil
}

// Level returns the minimum level of the Core
func (l *Logger) Level() (core.Level, error) {
	if err := l.check(); err != nil {
		return core.InfoLevel, err
	}
	return l.core.Level(), nil
}

// SetAsync switches the delivery mode of the Core, flushing first when
// switching to synchronous mode.
func (l *Logger) SetAsync(async bool) error {
	if err := l.check(); err != nil {
		return err
	}
	l.core.SetAsync(async)
	return nil
}

// IsAsync reports whether the Core is in asynchronous mode
func (l *Logger) IsAsync() (bool, error) {
	if err := l.check(); err != nil {
		return false, err
	}
	return l.core.IsAsync(), nil
}

// Flush blocks until every queued item has been written
func (l *Logger) Flush() error {
	if err := l.check(); err != nil {
		return err
	}
	l.core.Flush()
	return nil
}

// IsIdle reports whether the async pipeline is idle
func (l *Logger) IsIdle() (bool, error) {
	if err := l.check(); err != nil {
		return false, err
	}
	return l.core.IsIdle(), nil
}

// PendingCount returns the number of queued items
func (l *Logger) PendingCount() (int, error) {
	if err := l.check(); err != nil {
		return 0, err
	}
	return l.core.PendingCount(), nil
}
