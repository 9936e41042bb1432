// Package logger is the public API of conlog. Most users only need to
// import this package.
//
// A Core holds the process-wide logging state: the minimum level, the
// synchronous/asynchronous mode flag, the console writer and the async
// pipeline. It is built once with a Builder and shared by reference:
//
//	c := logger.NewBuilder().
//	    WithLevel(logger.Verbose1Level).
//	    WithColor(console.ColorAlways).
//	    Build()
//	log := logger.New(c)
//
// The package also builds a default Core (async, InfoLevel, colored
// stdout) in init(). The package-level functions Info, Warning, Errorf,
// etc. delegate to its creator handle, so simple programs can log
// without any setup:
//
//	logger.Info("ready")
//
// # Handles and scoped locks
//
// A Logger is a handle onto a Core. New returns the creator handle of a
// new logger family. EnterLock on the creator claims exclusive use of
// the family and returns a scoped handle; until ExitLock is called on
// that scoped handle, every other handle of the family blocks in its
// logging calls, so the scope's lines are never interleaved with
// anyone else's:
//
//	scoped, err := log.EnterLock()
//	if err != nil {
//	    return err
//	}
//	scoped.Info("step 1")
//	scoped.Info("step 2")
//	log, _ = scoped.ExitLock()
//
// A scoped handle is single-use: after ExitLock every method returns
// ErrUseAfterFree. Locks do not nest; EnterLock on a scoped handle
// returns ErrUnsupportedNesting and ExitLock on the creator returns
// ErrInvalidExit. WithLock wraps the enter/exit pair around a function.
//
// Waits are indefinite. Calling EnterLock or logging through the
// creator from the goroutine that holds the scoped handle deadlocks.
//
// # Delivery
//
// Items below the minimum level are dropped before any lock is taken.
// In synchronous mode accepted items are written immediately. In
// asynchronous mode they are queued and a background worker writes them,
// merging consecutive items of the same level and color into one console
// write. Flush blocks until everything queued so far has been written;
// switching from asynchronous to synchronous mode flushes first.
package logger
