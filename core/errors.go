package core

import "errors"

var (
	// ErrUseAfterFree is returned by every method of a scoped handle after
	// its ExitLock has completed.
	ErrUseAfterFree = errors.New("conlog: handle already freed")
	// ErrUnsupportedNesting is returned when EnterLock is called on a
	// scoped handle. Locks do not stack.
	ErrUnsupportedNesting = errors.New("conlog: nested lock is not supported")
	// ErrInvalidExit is returned when ExitLock is called on the creator handle.
	ErrInvalidExit = errors.New("conlog: nothing to exit, handle is not locked")
	// ErrNilInput is returned when a nil error is passed to LogException.
	ErrNilInput = errors.New("conlog: nil input")
)
