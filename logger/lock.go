package logger

import (
	"sync"
	"sync/atomic"
)

// token identifies a handle inside its family. Ownership is compared by
// token, never by handle role.
type token uint64

var lastToken atomic.Uint64

func nextToken() token {
	return token(lastToken.Add(1))
}

type lockState uint8

const (
	unlocked lockState = iota
	locked
)

// lockContext is the state shared by one logger family. owner equals
// creator.token exactly when state is unlocked.
type lockContext struct {
	mu       sync.Mutex
	released *sync.Cond // broadcast on every ExitLock
	state    lockState
	creator  *Logger
	owner    token
}

func newLockContext(creator *Logger) *lockContext {
	lc := &lockContext{
		state:   unlocked,
		creator: creator,
		owner:   creator.token,
	}
	lc.released = sync.NewCond(&lc.mu)
	return lc
}

// mayWrite must be called with mu held.
func (lc *lockContext) mayWrite(t token) bool {
	return lc.state == unlocked || lc.owner == t
}

// claim waits until the family is unlocked and hands ownership to
// scoped. It must be called with mu held.
func (lc *lockContext) claim(scoped *Logger) {
	for lc.state == locked {
		lc.released.Wait()
	}
	lc.owner = scoped.token
	lc.state = locked
}

// release returns ownership to the creator and wakes every waiter. It
// must be called with mu held.
func (lc *lockContext) release() {
	lc.owner = lc.creator.token
	lc.state = unlocked
	lc.released.Broadcast()
}
