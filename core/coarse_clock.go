package core

import (
	"sync"
	"sync/atomic"
	"time"
)

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// coarseTick is the refresh interval of the cached clock. Item
// timestamps only feed the optional line prefix, so millisecond
// resolution is plenty.
const coarseTick = time.Millisecond

// StartCoarseClock starts the background goroutine that caches
// time.Now() every coarseTick. It is safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of the
// process, like the pipeline worker.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(coarseTick)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time. It falls back to
// time.Now() when the clock has not been started.
func CoarseNow() time.Time {
	if t := coarseNow.Load(); t != nil {
		return *t
	}
	return time.Now()
}
