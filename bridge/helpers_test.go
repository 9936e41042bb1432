package bridge

import (
	"bytes"
	"sync"
)

// lockedBuffer serializes writes from the pipeline worker with reads
// from the test goroutine.
type lockedBuffer struct {
	mu  sync.Mutex
	buf *bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}
