package logger

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/philipp01105/conlog/console"
)

// syncBuffer is a bytes.Buffer safe for the worker and the test
// goroutine to use at once.
type syncBuffer struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	writes int
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writes++
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}

func (b *syncBuffer) Lines() []string {
	s := strings.TrimSuffix(b.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// gateWriter blocks its first Write until release is closed.
type gateWriter struct {
	syncBuffer
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGateWriter() *gateWriter {
	return &gateWriter{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (g *gateWriter) Write(p []byte) (int, error) {
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})
	return g.syncBuffer.Write(p)
}

func newTestCore(w io.Writer, async bool) *Core {
	return NewBuilder().
		WithWriter(w).
		WithColor(console.ColorNever).
		WithAsync(async).
		Build()
}
