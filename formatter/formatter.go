package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/conlog/core"
)

// Formatter defines the interface for batch formatters
type Formatter interface {
	// FormatBatch writes every line of b, each terminated by a newline, into buf.
	FormatBatch(b *core.Batch, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// Timestamps prefixes every line with the time it was submitted
	Timestamps bool
	// TimestampFormat specifies the time format (empty for 15:04:05.000)
	TimestampFormat string
	// LevelTags prefixes every line with the batch level, e.g. "[WARNING] "
	LevelTags bool
}

// Format formats b with f into a freshly allocated byte slice.
func Format(f Formatter, b *core.Batch) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatBatch(b, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
