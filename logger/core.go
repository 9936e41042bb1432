package logger

import (
	"io"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/philipp01105/conlog/console"
	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
	"github.com/philipp01105/conlog/pipeline"
)

// Core is the shared logging state behind every Logger handle: the
// minimum level, the delivery mode, the console writer and the async
// pipeline.
type Core struct {
	level atomic.Int32
	async atomic.Bool

	// mu makes the mode check and the write or enqueue atomic with
	// respect to mode switches. It also serializes synchronous writes.
	mu sync.Mutex

	writer      *console.Writer
	pipeline    *pipeline.Pipeline
	stats       *pipeline.Stats
	levelColors [len(defaultLevelColors)]core.Color
	diag        *zap.Logger
}

// Builder provides a fluent API for building Core instances
type Builder struct {
	level       core.Level
	async       bool
	console     console.Config
	levelColors [len(defaultLevelColors)]core.Color
	diag        *zap.Logger
}

// NewBuilder creates a new core builder
func NewBuilder() *Builder {
	return &Builder{
		level:       core.InfoLevel, // Default level
		async:       true,           // Default mode
		levelColors: defaultLevelColors,
	}
}

// WithLevel sets the minimum level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithAsync sets the initial delivery mode
func (b *Builder) WithAsync(async bool) *Builder {
	b.async = async
	return b
}

// WithWriter sets the console output (default: colorable stdout)
func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.console.Writer = w
	return b
}

// WithFormatter sets the line formatter
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.console.Formatter = f
	return b
}

// WithColor sets when console colors are emitted
func (b *Builder) WithColor(mode console.ColorMode) *Builder {
	b.console.Color = mode
	return b
}

// WithLevelColor sets the color used by the convenience method of level.
func (b *Builder) WithLevelColor(level core.Level, c core.Color) *Builder {
	if level.Valid() {
		b.levelColors[level] = c
	}
	return b
}

// WithDiagnostics sets the logger that receives conlog's own
// diagnostics, such as console write failures (default: zap.NewNop()).
func (b *Builder) WithDiagnostics(l *zap.Logger) *Builder {
	b.diag = l
	return b
}

// Build creates the Core instance
func (b *Builder) Build() *Core {
	core.StartCoarseClock()

	diag := b.diag
	if diag == nil {
		diag = zap.NewNop()
	}

	c := &Core{
		writer:      console.NewWriter(b.console),
		stats:       pipeline.NewStats(),
		levelColors: b.levelColors,
		diag:        diag,
	}
	c.pipeline = pipeline.New(pipeline.Config{
		Sink:        c.writer,
		Stats:       c.stats,
		Diagnostics: diag.Named("pipeline"),
	})
	c.level.Store(int32(b.level))
	c.async.Store(b.async)
	return c
}

// LogCore routes one message. Items below the minimum level are dropped
// before any lock is taken. Accepted items are written immediately in
// synchronous mode and queued in asynchronous mode.
func (c *Core) LogCore(message string, level core.Level, color core.Color) {
	if level < c.Level() {
		return
	}
	it := core.NewItem(message, level, color)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.async.Load() {
		c.pipeline.Push(it)
		return
	}
	c.write(core.SingleBatch(it))
}

// write must be called with mu held.
func (c *Core) write(b core.Batch) {
	err := c.writer.WriteBatch(b)
	c.stats.RecordBatch(b, err)
	if err != nil {
		c.diag.Warn("console write failed",
			zap.Stringer("level", b.Level),
			zap.Error(err))
	}
}

// Enabled reports whether an item at level passes the minimum level.
func (c *Core) Enabled(level core.Level) bool {
	return level >= c.Level()
}

// SetLevel sets the minimum level
func (c *Core) SetLevel(level core.Level) {
	c.mu.Lock()
	c.level.Store(int32(level))
	c.mu.Unlock()
}

// Level returns the minimum level
func (c *Core) Level() core.Level {
	return core.Level(c.level.Load())
}

// SetAsync switches the delivery mode. Switching to synchronous mode
// blocks until every queued item has been written.
func (c *Core) SetAsync(async bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	was := c.async.Load()
	if was == async {
		return
	}
	if was {
		c.pipeline.Flush()
	}
	c.async.Store(async)
	c.diag.Debug("delivery mode switched", zap.Bool("async", async))
}

// IsAsync reports whether the core is in asynchronous mode
func (c *Core) IsAsync() bool {
	return c.async.Load()
}

// SetConsoleColor applies color as the persistent console color. Queued
// items are written first so the change never lands inside them.
func (c *Core) SetConsoleColor(color core.Color) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pipeline.Flush()
	return c.writer.SetColor(color)
}

// LevelColor returns the color used by the convenience method of level.
func (c *Core) LevelColor(level core.Level) core.Color {
	if !level.Valid() {
		return core.NoColor
	}
	return c.levelColors[level]
}

// Flush blocks until every queued item has been written.
func (c *Core) Flush() {
	c.pipeline.Flush()
}

// IsIdle reports whether the async queue is empty and the worker is not
// writing.
func (c *Core) IsIdle() bool {
	return c.pipeline.IsIdle()
}

// PendingCount returns the number of queued items not yet taken by the
// worker.
func (c *Core) PendingCount() int {
	return c.pipeline.Pending()
}

// Stats returns the delivery statistics of both modes.
func (c *Core) Stats() *pipeline.Stats {
	return c.stats
}

// Close flushes pending items and returns every console write error seen
// so far. The Core stays usable afterwards.
func (c *Core) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pipeline.Flush()
	return c.writer.Err()
}
