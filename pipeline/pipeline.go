package pipeline

import (
	"sync"

	"go.uber.org/zap"

	"github.com/philipp01105/conlog/core"
)

// Sink receives merged batches. Calls are serialized by the pipeline
// worker.
type Sink interface {
	WriteBatch(b core.Batch) error
}

// Config holds configuration for a Pipeline
type Config struct {
	// Sink receives merged batches (required)
	Sink Sink
	// Stats receives delivery counters (default: a fresh Stats)
	Stats *Stats
	// Diagnostics logs write failures (default: zap.NewNop())
	Diagnostics *zap.Logger
}

// Pipeline is an unbounded, ordered queue drained by one background
// worker.
type Pipeline struct {
	sink  Sink
	stats *Stats
	diag  *zap.Logger

	mu    sync.Mutex // guards queue and idle
	work  *sync.Cond // signaled when items are pushed
	idled *sync.Cond // broadcast when the pipeline becomes idle
	queue []core.Item
	idle  bool

	startOnce sync.Once
}

// New creates a Pipeline. The worker is not started until the first Push.
func New(cfg Config) *Pipeline {
	if cfg.Sink == nil {
		panic("pipeline: nil Sink")
	}
	if cfg.Stats == nil {
		cfg.Stats = NewStats()
	}
	if cfg.Diagnostics == nil {
		cfg.Diagnostics = zap.NewNop()
	}
	p := &Pipeline{
		sink:  cfg.Sink,
		stats: cfg.Stats,
		diag:  cfg.Diagnostics,
		idle:  true,
	}
	p.work = sync.NewCond(&p.mu)
	p.idled = sync.NewCond(&p.mu)
	return p
}

// Push appends it to the queue and wakes the worker, starting it on
// first use. It never blocks on the sink.
func (p *Pipeline) Push(it core.Item) {
	p.startOnce.Do(func() {
		go p.run()
	})

	p.mu.Lock()
	p.queue = append(p.queue, it)
	// cleared here rather than in the worker so a Flush issued right
	// after Push cannot observe the previous idle state
	p.idle = false
	p.mu.Unlock()

	p.stats.IncrementEnqueued()
	p.work.Signal()
}

// Flush blocks until the queue is empty and the worker is not writing.
func (p *Pipeline) Flush() {
	p.mu.Lock()
	for !p.idle {
		p.idled.Wait()
	}
	p.mu.Unlock()
}

// IsIdle reports whether the queue is empty and the worker is not
// writing a batch.
func (p *Pipeline) IsIdle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.idle
}

// Pending returns the number of queued items not yet taken by the worker.
func (p *Pipeline) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Stats returns the pipeline statistics
func (p *Pipeline) Stats() *Stats {
	return p.stats
}

// run is the worker loop. It never returns.
func (p *Pipeline) run() {
	var (
		working []core.Item
		batches []core.Batch
	)
	for {
		p.mu.Lock()
		for len(p.queue) == 0 {
			p.idle = true
			p.idled.Broadcast()
			p.work.Wait()
		}
		p.idle = false
		// swap buffers so producers keep appending while we write
		working, p.queue = p.queue, working[:0]
		p.mu.Unlock()

		batches = Merge(working, batches[:0])
		for _, b := range batches {
			err := p.sink.WriteBatch(b)
			p.stats.RecordBatch(b, err)
			if err != nil {
				p.diag.Warn("console write failed",
					zap.Stringer("level", b.Level),
					zap.Int("lines", len(b.Lines)),
					zap.Error(err))
			}
		}

		// drop references so written messages can be collected
		clear(working)
		clear(batches)
	}
}
