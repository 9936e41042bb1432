package pipeline

import (
	"sync/atomic"

	"github.com/philipp01105/conlog/core"
)

// levelCount is the number of defined levels
const levelCount = int(core.ErrorLevel) + 1

// Stats tracks delivery statistics
type Stats struct {
	// EnqueuedTotal counts items pushed onto the async queue
	EnqueuedTotal uint64
	// BatchesTotal counts write calls made to the console
	BatchesTotal uint64
	// WriteErrorsTotal counts write calls that failed
	WriteErrorsTotal uint64
	// Separate atomic line counters per level
	lines [levelCount]uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementEnqueued atomically increments the enqueued counter
func (s *Stats) IncrementEnqueued() {
	atomic.AddUint64(&s.EnqueuedTotal, 1)
}

// RecordBatch accounts for one write call of b and its outcome.
func (s *Stats) RecordBatch(b core.Batch, err error) {
	atomic.AddUint64(&s.BatchesTotal, 1)
	if err != nil {
		atomic.AddUint64(&s.WriteErrorsTotal, 1)
		return
	}
	if b.Level.Valid() {
		atomic.AddUint64(&s.lines[b.Level], uint64(len(b.Lines)))
	}
}

// GetEnqueued returns the enqueued count
func (s *Stats) GetEnqueued() uint64 {
	return atomic.LoadUint64(&s.EnqueuedTotal)
}

// GetBatches returns the write call count
func (s *Stats) GetBatches() uint64 {
	return atomic.LoadUint64(&s.BatchesTotal)
}

// GetWriteErrors returns the failed write count
func (s *Stats) GetWriteErrors() uint64 {
	return atomic.LoadUint64(&s.WriteErrorsTotal)
}

// GetLines returns the number of lines written at level
func (s *Stats) GetLines(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return atomic.LoadUint64(&s.lines[level])
}

// GetTotalLines returns the lines written across all levels
func (s *Stats) GetTotalLines() uint64 {
	var n uint64
	for i := range s.lines {
		n += atomic.LoadUint64(&s.lines[i])
	}
	return n
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.EnqueuedTotal, 0)
	atomic.StoreUint64(&s.BatchesTotal, 0)
	atomic.StoreUint64(&s.WriteErrorsTotal, 0)
	for i := range s.lines {
		atomic.StoreUint64(&s.lines[i], 0)
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	EnqueuedTotal    uint64
	BatchesTotal     uint64
	WriteErrorsTotal uint64
	LinesTotal       map[core.Level]uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	lines := make(map[core.Level]uint64, levelCount)
	for l := core.Verbose3Level; l <= core.ErrorLevel; l++ {
		lines[l] = s.GetLines(l)
	}
	return Snapshot{
		EnqueuedTotal:    s.GetEnqueued(),
		BatchesTotal:     s.GetBatches(),
		WriteErrorsTotal: s.GetWriteErrors(),
		LinesTotal:       lines,
	}
}
