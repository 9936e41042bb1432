// Package pipeline implements the asynchronous delivery path.
//
// A Pipeline owns an unbounded, ordered queue of core.Items and a single
// background worker goroutine. The worker is started lazily by the first
// Push and then runs for the lifetime of the process. Each time it wakes
// it swaps the whole queue out under the queue mutex, releases the lock,
// merges consecutive items into batches and hands every batch to its
// Sink in enqueue order:
//
//	queue: a(Info) b(Info) c(Warning, yellow)
//	runs:  "a\nb" (Info, no color)  "c" (Warning, yellow)
//
// A run continues while the level stays the same. The first color set in
// a run becomes the run color, and an item carrying a different set
// color starts a new run. Merging changes grouping, never order.
//
// The pipeline exposes an idle signal: it is idle when the queue is
// empty and the worker is not writing a batch. Flush blocks until that
// state is reached, which guarantees every item pushed before the call
// has reached the sink.
package pipeline
