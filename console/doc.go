// Package console provides the batch writer that puts merged log batches
// on the terminal.
//
// A Writer formats every line of a Batch with a formatter.Formatter and
// emits the whole batch in a single Write call. When the batch carries a
// color, the writer switches the console to that color for the batch and
// restores the color that was active before, so colored batches never
// leak their color into the lines that follow.
//
// Color escapes come from github.com/fatih/color. The default output is
// a go-colorable stdout, which translates ANSI sequences on Windows
// consoles. In ColorAuto mode colors are only emitted when the output is
// a terminal (checked with go-isatty) and NO_COLOR is unset.
//
// A Writer performs no locking of its own; the pipeline worker and the
// synchronous path of the logger serialize access to it.
package console
