// Package core defines the shared types used across conlog.
//
// It provides the Level type for severity filtering, the Color tag used
// to colorize console output, the Item type that represents a single
// submitted log line, and the Batch type that the console writer
// receives after consecutive items have been merged.
//
// Item is a small value type. Once it has been queued it is never
// modified; the pipeline worker copies items out of the shared queue,
// merges runs of them into Batches and then drops them.
//
// The sentinel errors returned by logger handles live here as well so
// that every package can compare against them with errors.Is without
// importing the logger package.
package core
