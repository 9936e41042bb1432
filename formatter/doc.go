// Package formatter turns merged batches into console bytes.
//
// The console writer hands every Batch to a Formatter, which writes one
// line per message into a caller-provided bytes.Buffer. The built-in
// TextFormatter can prefix each line with a timestamp and a level tag;
// with the zero Config it writes the bare messages, so a batch holding
// "a" and "b" becomes exactly "a\nb\n".
//
// The formatter keeps a pool of bytes.Buffer for callers that want a
// standalone []byte. Buffers larger than 64 KiB are not returned to the
// pool to prevent a single large batch from permanently inflating memory
// usage.
//
// FormatException renders an error and its wrapped causes as a
// multi-line dump for Logger.LogException.
package formatter
