// Package bridge lets code written against log/slog or go.uber.org/zap
// log through a conlog handle.
//
// SlogHandler implements slog.Handler and ZapCore implements
// zapcore.Core. Both render the record as one text line (message
// followed by its attributes) and pass it to Logger.Log, so bridged
// records obey the handle's family lock, the Core level filter and the
// async batching exactly like native calls.
//
// Levels below slog.LevelDebug / zapcore.DebugLevel map onto the
// verbose levels; everything at or above error maps to ErrorLevel.
package bridge
