package bridge

import (
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/logger"
)

// ZapCore is a zapcore.Core that writes through a conlog Logger handle.
type ZapCore struct {
	log *logger.Logger
	enc zapcore.Encoder
}

// NewZapCore creates a zapcore.Core writing through l. Entries are
// rendered by a console encoder that emits the logger name, the message
// and the context fields; level and time are left to conlog.
func NewZapCore(l *logger.Logger) *ZapCore {
	return &ZapCore{
		log: l,
		enc: zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			NameKey:          "logger",
			MessageKey:       "msg",
			StacktraceKey:    "stacktrace",
			LineEnding:       zapcore.DefaultLineEnding,
			ConsoleSeparator: " ",
			EncodeName:       zapcore.FullNameEncoder,
			EncodeDuration:   zapcore.StringDurationEncoder,
		}),
	}
}

// Enabled implements zapcore.LevelEnabler using the Core level filter.
func (z *ZapCore) Enabled(level zapcore.Level) bool {
	return z.log.Core().Enabled(zapLevelToCore(level))
}

// With returns a copy of the core carrying fields on every entry.
func (z *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	clone := &ZapCore{log: z.log, enc: z.enc.Clone()}
	for _, f := range fields {
		f.AddTo(clone.enc)
	}
	return clone
}

// Check adds z to ce when the entry level is enabled.
func (z *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if z.Enabled(ent.Level) {
		return ce.AddCore(ent, z)
	}
	return ce
}

// Write renders ent and logs it. Entries above error level are flushed
// before returning because zap exits or panics right after.
func (z *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	buf, err := z.enc.EncodeEntry(ent, fields)
	if err != nil {
		return err
	}
	msg := strings.TrimSuffix(buf.String(), zapcore.DefaultLineEnding)
	buf.Free()

	if err := z.log.Log(zapLevelToCore(ent.Level), msg); err != nil {
		return err
	}
	if ent.Level > zapcore.ErrorLevel {
		return z.log.Flush()
	}
	return nil
}

// Sync flushes the async pipeline.
func (z *ZapCore) Sync() error {
	return z.log.Flush()
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarningLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	case level >= zapcore.DebugLevel:
		return core.Verbose1Level
	case level >= zapcore.DebugLevel-1:
		return core.Verbose2Level
	default:
		return core.Verbose3Level
	}
}
