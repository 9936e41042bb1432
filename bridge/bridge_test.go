package bridge

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/conlog/console"
	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/logger"
)

func newSyncLogger(buf *bytes.Buffer, level core.Level) *logger.Logger {
	c := logger.NewBuilder().
		WithWriter(buf).
		WithColor(console.ColorNever).
		WithAsync(false).
		WithLevel(level).
		Build()
	return logger.New(c)
}

func TestSlogHandler_Enabled(t *testing.T) {
	sh := NewSlogHandler(newSyncLogger(&bytes.Buffer{}, core.InfoLevel))
	ctx := context.Background()

	assert.False(t, sh.Enabled(ctx, slog.LevelDebug), "Debug should not be enabled when level is Info")
	assert.True(t, sh.Enabled(ctx, slog.LevelInfo))
	assert.True(t, sh.Enabled(ctx, slog.LevelWarn))
	assert.True(t, sh.Enabled(ctx, slog.LevelError))
}

func TestSlogHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewSlogHandler(newSyncLogger(&buf, core.Verbose3Level)))

	log.Info("test message", "key", "value", "count", 42, "note", "two words")

	assert.Equal(t, "test message key=value count=42 note=\"two words\"\n", buf.String())
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewSlogHandler(newSyncLogger(&buf, core.InfoLevel)))

	log.With("app", "test").
		WithGroup("req").
		Warn("slow", "ms", 120, slog.Group("user", "id", 7))

	assert.Equal(t, "slow app=test req.ms=120 req.user.id=7\n", buf.String())
}

func TestSlogLevelToCore(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want core.Level
	}{
		{slog.LevelError + 4, core.ErrorLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelWarn, core.WarningLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelDebug, core.Verbose1Level},
		{slog.LevelDebug - 4, core.Verbose2Level},
		{slog.LevelDebug - 8, core.Verbose3Level},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slogLevelToCore(tt.in), "slog level %v", tt.in)
	}
}

func TestSlogHandler_RespectsLock(t *testing.T) {
	var buf bytes.Buffer
	l := newSyncLogger(&buf, core.InfoLevel)
	sl := slog.New(NewSlogHandler(l))

	scoped, err := l.EnterLock()
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		sl.Info("bridged")
	}()

	scoped.Info("first")
	_, err = scoped.ExitLock()
	require.NoError(t, err)
	<-done

	assert.Equal(t, "first\nbridged\n", buf.String())
}

func TestZapCore_Write(t *testing.T) {
	var buf bytes.Buffer
	log := zap.New(NewZapCore(newSyncLogger(&buf, core.InfoLevel)))

	log.Info("hello", zap.String("k", "v"))
	log.Debug("hidden")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "hello "), "output: %q", out)
	assert.Contains(t, out, `"k": "v"`)
	assert.Equal(t, 1, strings.Count(out, "\n"), "debug must be filtered")
}

func TestZapCore_WithAndNamed(t *testing.T) {
	var buf bytes.Buffer
	log := zap.New(NewZapCore(newSyncLogger(&buf, core.InfoLevel))).
		Named("api").
		With(zap.Int("port", 8080))

	log.Warn("listening")

	out := buf.String()
	assert.Contains(t, out, "api listening")
	assert.Contains(t, out, `"port": 8080`)
}

func TestZapCore_SyncFlushes(t *testing.T) {
	var buf bytes.Buffer
	c := logger.NewBuilder().
		WithWriter(&lockedBuffer{buf: &buf}).
		WithColor(console.ColorNever).
		Build()
	log := zap.New(NewZapCore(logger.New(c)))

	log.Info("queued")
	require.NoError(t, log.Sync())

	assert.True(t, c.IsIdle())
	assert.Equal(t, "queued\n", buf.String())
}

func TestZapLevelToCore(t *testing.T) {
	tests := []struct {
		in   zapcore.Level
		want core.Level
	}{
		{zapcore.FatalLevel, core.ErrorLevel},
		{zapcore.ErrorLevel, core.ErrorLevel},
		{zapcore.WarnLevel, core.WarningLevel},
		{zapcore.InfoLevel, core.InfoLevel},
		{zapcore.DebugLevel, core.Verbose1Level},
		{zapcore.DebugLevel - 1, core.Verbose2Level},
		{zapcore.DebugLevel - 2, core.Verbose3Level},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, zapLevelToCore(tt.in), "zap level %v", tt.in)
	}
}

func TestZapCore_FreedHandle(t *testing.T) {
	l := newSyncLogger(&bytes.Buffer{}, core.InfoLevel)
	scoped, err := l.EnterLock()
	require.NoError(t, err)
	_, err = scoped.ExitLock()
	require.NoError(t, err)

	zc := NewZapCore(scoped)
	err = zc.Write(zapcore.Entry{Level: zapcore.InfoLevel, Message: "x"}, nil)
	assert.ErrorIs(t, err, core.ErrUseAfterFree)
}
