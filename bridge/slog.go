package bridge

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/logger"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// conlog Logger handle.
type SlogHandler struct {
	log   *logger.Logger
	attrs string // pre-rendered " key=value" pairs
	group string
}

// NewSlogHandler creates a new slog.Handler adapter writing through l.
func NewSlogHandler(l *logger.Logger) *SlogHandler {
	return &SlogHandler{log: l}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.log.Core().Enabled(slogLevelToCore(level))
}

// Handle renders the record as "message key=value ..." and logs it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder
	sb.WriteString(record.Message)
	sb.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, s.group, a)
		return true
	})
	return s.log.Log(slogLevelToCore(record.Level), sb.String())
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	sb.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&sb, s.group, a)
	}
	return &SlogHandler{
		log:   s.log,
		attrs: sb.String(),
		group: s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		log:   s.log,
		attrs: s.attrs,
		group: newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.Verbose1Level
	case level >= slog.LevelDebug-4:
		return core.Verbose2Level
	default:
		return core.Verbose3Level
	}
}

// appendAttr writes " key=value", prefixing the group and flattening
// nested groups.
func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(sb, key, ga)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	switch a.Value.Kind() {
	case slog.KindString:
		s := a.Value.String()
		if strings.ContainsAny(s, " \t\n\"=") {
			s = strconv.Quote(s)
		}
		sb.WriteString(s)
	case slog.KindTime:
		sb.WriteString(a.Value.Time().Format(time.RFC3339))
	default:
		sb.WriteString(a.Value.String())
	}
}
