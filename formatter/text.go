package formatter

import (
	"bytes"

	"github.com/philipp01105/conlog/core"
)

// DefaultTimestampFormat is used when Config.TimestampFormat is empty.
const DefaultTimestampFormat = "15:04:05.000"

// TextFormatter formats batches as human-readable text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{Config: cfg}
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.Verbose3Level: "[VERBOSE3] ",
	core.Verbose2Level: "[VERBOSE2] ",
	core.Verbose1Level: "[VERBOSE1] ",
	core.InfoLevel:     "[INFO] ",
	core.WarningLevel:  "[WARNING] ",
	core.ErrorLevel:    "[ERROR] ",
}

// FormatBatch writes the batch lines into buf
func (f *TextFormatter) FormatBatch(b *core.Batch, buf *bytes.Buffer) {
	tag := ""
	if f.LevelTags {
		if b.Level.Valid() {
			tag = levelBrackets[b.Level]
		} else {
			tag = "[UNKNOWN] "
		}
	}

	for _, line := range b.Lines {
		if f.Timestamps {
			// use AppendFormat to avoid string allocation
			buf.Write(line.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
			buf.WriteByte(' ')
		}
		buf.WriteString(tag)
		buf.WriteString(line.Message)
		buf.WriteByte('\n')
	}
}
