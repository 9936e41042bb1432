package core

import "time"

// Item is a single submitted log message. It is immutable once queued.
type Item struct {
	Time    time.Time
	Message string
	Level   Level
	Color   Color
}

// NewItem creates an Item stamped with the coarse clock.
func NewItem(message string, level Level, color Color) Item {
	return Item{
		Time:    CoarseNow(),
		Message: message,
		Level:   level,
		Color:   color,
	}
}

// Line is one message line inside a Batch.
type Line struct {
	Time    time.Time
	Message string
}

// Batch is a run of lines sharing a level and a resolved color. It is
// the unit written to the console in one call.
type Batch struct {
	Level Level
	Color Color
	Lines []Line
}

// SingleBatch wraps a lone item into a Batch of one line.
func SingleBatch(it Item) Batch {
	return Batch{
		Level: it.Level,
		Color: it.Color,
		Lines: []Line{{Time: it.Time, Message: it.Message}},
	}
}

// Text joins the batch messages with newlines, without a trailing one.
func (b Batch) Text() string {
	switch len(b.Lines) {
	case 0:
		return ""
	case 1:
		return b.Lines[0].Message
	}
	n := len(b.Lines) - 1
	for _, l := range b.Lines {
		n += len(l.Message)
	}
	buf := make([]byte, 0, n)
	for i, l := range b.Lines {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, l.Message...)
	}
	return string(buf)
}
