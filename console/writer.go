package console

import (
	"bytes"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"go.uber.org/multierr"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
)

// Config holds configuration for the console writer
type Config struct {
	// Writer to write to (default: colorable stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter with the zero Config)
	Formatter formatter.Formatter
	// Color selects when escape sequences are emitted (default: ColorAuto)
	Color ColorMode
}

// applyDefaults fills in zero-value fields with defaults and resolves
// whether colors are enabled.
func applyDefaults(cfg *Config) bool {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.Writer == nil {
		// colorable wraps stdout on Windows, so the terminal check has to
		// look at the real file.
		enabled := colorsEnabled(cfg.Color, os.Stdout)
		cfg.Writer = colorable.NewColorableStdout()
		return enabled
	}
	return colorsEnabled(cfg.Color, cfg.Writer)
}

// Writer emits batches to the console. It is not safe for concurrent
// use; callers serialize access.
type Writer struct {
	out       io.Writer
	formatter formatter.Formatter
	palette   *palette
	enabled   bool
	current   core.Color // color currently applied to the console
	buf       bytes.Buffer
	errs      error
}

// NewWriter creates a new console writer.
func NewWriter(cfg Config) *Writer {
	enabled := applyDefaults(&cfg)
	w := &Writer{
		out:       cfg.Writer,
		formatter: cfg.Formatter,
		palette:   newPalette(enabled),
		enabled:   enabled,
	}
	w.buf.Grow(256)
	return w
}

// ColorsEnabled reports whether escape sequences are emitted.
func (w *Writer) ColorsEnabled() bool {
	return w.enabled
}

// Current returns the color currently applied to the console.
func (w *Writer) Current() core.Color {
	return w.current
}

// SetColor applies c as the persistent console color. Batches without a
// color are written in it and colored batches restore it afterwards.
// NoColor resets the console to its default color.
func (w *Writer) SetColor(c core.Color) error {
	w.buf.Reset()
	w.apply(&w.buf, c)
	w.current = c
	return w.flush()
}

// WriteBatch writes every line of b in one call. A set color is applied
// for the duration of the batch and the prior console color is restored
// afterwards. Batches without a color leave the console color untouched.
func (w *Writer) WriteBatch(b core.Batch) error {
	w.buf.Reset()

	if col := w.palette.get(b.Color); col != nil {
		prior := w.current
		col.SetWriter(&w.buf)
		w.formatter.FormatBatch(&b, &w.buf)
		w.apply(&w.buf, prior)
	} else {
		w.formatter.FormatBatch(&b, &w.buf)
	}

	return w.flush()
}

// Err returns every write error seen so far, combined.
func (w *Writer) Err() error {
	return w.errs
}

// apply resets the console and then sets c, if any.
func (w *Writer) apply(buf *bytes.Buffer, c core.Color) {
	if !w.enabled {
		return
	}
	w.palette.reset.SetWriter(buf)
	if col := w.palette.get(c); col != nil {
		col.SetWriter(buf)
	}
}

func (w *Writer) flush() error {
	if w.buf.Len() == 0 {
		return nil
	}
	_, err := w.out.Write(w.buf.Bytes())
	if err != nil {
		multierr.AppendInto(&w.errs, err)
	}
	return err
}
