package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/conlog/console"
	"github.com/philipp01105/conlog/logger"
	"github.com/philipp01105/conlog/pipeline"
)

func gather(t *testing.T, c *Collector) map[string]*dto.MetricFamily {
	t.Helper()
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(c))
	families, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]*dto.MetricFamily, len(families))
	for _, mf := range families {
		out[mf.GetName()] = mf
	}
	return out
}

func linesFor(mf *dto.MetricFamily, level string) float64 {
	for _, m := range mf.GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetName() == "level" && lp.GetValue() == level {
				return m.GetCounter().GetValue()
			}
		}
	}
	return -1
}

func TestCollector(t *testing.T) {
	var buf bytes.Buffer
	c := logger.NewBuilder().
		WithWriter(&buf).
		WithColor(console.ColorNever).
		WithAsync(false).
		Build()
	l := logger.New(c)

	require.NoError(t, l.Info("one"))
	require.NoError(t, l.Info("two"))
	require.NoError(t, l.Error("three"))

	families := gather(t, NewCollector(c))

	require.Contains(t, families, "conlog_console_batches_total")
	assert.Equal(t, 3.0, families["conlog_console_batches_total"].GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, 0.0, families["conlog_console_write_errors_total"].GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, 0.0, families["conlog_pipeline_enqueued_total"].GetMetric()[0].GetCounter().GetValue())

	lines := families["conlog_console_lines_total"]
	require.NotNil(t, lines)
	assert.Len(t, lines.GetMetric(), 6)
	assert.Equal(t, 2.0, linesFor(lines, "INFO"))
	assert.Equal(t, 1.0, linesFor(lines, "ERROR"))
	assert.Equal(t, 0.0, linesFor(lines, "WARNING"))

	assert.Equal(t, 0.0, families["conlog_pipeline_pending"].GetMetric()[0].GetGauge().GetValue())
	assert.Equal(t, 1.0, families["conlog_pipeline_idle"].GetMetric()[0].GetGauge().GetValue())
}

func TestCollector_Async(t *testing.T) {
	var buf bytes.Buffer
	c := logger.NewBuilder().
		WithWriter(&buf).
		WithColor(console.ColorNever).
		Build()
	l := logger.New(c)

	for i := 0; i < 5; i++ {
		require.NoError(t, l.Warning("w"))
	}
	require.NoError(t, l.Flush())

	families := gather(t, NewCollector(c))
	assert.Equal(t, 5.0, families["conlog_pipeline_enqueued_total"].GetMetric()[0].GetCounter().GetValue())
	assert.Equal(t, 5.0, linesFor(families["conlog_console_lines_total"], "WARNING"))
	assert.Equal(t, 1.0, families["conlog_pipeline_idle"].GetMetric()[0].GetGauge().GetValue())
}

type fakeSource struct {
	pending int
	idle    bool
}

func (f fakeSource) Stats() *pipeline.Stats { return pipeline.NewStats() }
func (f fakeSource) PendingCount() int       { return f.pending }
func (f fakeSource) IsIdle() bool            { return f.idle }

func TestCollector_Gauges(t *testing.T) {
	families := gather(t, NewCollector(fakeSource{pending: 7}))
	assert.Equal(t, 7.0, families["conlog_pipeline_pending"].GetMetric()[0].GetGauge().GetValue())
	assert.Equal(t, 0.0, families["conlog_pipeline_idle"].GetMetric()[0].GetGauge().GetValue())
}
