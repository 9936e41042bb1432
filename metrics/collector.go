package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/pipeline"
)

// Metric namespace and subsystems.
const (
	// metricsNamespace is the namespace for all conlog metrics.
	metricsNamespace = "conlog"

	// metricsSubsystemPipeline is the subsystem for the async queue.
	metricsSubsystemPipeline = "pipeline"

	// metricsSubsystemConsole is the subsystem for console writes.
	metricsSubsystemConsole = "console"
)

// Source is the state a Collector reads on each scrape. *logger.Core
// satisfies it.
type Source interface {
	Stats() *pipeline.Stats
	PendingCount() int
	IsIdle() bool
}

// Collector is a prometheus.Collector over a Source.
//
// # Thread Safety
//
// Collector is safe for concurrent use. Every value is loaded atomically
// from the Source; the set of values is not a consistent snapshot.
type Collector struct {
	src Source

	enqueued    *prometheus.Desc
	batches     *prometheus.Desc
	writeErrors *prometheus.Desc
	lines       *prometheus.Desc
	pending     *prometheus.Desc
	idle        *prometheus.Desc
}

// NewCollector creates a Collector reading src.
func NewCollector(src Source) *Collector {
	return &Collector{
		src: src,
		enqueued: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, metricsSubsystemPipeline, "enqueued_total"),
			"Total items queued for asynchronous delivery.",
			nil, nil,
		),
		batches: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, metricsSubsystemConsole, "batches_total"),
			"Total write calls made to the console.",
			nil, nil,
		),
		writeErrors: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, metricsSubsystemConsole, "write_errors_total"),
			"Total console write calls that failed.",
			nil, nil,
		),
		lines: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, metricsSubsystemConsole, "lines_total"),
			"Total lines written to the console by level.",
			[]string{"level"}, nil,
		),
		pending: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, metricsSubsystemPipeline, "pending"),
			"Queued items not yet taken by the worker.",
			nil, nil,
		),
		idle: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, metricsSubsystemPipeline, "idle"),
			"1 when the queue is drained and the worker is waiting.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.enqueued
	ch <- c.batches
	ch <- c.writeErrors
	ch <- c.lines
	ch <- c.pending
	ch <- c.idle
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.src.Stats().GetSnapshot()

	ch <- prometheus.MustNewConstMetric(c.enqueued, prometheus.CounterValue, float64(snap.EnqueuedTotal))
	ch <- prometheus.MustNewConstMetric(c.batches, prometheus.CounterValue, float64(snap.BatchesTotal))
	ch <- prometheus.MustNewConstMetric(c.writeErrors, prometheus.CounterValue, float64(snap.WriteErrorsTotal))
	for l := core.Verbose3Level; l <= core.ErrorLevel; l++ {
		ch <- prometheus.MustNewConstMetric(c.lines, prometheus.CounterValue, float64(snap.LinesTotal[l]), l.String())
	}

	ch <- prometheus.MustNewConstMetric(c.pending, prometheus.GaugeValue, float64(c.src.PendingCount()))
	idle := 0.0
	if c.src.IsIdle() {
		idle = 1
	}
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, idle)
}
