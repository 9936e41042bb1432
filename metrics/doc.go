/*
Package metrics exports conlog delivery statistics to Prometheus.

# Metrics Exported

  - conlog_pipeline_enqueued_total: Counter of items queued in asynchronous mode
  - conlog_console_batches_total: Counter of write calls made to the console
  - conlog_console_write_errors_total: Counter of failed write calls
  - conlog_console_lines_total: Counter of lines written, by level
  - conlog_pipeline_pending: Gauge of queued items not yet taken by the worker
  - conlog_pipeline_idle: Gauge, 1 when the queue is drained and the worker is waiting

# Usage

	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.NewCollector(logger.DefaultCore()))

The collector reads the counters at scrape time, so it adds nothing to
the logging hot path.
*/
package metrics
