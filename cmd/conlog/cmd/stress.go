package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/philipp01105/conlog/logger"
	"github.com/philipp01105/conlog/metrics"
)

type stressOptions struct {
	producers int
	messages  int
	metrics   bool
}

func newStressCmd(opts *options) *cobra.Command {
	so := &stressOptions{}

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Log from many goroutines at once",
		Long: `stress starts concurrent producers that log through one core. The
first producer holds a scoped lock for its whole run, so its messages
appear as one uninterrupted block. Delivery statistics are printed to
stderr at the end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if so.producers < 1 || so.messages < 0 {
				return errors.New("need at least one producer and a non-negative message count")
			}
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}

			start := time.Now()
			runErr := runStress(cmd.Context(), s.log, so.producers, so.messages)
			if err := s.log.Flush(); err != nil {
				runErr = multierr.Append(runErr, err)
			}
			s.diag.Debug("stress finished",
				zap.Int("producers", so.producers),
				zap.Int("messages", so.messages),
				zap.Duration("elapsed", time.Since(start)))

			report(cmd.ErrOrStderr(), s.core)
			if so.metrics {
				runErr = multierr.Append(runErr, writeMetrics(cmd.ErrOrStderr(), s.core))
			}
			return multierr.Combine(runErr, s.close())
		},
	}

	cmd.Flags().IntVar(&so.producers, "producers", 4, "number of concurrent producers")
	cmd.Flags().IntVar(&so.messages, "messages", 1000, "messages per producer")
	cmd.Flags().BoolVar(&so.metrics, "metrics", false, "print the Prometheus metrics after the run")
	return cmd
}

func runStress(ctx context.Context, l *logger.Logger, producers, messages int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return l.WithLock(func(scoped *logger.Logger) error {
			for i := 0; i < messages; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := scoped.Warningf("locked producer: message %d", i); err != nil {
					return err
				}
			}
			return nil
		})
	})

	for p := 1; p < producers; p++ {
		p := p
		g.Go(func() error {
			for i := 0; i < messages; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := l.Infof("producer %d: message %d", p, i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func report(w io.Writer, c *logger.Core) {
	snap := c.Stats().GetSnapshot()
	var lines uint64
	for _, n := range snap.LinesTotal {
		lines += n
	}
	fmt.Fprintf(w, "enqueued=%d batches=%d lines=%d write_errors=%d\n",
		snap.EnqueuedTotal, snap.BatchesTotal, lines, snap.WriteErrorsTotal)
}

func writeMetrics(w io.Writer, c *logger.Core) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(metrics.NewCollector(c)); err != nil {
		return err
	}
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
