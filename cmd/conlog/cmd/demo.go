package cmd

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/logger"
)

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print sample output at every level and color",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			return multierr.Combine(runDemo(s.log), s.close())
		},
	}
}

func runDemo(l *logger.Logger) error {
	var err error
	multierr.AppendInto(&err, l.Verbose3("verbose3: finest detail"))
	multierr.AppendInto(&err, l.Verbose2("verbose2: more detail"))
	multierr.AppendInto(&err, l.Verbose1("verbose1: detail"))
	multierr.AppendInto(&err, l.Info("info: normal output"))
	multierr.AppendInto(&err, l.Warning("warning: something looks off"))
	multierr.AppendInto(&err, l.Error("error: something failed"))
	multierr.AppendInto(&err, l.Blank())

	for c := core.Red; c <= core.BrightWhite; c++ {
		multierr.AppendInto(&err, l.LogAt(core.InfoLevel, "color "+c.String(), c))
	}
	multierr.AppendInto(&err, l.Blank())

	multierr.AppendInto(&err, l.LogException(
		fmt.Errorf("load settings: %w", errors.New("permission denied"))))

	multierr.AppendInto(&err, demoLock(l))
	return err
}

// demoLock shows that a concurrent writer waits until the scope ends.
func demoLock(l *logger.Logger) error {
	var (
		wg      sync.WaitGroup
		waitErr error
	)
	err := l.WithLock(func(scoped *logger.Logger) error {
		wg.Add(1)
		go func() {
			defer wg.Done()
			waitErr = l.Info("outside the scope: written after it ends")
		}()

		var err error
		for i := 1; i <= 3; i++ {
			multierr.AppendInto(&err, scoped.Infof("inside the scope: step %d of 3", i))
		}
		return err
	})
	wg.Wait()
	return multierr.Append(err, waitErr)
}
