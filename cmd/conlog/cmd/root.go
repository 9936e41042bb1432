package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipp01105/conlog/config"
	"github.com/philipp01105/conlog/console"
	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/logger"
)

// version is injected by main at build time.
var version = "dev"

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// options holds the global flags.
type options struct {
	configPath string
	level      string
	sync       bool
	color      string
	debug      bool
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "conlog",
		Short: "Exercise the conlog console logger",
		Long: `conlog drives the conlog library from the command line: it prints
sample output at every level and color, and stress-tests the async
pipeline and scoped locks with concurrent producers.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.level, "level", "", "minimum level (verbose3..error)")
	flags.BoolVar(&opts.sync, "sync", false, "write synchronously instead of through the async pipeline")
	flags.StringVar(&opts.color, "color", "", "color mode: auto, always or never")
	flags.BoolVar(&opts.debug, "debug", false, "print conlog's own diagnostics to stderr")

	rootCmd.AddCommand(
		newDemoCmd(opts),
		newStressCmd(opts),
		newVersionCmd(),
	)
	return rootCmd
}

// session is a Core built from the global flags plus its diagnostics
// logger.
type session struct {
	core *logger.Core
	log  *logger.Logger
	diag *zap.Logger
}

// close flushes the core and reports console write failures.
func (s *session) close() error {
	err := s.core.Close()
	_ = s.diag.Sync()
	if err != nil {
		return fmt.Errorf("console output: %w", err)
	}
	return nil
}

// newSession resolves config file, environment and flags, in that order
// of increasing precedence.
func newSession(cmd *cobra.Command, opts *options) (*session, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("level") {
		if cfg.Level, err = core.ParseLevel(opts.level); err != nil {
			return nil, err
		}
	}
	if flags.Changed("sync") {
		cfg.Async = !opts.sync
	}
	if flags.Changed("color") {
		if cfg.Color, err = console.ParseColorMode(opts.color); err != nil {
			return nil, err
		}
	}

	diag := zap.NewNop()
	if opts.debug {
		if diag, err = zap.NewDevelopment(); err != nil {
			return nil, fmt.Errorf("diagnostics logger: %w", err)
		}
	}

	b, err := cfg.Builder()
	if err != nil {
		return nil, err
	}
	if w := outWriter(cmd); w != nil {
		b.WithWriter(w)
	}
	c := b.WithDiagnostics(diag).Build()
	diag.Debug("session started",
		zap.Stringer("level", cfg.Level),
		zap.Bool("async", cfg.Async),
		zap.Stringer("color", cfg.Color))

	return &session{core: c, log: logger.New(c), diag: diag}, nil
}

// outWriter returns nil when the command writes to the process stdout so
// the core picks its colorable default.
func outWriter(cmd *cobra.Command) io.Writer {
	w := cmd.OutOrStdout()
	if w == os.Stdout {
		return nil
	}
	return w
}
