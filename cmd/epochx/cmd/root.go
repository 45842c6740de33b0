package cmd

import (
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/epochx/foundation/core/config"
	mdwerror "github.com/msto63/epochx/foundation/core/error"
	mdwlog "github.com/msto63/epochx/foundation/core/log"
)

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfgFile string
	verbose bool

	settings *config.Settings
	logger   *mdwlog.Logger
	runID    string
}

// NewRootCmd builds the epochx command tree
func NewRootCmd() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "epochx",
		Short: "Date/time to Unix epoch conversion",
		Long: `epochx converts date/time literals into Unix epoch seconds and
translates between Windows FILETIME ticks and Unix seconds.

Accepted literals:
  YYYY-MM-DD
  YYYY-MM-DD HH:MM:SS

The exit status is the error number of the first failed conversion.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./configs/epochx.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newParseCmd(a))
	root.AddCommand(newFiletimeCmd(a))
	root.AddCommand(newVersionCmd())

	return root, a
}

// Execute runs the epochx command line
func Execute() error {
	root, a := newRoot()
	return a.execute(root)
}

// execute runs root and logs failures that were not reported per input,
// such as flag or settings errors
func (a *app) execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			a.errorLogger(root.ErrOrStderr()).LogError(err)
		}
	}
	return err
}

// errorLogger returns the run logger, or a plain text logger on w when the
// settings could not be loaded
func (a *app) errorLogger(w io.Writer) *mdwlog.Logger {
	if a.logger != nil {
		return a.logger
	}
	return mdwlog.New().
		WithOutput(w).
		WithFormat(mdwlog.FormatText).
		WithLevel(mdwlog.LevelWarn).
		WithName("epochx")
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if n := mdwerror.GetCode(err).Number(); n != 0 {
		return n
	}
	return 1
}

// setup loads the settings and builds the run logger
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var (
		s   *config.Settings
		err error
	)
	if a.cfgFile != "" {
		s, err = config.Load(a.cfgFile)
	} else {
		s, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return err
	}
	if a.verbose {
		s.Log.Level = "debug"
	}

	logger, err := s.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.runID = uuid.NewString()
	a.settings = s
	a.logger = logger.WithRunID(a.runID).WithFields(mdwlog.Fields{
		"command": cmd.CommandPath(),
	})
	a.logger.Debug("configuration loaded", mdwlog.Fields{"source": s.Source()})
	return nil
}

// reportedError marks a failure whose details were already logged
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// runEach converts every input with fn and hands its columns to out.
// Failures are logged with their input; the first one is returned after all
// inputs are processed.
func (a *app) runEach(out *resultWriter, inputs []string, fn func(string) ([]string, error)) error {
	var (
		first  error
		failed int
	)
	for _, in := range inputs {
		cols, err := fn(in)
		if err != nil {
			a.logger.WithField("input", in).LogError(err)
			failed++
			if first == nil {
				first = err
			}
			continue
		}
		out.add(cols...)
	}
	out.flush()

	summary := mdwlog.Fields{"total": len(inputs), "failed": failed}
	if first != nil {
		a.logger.Warn("conversions failed", summary)
		return &reportedError{err: first}
	}
	a.logger.Info("conversions finished", summary)
	return nil
}
