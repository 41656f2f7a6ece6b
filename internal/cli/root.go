// Package cli is the asciipath command tree.
package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vinser/asciipath/internal/config"
	"github.com/vinser/asciipath/internal/logger"
	"github.com/vinser/asciipath/internal/state"
)

type rootOpts struct {
	cfgFile string
	debug   bool
	logFile string
}

// env is shared by the commands of one tree.
type env struct {
	opts    rootOpts
	v       *viper.Viper
	cfg     *config.Config
	stdin   io.Reader
	closer  io.Closer
	history []state.Option
	// Viewer entry point, replaced in tests.
	view viewFunc
}

// Execute runs the command line and exits non-zero on failure.
// This is called by main.main().
func Execute(version string) {
	if code := execute(NewRootCmd(version, os.Stdin), os.Stderr); code != 0 {
		os.Exit(code)
	}
}

// execute runs cmd and logs its error to errOut, returning the exit code.
// Logging may have been sent to a file by the viewer, so errOut is set again.
func execute(cmd *cobra.Command, errOut io.Writer) int {
	if err := cmd.Execute(); err != nil {
		logrus.SetOutput(errOut)
		logrus.Error(err)
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree. Maps named "-" are read from stdin.
func NewRootCmd(version string, stdin io.Reader) *cobra.Command {
	e := &env{v: viper.New(), stdin: stdin, view: runViewer}
	return e.rootCmd(version)
}

func (e *env) rootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asciipath",
		Short: "Follow paths drawn in ASCII art and collect their letters",
		Long: `asciipath walks maps drawn with '-', '|' and '+' from the start marker '@'
to the end marker 'x' and prints the path walked and the letters collected.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: e.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if e.closer != nil {
				return e.closer.Close()
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&e.opts.cfgFile, "config", "", "config file (default is $HOME/.asciipath.yaml)")
	cmd.PersistentFlags().String(config.KeyLogLevel, logrus.InfoLevel.String(), "log level: panic, fatal, error, warn, info, debug or trace")
	cmd.PersistentFlags().BoolVarP(&e.opts.debug, "debug", "d", false, "turn on debug logging")
	cmd.PersistentFlags().StringVar(&e.opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(
		e.walkCmd(),
		e.generateCmd(),
		e.viewCmd(),
		e.historyCmd(),
		versionCmd(version),
	)
	return cmd
}

// setup reads the config file, binds the flags of the running command and
// initialises logging.
func (e *env) setup(cmd *cobra.Command, args []string) error {
	if err := config.Init(e.v, e.opts.cfgFile); err != nil {
		return err
	}
	if err := e.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.From(e.v)
	if err != nil {
		return err
	}
	if e.opts.debug {
		cfg.LogLevel = logrus.DebugLevel
	}
	e.cfg = cfg

	logFile := e.opts.logFile
	if logFile == "" && cmd.Name() == viewCmdName {
		// The viewer owns the terminal.
		logFile = viewerLogFile()
	}
	e.closer, err = logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		File:   logFile,
		Output: cmd.ErrOrStderr(),
	})
	return err
}
