// Package logger sets up the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Options configures Init.
type Options struct {
	Level        logrus.Level
	DisableColor bool
	// File, when set, receives the log instead of stderr. The viewer uses
	// it so log lines do not tear the alternate screen.
	File string
	// Output overrides stderr when File is empty.
	Output io.Writer
}

// Init configures the standard logrus logger. The returned closer releases
// the log file, if any.
func Init(opts Options) (io.Closer, error) {
	logrus.SetLevel(opts.Level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   opts.DisableColor || opts.File != "",
	})

	if opts.File == "" {
		out := opts.Output
		if out == nil {
			out = os.Stderr
		}
		logrus.SetOutput(out)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return nil, errors.Wrapf(err, "failed to create log dir for %s", opts.File)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file %s", opts.File)
	}
	logrus.SetOutput(f)
	return f, nil
}
