// Package config layers defaults, a config file, ASCIIPATH_* environment
// variables and command-line flags.
package config

import (
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vinser/asciipath/internal/report"
)

// Keys.
const (
	KeyWorkers  = "workers"
	KeyFormat   = "format"
	KeyLogLevel = "log-level"
	KeyStrict   = "strict"
	KeyProgress = "progress"
	KeyMaxSteps = "max-steps"
	KeyHistory  = "history"
	KeyMaps     = "maps"
)

const (
	envPrefix       = "ASCIIPATH"
	defaultFileName = ".asciipath.yaml"
)

// Config is the resolved configuration.
type Config struct {
	Workers  int
	Format   report.Format
	LogLevel logrus.Level
	Strict   bool
	Progress bool
	MaxSteps int
	History  bool
	// Maps are walked when no path is given on the command line.
	Maps []string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyFormat, string(report.FormatText))
	v.SetDefault(KeyLogLevel, logrus.InfoLevel.String())
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyProgress, false)
	v.SetDefault(KeyMaxSteps, 0)
	v.SetDefault(KeyHistory, true)
	v.SetDefault(KeyMaps, []string{})
}

// DefaultFile returns $HOME/.asciipath.yaml.
func DefaultFile() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "failed to find home directory")
	}
	return filepath.Join(home, defaultFileName), nil
}

// Init prepares v: defaults, environment, and the config file at path.
// An explicit path must exist; the default file is optional.
func Init(v *viper.Viper, path string) error {
	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultFile(); err != nil {
			logrus.Debugf("no default config file: %v", err)
			return nil
		}
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return errors.Wrapf(err, "failed to expand %s", path)
	}
	v.SetConfigFile(expanded)
	if err := v.ReadInConfig(); err != nil {
		if explicit {
			return errors.Wrapf(err, "failed to read config %s", expanded)
		}
		logrus.Debugf("default config %s not used: %v", expanded, err)
	}
	return nil
}

// From resolves a Config from v.
func From(v *viper.Viper) (*Config, error) {
	format, err := report.ParseFormat(v.GetString(KeyFormat))
	if err != nil {
		return nil, err
	}
	level, err := logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, errors.Wrap(err, "invalid log level")
	}
	workers := v.GetInt(KeyWorkers)
	if workers < 0 {
		return nil, errors.Errorf("invalid workers %d, must not be negative", workers)
	}
	maps := make([]string, 0)
	for _, m := range v.GetStringSlice(KeyMaps) {
		expanded, err := homedir.Expand(m)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to expand %s", m)
		}
		maps = append(maps, expanded)
	}
	return &Config{
		Workers:  workers,
		Format:   format,
		LogLevel: level,
		Strict:   v.GetBool(KeyStrict),
		Progress: v.GetBool(KeyProgress),
		MaxSteps: v.GetInt(KeyMaxSteps),
		History:  v.GetBool(KeyHistory),
		Maps:     maps,
	}, nil
}
