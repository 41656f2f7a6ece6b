package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinser/asciipath/internal/report"
)

func fakeHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", home)
	return home
}

func TestDefaults(t *testing.T) {
	fakeHome(t)
	v := viper.New()
	require.NoError(t, Init(v, ""))

	cfg, err := From(v)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Workers:  0,
		Format:   report.FormatText,
		LogLevel: logrus.InfoLevel,
		History:  true,
		Maps:     []string{},
	}, cfg)
}

func TestConfigFile(t *testing.T) {
	home := fakeHome(t)
	data := []byte("workers: 3\nformat: json\nlog-level: debug\nstrict: true\nmaps:\n  - ~/maps\n")
	require.NoError(t, os.WriteFile(filepath.Join(home, defaultFileName), data, 0644))

	v := viper.New()
	require.NoError(t, Init(v, ""))
	cfg, err := From(v)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, report.FormatJSON, cfg.Format)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{filepath.Join(home, "maps")}, cfg.Maps)
}

func TestEnvOverridesFile(t *testing.T) {
	home := fakeHome(t)
	path := filepath.Join(home, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: yaml\nworkers: 2\n"), 0644))
	t.Setenv("ASCIIPATH_WORKERS", "7")
	t.Setenv("ASCIIPATH_LOG_LEVEL", "warn")

	v := viper.New()
	require.NoError(t, Init(v, path))
	cfg, err := From(v)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, report.FormatYAML, cfg.Format)
	assert.Equal(t, logrus.WarnLevel, cfg.LogLevel)
}

func TestExplicitFileMissing(t *testing.T) {
	fakeHome(t)
	err := Init(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  interface{}
	}{
		{"format", KeyFormat, "xml"},
		{"log level", KeyLogLevel, "loud"},
		{"workers", KeyWorkers, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.val)
			_, err := From(v)
			assert.Error(t, err)
		})
	}
}
